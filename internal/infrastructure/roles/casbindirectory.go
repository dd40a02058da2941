// Package roles backs the role directory with casbin grouping policies
// persisted through the gorm adapter.
package roles

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"bugtrail/internal/domain/identity"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/logger"
)

// rbacModel is the minimal RBAC model: only grouping policies are used,
// role membership is the whole point of the directory.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var _ identity.RoleDirectory = (*CasbinDirectory)(nil)

type CasbinDirectory struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewCasbinDirectory(db *gorm.DB, log logger.Interface) (*CasbinDirectory, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rbac model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &CasbinDirectory{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func subject(userID uint) string {
	return "user:" + strconv.FormatUint(uint64(userID), 10)
}

func parseSubject(sub string) (uint, bool) {
	raw, ok := strings.CutPrefix(sub, "user:")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (d *CasbinDirectory) AssignRole(_ context.Context, userID uint, role authorization.Role) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.enforcer.AddGroupingPolicy(subject(userID), string(role)); err != nil {
		d.logger.Errorw("failed to add role grouping", "error", err, "user_id", userID, "role", role)
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return d.enforcer.SavePolicy()
}

func (d *CasbinDirectory) RemoveRole(_ context.Context, userID uint, role authorization.Role) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.enforcer.RemoveGroupingPolicy(subject(userID), string(role)); err != nil {
		d.logger.Errorw("failed to remove role grouping", "error", err, "user_id", userID, "role", role)
		return fmt.Errorf("failed to remove role: %w", err)
	}
	return d.enforcer.SavePolicy()
}

func (d *CasbinDirectory) RemoveRoles(ctx context.Context, userID uint, roles []authorization.Role) error {
	for _, role := range roles {
		if err := d.RemoveRole(ctx, userID, role); err != nil {
			return err
		}
	}
	return nil
}

func (d *CasbinDirectory) HasRole(_ context.Context, userID uint, role authorization.Role) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	has, err := d.enforcer.HasGroupingPolicy(subject(userID), string(role))
	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return has, nil
}

func (d *CasbinDirectory) RolesOf(_ context.Context, userID uint) ([]authorization.Role, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	raw, err := d.enforcer.GetRolesForUser(subject(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read roles: %w", err)
	}

	roles := make([]authorization.Role, 0, len(raw))
	for _, r := range raw {
		role, ok := authorization.ParseRole(r)
		if !ok {
			// Stale policy rows for retired roles are skipped, not fatal.
			d.logger.Warnw("skipping unknown role in policy store", "role", r, "user_id", userID)
			continue
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (d *CasbinDirectory) UserIDsInRole(_ context.Context, role authorization.Role) ([]uint, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	subjects, err := d.enforcer.GetUsersForRole(string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate role members: %w", err)
	}

	ids := make([]uint, 0, len(subjects))
	for _, sub := range subjects {
		if id, ok := parseSubject(sub); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
