// Package identity defines the role directory port: role membership for
// users, backed by the identity collaborator. Enumeration results are raw
// user ids; callers filter them through the user repository by company id.
package identity

import (
	"context"

	"bugtrail/internal/shared/authorization"
)

type RoleDirectory interface {
	AssignRole(ctx context.Context, userID uint, role authorization.Role) error
	RemoveRole(ctx context.Context, userID uint, role authorization.Role) error
	RemoveRoles(ctx context.Context, userID uint, roles []authorization.Role) error
	HasRole(ctx context.Context, userID uint, role authorization.Role) (bool, error)
	RolesOf(ctx context.Context, userID uint) ([]authorization.Role, error)
	UserIDsInRole(ctx context.Context, role authorization.Role) ([]uint, error)
}
