package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/errors"
)

func reconstructMember(t *testing.T, id, companyID uint) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "Dana", "Scott", "dana@example.com", "hash", companyID, nil)
	require.NoError(t, err)
	return u
}

func TestAssignRoleUseCase_ClearsCurrentRolesFirst(t *testing.T) {
	var calls []string
	roleDirectory := &mockRoleDirectory{
		RolesOfFunc: func(ctx context.Context, userID uint) ([]authorization.Role, error) {
			calls = append(calls, "rolesOf")
			return []authorization.Role{authorization.RoleSubmitter}, nil
		},
		RemoveRolesFunc: func(ctx context.Context, userID uint, roles []authorization.Role) error {
			calls = append(calls, "removeRoles")
			assert.Equal(t, []authorization.Role{authorization.RoleSubmitter}, roles)
			return nil
		},
		AssignRoleFunc: func(ctx context.Context, userID uint, role authorization.Role) error {
			calls = append(calls, "assignRole")
			assert.Equal(t, uint(10), userID)
			assert.Equal(t, authorization.RoleDeveloper, role)
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return reconstructMember(t, 10, 1), nil
		},
	}

	uc := NewAssignRoleUseCase(roleDirectory, userRepo, &mockLogger{})

	err := uc.Execute(context.Background(), AssignRoleCommand{
		ActorCompanyID: 1,
		UserID:         10,
		Role:           authorization.RoleDeveloper,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"rolesOf", "removeRoles", "assignRole"}, calls,
		"old roles must be gone before the new one is granted")
}

func TestAssignRoleUseCase_NoCurrentRolesSkipsRemoval(t *testing.T) {
	roleDirectory := &mockRoleDirectory{
		RemoveRolesFunc: func(ctx context.Context, userID uint, roles []authorization.Role) error {
			t.Fatal("nothing to remove for a role-less user")
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return reconstructMember(t, 10, 1), nil
		},
	}

	uc := NewAssignRoleUseCase(roleDirectory, userRepo, &mockLogger{})

	err := uc.Execute(context.Background(), AssignRoleCommand{
		ActorCompanyID: 1,
		UserID:         10,
		Role:           authorization.RoleSubmitter,
	})
	assert.NoError(t, err)
}

func TestAssignRoleUseCase_ForeignCompanyUserIsHidden(t *testing.T) {
	roleDirectory := &mockRoleDirectory{
		AssignRoleFunc: func(ctx context.Context, userID uint, role authorization.Role) error {
			t.Fatal("a user outside the company must not get a role")
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return reconstructMember(t, 10, 2), nil
		},
	}

	uc := NewAssignRoleUseCase(roleDirectory, userRepo, &mockLogger{})

	err := uc.Execute(context.Background(), AssignRoleCommand{
		ActorCompanyID: 1,
		UserID:         10,
		Role:           authorization.RoleDeveloper,
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAssignRoleUseCase_UnknownRole(t *testing.T) {
	uc := NewAssignRoleUseCase(&mockRoleDirectory{}, &mockUserRepository{}, &mockLogger{})

	err := uc.Execute(context.Background(), AssignRoleCommand{
		ActorCompanyID: 1,
		UserID:         10,
		Role:           authorization.Role("Overlord"),
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestRemoveRoleUseCase_RemovesRole(t *testing.T) {
	var removed bool
	roleDirectory := &mockRoleDirectory{
		RemoveRoleFunc: func(ctx context.Context, userID uint, role authorization.Role) error {
			removed = true
			assert.Equal(t, uint(10), userID)
			assert.Equal(t, authorization.RoleDeveloper, role)
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return reconstructMember(t, 10, 1), nil
		},
	}

	uc := NewRemoveRoleUseCase(roleDirectory, userRepo, &mockLogger{})

	err := uc.Execute(context.Background(), RemoveRoleCommand{
		ActorCompanyID: 1,
		UserID:         10,
		Role:           authorization.RoleDeveloper,
	})
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestRolesOfUserUseCase_IsInRole(t *testing.T) {
	roleDirectory := &mockRoleDirectory{
		RolesOfFunc: func(ctx context.Context, userID uint) ([]authorization.Role, error) {
			return []authorization.Role{authorization.RoleProjectManager}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return reconstructMember(t, 10, 1), nil
		},
	}

	uc := NewRolesOfUserUseCase(roleDirectory, userRepo, &mockLogger{})
	query := RolesOfUserQuery{ActorCompanyID: 1, UserID: 10}

	isPM, err := uc.IsInRole(context.Background(), query, authorization.RoleProjectManager)
	require.NoError(t, err)
	assert.True(t, isPM)

	isAdmin, err := uc.IsInRole(context.Background(), query, authorization.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	_, err = uc.IsInRole(context.Background(), query, authorization.Role("Overlord"))
	assert.True(t, errors.IsValidationError(err))
}

func TestUsersInRoleUseCase_NarrowsToCompany(t *testing.T) {
	roleDirectory := &mockRoleDirectory{
		UserIDsInRoleFunc: func(ctx context.Context, role authorization.Role) ([]uint, error) {
			return []uint{10, 11, 99}, nil
		},
	}
	userRepo := &mockUserRepository{
		ListByIDsFunc: func(ctx context.Context, companyID uint, userIDs []uint) ([]*user.User, error) {
			assert.Equal(t, uint(1), companyID)
			assert.ElementsMatch(t, []uint{10, 11, 99}, userIDs)
			return []*user.User{reconstructMember(t, 10, 1), reconstructMember(t, 11, 1)}, nil
		},
	}

	uc := NewUsersInRoleUseCase(roleDirectory, userRepo, &mockLogger{})

	members, err := uc.Execute(context.Background(), UsersInRoleQuery{
		ActorCompanyID: 1,
		Role:           authorization.RoleDeveloper,
	})

	require.NoError(t, err)
	ids := make([]uint, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []uint{10, 11}, ids)
}

func TestUsersInRoleUseCase_EmptyRole(t *testing.T) {
	userRepo := &mockUserRepository{
		ListByIDsFunc: func(ctx context.Context, companyID uint, userIDs []uint) ([]*user.User, error) {
			t.Fatal("an empty role has no members to resolve")
			return nil, nil
		},
	}

	uc := NewUsersInRoleUseCase(&mockRoleDirectory{}, userRepo, &mockLogger{})

	members, err := uc.Execute(context.Background(), UsersInRoleQuery{
		ActorCompanyID: 1,
		Role:           authorization.RoleDemoUser,
	})
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestUsersInRoleUseCase_UsersNotInRole(t *testing.T) {
	roleDirectory := &mockRoleDirectory{
		UserIDsInRoleFunc: func(ctx context.Context, role authorization.Role) ([]uint, error) {
			return []uint{10}, nil
		},
	}
	userRepo := &mockUserRepository{
		ListByCompanyFunc: func(ctx context.Context, companyID uint) ([]*user.User, error) {
			return []*user.User{
				reconstructMember(t, 10, 1),
				reconstructMember(t, 20, 1),
				reconstructMember(t, 30, 1),
			}, nil
		},
	}

	uc := NewUsersInRoleUseCase(roleDirectory, userRepo, &mockLogger{})

	outsiders, err := uc.UsersNotInRole(context.Background(), UsersInRoleQuery{
		ActorCompanyID: 1,
		Role:           authorization.RoleProjectManager,
	})

	require.NoError(t, err)
	ids := make([]uint, 0, len(outsiders))
	for _, m := range outsiders {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []uint{20, 30}, ids)
}
