package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bugtrail/internal/domain/project"
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

func TestAddUserToProjectUseCase_AddsNewMember(t *testing.T) {
	var added bool
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return reconstructMember(t, userID, 1), nil
		},
	}
	projectRepo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, projectID, companyID uint) (*project.Project, error) {
			return reconstructProject(t, projectID, false), nil
		},
	}
	membershipRepo := &mockMembershipRepository{
		AddFunc: func(ctx context.Context, projectID, userID uint) error {
			assert.Equal(t, uint(7), projectID)
			assert.Equal(t, uint(42), userID)
			added = true
			return nil
		},
	}

	uc := NewAddUserToProjectUseCase(projectRepo, membershipRepo, userRepo, &mockLogger{})

	ok, err := uc.Execute(context.Background(), AddUserToProjectCommand{ActorCompanyID: 1, ProjectID: 7, UserID: 42})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, added)
}

func TestAddUserToProjectUseCase_ExistingMemberIsNoOp(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return reconstructMember(t, userID, 1), nil
		},
	}
	projectRepo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, projectID, companyID uint) (*project.Project, error) {
			return reconstructProject(t, projectID, false), nil
		},
	}
	membershipRepo := &mockMembershipRepository{
		ContainsFunc: func(ctx context.Context, projectID, userID uint) (bool, error) {
			return true, nil
		},
		AddFunc: func(ctx context.Context, projectID, userID uint) error {
			t.Fatal("Add must not be called for an existing member")
			return nil
		},
	}

	uc := NewAddUserToProjectUseCase(projectRepo, membershipRepo, userRepo, &mockLogger{})

	ok, err := uc.Execute(context.Background(), AddUserToProjectCommand{ActorCompanyID: 1, ProjectID: 7, UserID: 42})

	require.NoError(t, err)
	assert.False(t, ok, "adding an existing member reports false without error")
}

func TestAddUserToProjectUseCase_ForeignCompanyUserIsHidden(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return reconstructMember(t, userID, 2), nil
		},
	}

	uc := NewAddUserToProjectUseCase(&mockProjectRepository{}, &mockMembershipRepository{}, userRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), AddUserToProjectCommand{ActorCompanyID: 1, ProjectID: 7, UserID: 42})
	assert.True(t, errors.IsNotFoundError(err), "cross-tenant users must look like missing users")
}

func TestRemoveUserFromProjectUseCase_Idempotent(t *testing.T) {
	membershipRepo := &mockMembershipRepository{
		ContainsFunc: func(ctx context.Context, projectID, userID uint) (bool, error) {
			return false, nil
		},
		RemoveFunc: func(ctx context.Context, projectID, userID uint) error {
			t.Fatal("Remove must not be called for a non-member")
			return nil
		},
	}

	uc := NewRemoveUserFromProjectUseCase(membershipRepo, &mockLogger{})

	err := uc.Execute(context.Background(), RemoveUserFromProjectCommand{ActorCompanyID: 1, ProjectID: 7, UserID: 42})
	assert.NoError(t, err, "removing a non-member is a silent no-op")
}

func TestRemoveUserFromProjectUseCase_RemovesMember(t *testing.T) {
	var removed bool
	membershipRepo := &mockMembershipRepository{
		ContainsFunc: func(ctx context.Context, projectID, userID uint) (bool, error) {
			return true, nil
		},
		RemoveFunc: func(ctx context.Context, projectID, userID uint) error {
			removed = true
			return nil
		},
	}

	uc := NewRemoveUserFromProjectUseCase(membershipRepo, &mockLogger{})

	err := uc.Execute(context.Background(), RemoveUserFromProjectCommand{ActorCompanyID: 1, ProjectID: 7, UserID: 42})
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestRemoveUsersByRoleUseCase_RemovesOnlyMatchingMembers(t *testing.T) {
	removed := map[uint]bool{}
	membershipRepo := &mockMembershipRepository{
		MemberIDsFunc: func(ctx context.Context, projectID uint) ([]uint, error) {
			return []uint{10, 11, 12}, nil
		},
		RemoveFunc: func(ctx context.Context, projectID, userID uint) error {
			removed[userID] = true
			return nil
		},
	}
	roleDirectory := &mockRoleDirectory{
		HasRoleFunc: func(ctx context.Context, userID uint, role authorization.Role) (bool, error) {
			return userID != 11, nil
		},
	}

	uc := NewRemoveUsersByRoleUseCase(membershipRepo, roleDirectory, &mockLogger{})

	err := uc.Execute(context.Background(), RemoveUsersByRoleCommand{
		ActorCompanyID: 1,
		ProjectID:      7,
		Role:           authorization.RoleDeveloper,
	})

	require.NoError(t, err)
	assert.Equal(t, map[uint]bool{10: true, 12: true}, removed)
}

func TestRemoveUsersByRoleUseCase_UnknownRole(t *testing.T) {
	uc := NewRemoveUsersByRoleUseCase(&mockMembershipRepository{}, &mockRoleDirectory{}, &mockLogger{})

	err := uc.Execute(context.Background(), RemoveUsersByRoleCommand{
		ActorCompanyID: 1,
		ProjectID:      7,
		Role:           authorization.Role("Overlord"),
	})
	assert.True(t, errors.IsValidationError(err))
}
