package usecases

import (
	"context"

	"bugtrail/internal/domain/identity"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type AddUserToProjectCommand struct {
	ActorCompanyID uint
	ProjectID      uint
	UserID         uint
}

// AddUserToProjectUseCase attaches a user to a project. It returns false
// without error when the user is already a member, matching the source
// semantics of a boolean no-op.
type AddUserToProjectUseCase struct {
	projectRepo    project.Repository
	membershipRepo project.MembershipRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewAddUserToProjectUseCase(
	projectRepo project.Repository,
	membershipRepo project.MembershipRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *AddUserToProjectUseCase {
	return &AddUserToProjectUseCase{
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *AddUserToProjectUseCase) Execute(ctx context.Context, cmd AddUserToProjectCommand) (bool, error) {
	if cmd.ProjectID == 0 || cmd.UserID == 0 {
		return false, errors.NewValidationError("project ID and user ID are required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return false, err
	}
	if !u.BelongsTo(cmd.ActorCompanyID) {
		return false, errors.NewNotFoundError("user not found")
	}

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID, cmd.ActorCompanyID); err != nil {
		return false, err
	}

	onProject, err := uc.membershipRepo.Contains(ctx, cmd.ProjectID, cmd.UserID)
	if err != nil {
		return false, errors.NewInternalError("failed to check project membership")
	}
	if onProject {
		return false, nil
	}

	if err := uc.membershipRepo.Add(ctx, cmd.ProjectID, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to add user to project", "error", err,
			"project_id", cmd.ProjectID, "user_id", cmd.UserID)
		return false, errors.NewInternalError("failed to add user to project")
	}

	uc.logger.Infow("user added to project", "project_id", cmd.ProjectID, "user_id", cmd.UserID)
	return true, nil
}

type RemoveUserFromProjectCommand struct {
	ActorCompanyID uint
	ProjectID      uint
	UserID         uint
}

// RemoveUserFromProjectUseCase detaches a user from a project. Removing a
// non-member is a silent no-op so the operation is idempotent.
type RemoveUserFromProjectUseCase struct {
	membershipRepo project.MembershipRepository
	logger         logger.Interface
}

func NewRemoveUserFromProjectUseCase(
	membershipRepo project.MembershipRepository,
	logger logger.Interface,
) *RemoveUserFromProjectUseCase {
	return &RemoveUserFromProjectUseCase{
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *RemoveUserFromProjectUseCase) Execute(ctx context.Context, cmd RemoveUserFromProjectCommand) error {
	if cmd.ProjectID == 0 || cmd.UserID == 0 {
		return errors.NewValidationError("project ID and user ID are required")
	}

	onProject, err := uc.membershipRepo.Contains(ctx, cmd.ProjectID, cmd.UserID)
	if err != nil {
		return errors.NewInternalError("failed to check project membership")
	}
	if !onProject {
		return nil
	}

	if err := uc.membershipRepo.Remove(ctx, cmd.ProjectID, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to remove user from project", "error", err,
			"project_id", cmd.ProjectID, "user_id", cmd.UserID)
		return errors.NewInternalError("failed to remove user from project")
	}

	uc.logger.Infow("user removed from project", "project_id", cmd.ProjectID, "user_id", cmd.UserID)
	return nil
}

type RemoveUsersByRoleCommand struct {
	ActorCompanyID uint
	ProjectID      uint
	Role           authorization.Role
}

// RemoveUsersByRoleUseCase detaches every member holding the given role.
type RemoveUsersByRoleUseCase struct {
	membershipRepo project.MembershipRepository
	roleDirectory  identity.RoleDirectory
	logger         logger.Interface
}

func NewRemoveUsersByRoleUseCase(
	membershipRepo project.MembershipRepository,
	roleDirectory identity.RoleDirectory,
	logger logger.Interface,
) *RemoveUsersByRoleUseCase {
	return &RemoveUsersByRoleUseCase{
		membershipRepo: membershipRepo,
		roleDirectory:  roleDirectory,
		logger:         logger,
	}
}

func (uc *RemoveUsersByRoleUseCase) Execute(ctx context.Context, cmd RemoveUsersByRoleCommand) error {
	if cmd.ProjectID == 0 {
		return errors.NewValidationError("project ID is required")
	}
	if !cmd.Role.IsValid() {
		return errors.NewValidationError("unknown role")
	}

	memberIDs, err := uc.membershipRepo.MemberIDs(ctx, cmd.ProjectID)
	if err != nil {
		return errors.NewInternalError("failed to list project members")
	}

	for _, memberID := range memberIDs {
		hasRole, err := uc.roleDirectory.HasRole(ctx, memberID, cmd.Role)
		if err != nil {
			return errors.NewInternalError("failed to resolve member role")
		}
		if !hasRole {
			continue
		}
		if err := uc.membershipRepo.Remove(ctx, cmd.ProjectID, memberID); err != nil {
			uc.logger.Errorw("failed to remove member by role", "error", err,
				"project_id", cmd.ProjectID, "user_id", memberID, "role", cmd.Role)
			return errors.NewInternalError("failed to remove project member")
		}
	}

	return nil
}
