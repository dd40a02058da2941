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

type AssignProjectManagerCommand struct {
	ActorCompanyID uint
	ProjectID      uint
	UserID         uint
}

// AssignProjectManagerUseCase enforces the single-PM invariant: any member
// currently holding the ProjectManager role is detached before the new
// manager joins, and both steps share one transaction so a failure can
// never leave two managers on the project.
type AssignProjectManagerUseCase struct {
	projectRepo    project.Repository
	membershipRepo project.MembershipRepository
	userRepo       user.Repository
	roleDirectory  identity.RoleDirectory
	tx             Transactor
	logger         logger.Interface
}

func NewAssignProjectManagerUseCase(
	projectRepo project.Repository,
	membershipRepo project.MembershipRepository,
	userRepo user.Repository,
	roleDirectory identity.RoleDirectory,
	tx Transactor,
	logger logger.Interface,
) *AssignProjectManagerUseCase {
	return &AssignProjectManagerUseCase{
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		roleDirectory:  roleDirectory,
		tx:             tx,
		logger:         logger,
	}
}

func (uc *AssignProjectManagerUseCase) Execute(ctx context.Context, cmd AssignProjectManagerCommand) (bool, error) {
	if cmd.ProjectID == 0 || cmd.UserID == 0 {
		return false, errors.NewValidationError("project ID and user ID are required")
	}

	newManager, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return false, err
	}
	if !newManager.BelongsTo(cmd.ActorCompanyID) {
		return false, errors.NewNotFoundError("user not found")
	}

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID, cmd.ActorCompanyID); err != nil {
		return false, err
	}

	currentPM, err := findProjectManagerID(ctx, uc.membershipRepo, uc.roleDirectory, cmd.ProjectID)
	if err != nil {
		return false, err
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if currentPM != 0 && currentPM != cmd.UserID {
			if err := uc.membershipRepo.Remove(txCtx, cmd.ProjectID, currentPM); err != nil {
				return errors.NewInternalError("failed to remove current project manager")
			}
		}
		contains, err := uc.membershipRepo.Contains(txCtx, cmd.ProjectID, cmd.UserID)
		if err != nil {
			return errors.NewInternalError("failed to check project membership")
		}
		if !contains {
			if err := uc.membershipRepo.Add(txCtx, cmd.ProjectID, cmd.UserID); err != nil {
				return errors.NewInternalError("failed to add new project manager")
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to assign project manager", "error", err,
			"project_id", cmd.ProjectID, "user_id", cmd.UserID)
		return false, err
	}

	uc.logger.Infow("project manager assigned", "project_id", cmd.ProjectID, "user_id", cmd.UserID)
	return true, nil
}

type GetProjectManagerQuery struct {
	ActorCompanyID uint
	ProjectID      uint
}

// GetProjectManagerUseCase returns the single member with the PM role, or
// nil when the project has none.
type GetProjectManagerUseCase struct {
	membershipRepo project.MembershipRepository
	userRepo       user.Repository
	roleDirectory  identity.RoleDirectory
}

func NewGetProjectManagerUseCase(
	membershipRepo project.MembershipRepository,
	userRepo user.Repository,
	roleDirectory identity.RoleDirectory,
) *GetProjectManagerUseCase {
	return &GetProjectManagerUseCase{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		roleDirectory:  roleDirectory,
	}
}

func (uc *GetProjectManagerUseCase) Execute(ctx context.Context, query GetProjectManagerQuery) (*MemberDTO, error) {
	if query.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	pmID, err := findProjectManagerID(ctx, uc.membershipRepo, uc.roleDirectory, query.ProjectID)
	if err != nil {
		return nil, err
	}
	if pmID == 0 {
		return nil, nil
	}

	pm, err := uc.userRepo.GetByID(ctx, pmID)
	if err != nil {
		return nil, err
	}
	dto := toMemberDTO(pm)
	return &dto, nil
}

// IsAssignedProjectManager reports whether the given user is the project's
// current manager.
func (uc *GetProjectManagerUseCase) IsAssignedProjectManager(ctx context.Context, userID, projectID uint) (bool, error) {
	pmID, err := findProjectManagerID(ctx, uc.membershipRepo, uc.roleDirectory, projectID)
	if err != nil {
		return false, err
	}
	return pmID != 0 && pmID == userID, nil
}

type ListProjectMembersQuery struct {
	ActorCompanyID uint
	ProjectID      uint
	// Role filters members to one role; empty means every member except
	// the project manager (the Developer/Submitter/Admin union).
	Role authorization.Role
}

type ListProjectMembersUseCase struct {
	membershipRepo project.MembershipRepository
	userRepo       user.Repository
	roleDirectory  identity.RoleDirectory
}

func NewListProjectMembersUseCase(
	membershipRepo project.MembershipRepository,
	userRepo user.Repository,
	roleDirectory identity.RoleDirectory,
) *ListProjectMembersUseCase {
	return &ListProjectMembersUseCase{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		roleDirectory:  roleDirectory,
	}
}

func (uc *ListProjectMembersUseCase) Execute(ctx context.Context, query ListProjectMembersQuery) ([]MemberDTO, error) {
	if query.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	roles := []authorization.Role{authorization.RoleDeveloper, authorization.RoleSubmitter, authorization.RoleAdmin}
	if query.Role != "" {
		if !query.Role.IsValid() {
			return nil, errors.NewValidationError("unknown role")
		}
		roles = []authorization.Role{query.Role}
	}

	memberIDs, err := uc.membershipRepo.MemberIDs(ctx, query.ProjectID)
	if err != nil {
		return nil, errors.NewInternalError("failed to list project members")
	}

	var matched []uint
	for _, memberID := range memberIDs {
		for _, role := range roles {
			hasRole, err := uc.roleDirectory.HasRole(ctx, memberID, role)
			if err != nil {
				return nil, errors.NewInternalError("failed to resolve member role")
			}
			if hasRole {
				matched = append(matched, memberID)
				break
			}
		}
	}

	users, err := uc.userRepo.ListByIDs(ctx, query.ActorCompanyID, matched)
	if err != nil {
		return nil, errors.NewInternalError("failed to load project members")
	}
	return toMemberDTOs(users), nil
}

// IsUserOnProject reports project membership directly, without a role
// filter.
func (uc *ListProjectMembersUseCase) IsUserOnProject(ctx context.Context, userID, projectID uint) (bool, error) {
	if projectID == 0 || userID == 0 {
		return false, errors.NewValidationError("project ID and user ID are required")
	}
	onProject, err := uc.membershipRepo.Contains(ctx, projectID, userID)
	if err != nil {
		return false, errors.NewInternalError("failed to check project membership")
	}
	return onProject, nil
}

func findProjectManagerID(
	ctx context.Context,
	membershipRepo project.MembershipRepository,
	roleDirectory identity.RoleDirectory,
	projectID uint,
) (uint, error) {
	memberIDs, err := membershipRepo.MemberIDs(ctx, projectID)
	if err != nil {
		return 0, errors.NewInternalError("failed to list project members")
	}
	for _, memberID := range memberIDs {
		hasRole, err := roleDirectory.HasRole(ctx, memberID, authorization.RoleProjectManager)
		if err != nil {
			return 0, errors.NewInternalError("failed to resolve member role")
		}
		if hasRole {
			return memberID, nil
		}
	}
	return 0, nil
}
