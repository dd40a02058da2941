package usecases

import (
	"context"

	"bugtrail/internal/domain/catalog"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/errors"
)

// ListProjectsScope selects which projection of the company's projects a
// query returns.
type ListProjectsScope int

const (
	// ScopeVisible applies the role rule: Admin and ProjectManager see all
	// company projects, every other role sees none through this path.
	ScopeVisible ListProjectsScope = iota
	// ScopeMine returns the projects where the actor holds membership.
	ScopeMine
	// ScopeArchived returns the company's archived projects.
	ScopeArchived
)

type ListProjectsQuery struct {
	ActorUserID    uint
	ActorCompanyID uint
	ActorRole      authorization.Role
	Scope          ListProjectsScope
	// PriorityName optionally filters by project priority name.
	PriorityName string
}

type ListProjectsUseCase struct {
	projectRepo    project.Repository
	membershipRepo project.MembershipRepository
	catalogRepo    catalog.Repository
}

func NewListProjectsUseCase(
	projectRepo project.Repository,
	membershipRepo project.MembershipRepository,
	catalogRepo catalog.Repository,
) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
		catalogRepo:    catalogRepo,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) ([]ProjectDTO, error) {
	if query.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	projects, err := uc.listForScope(ctx, query)
	if err != nil {
		return nil, err
	}

	if query.PriorityName != "" {
		priorityID, err := uc.catalogRepo.ProjectPriorityIDByName(ctx, query.PriorityName)
		if err != nil {
			return nil, err
		}
		filtered := projects[:0]
		for _, p := range projects {
			if p.PriorityID() == priorityID {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	return toProjectDTOs(projects), nil
}

func (uc *ListProjectsUseCase) listForScope(ctx context.Context, query ListProjectsQuery) ([]*project.Project, error) {
	switch query.Scope {
	case ScopeArchived:
		return uc.projectRepo.ListArchivedByCompany(ctx, query.ActorCompanyID)
	case ScopeMine:
		projectIDs, err := uc.membershipRepo.ProjectIDs(ctx, query.ActorUserID)
		if err != nil {
			return nil, errors.NewInternalError("failed to list user projects")
		}
		if len(projectIDs) == 0 {
			return nil, nil
		}
		return uc.projectRepo.ListByIDs(ctx, query.ActorCompanyID, projectIDs)
	case ScopeVisible:
		// Exhaustive over the closed role set: a role added here without a
		// visibility decision is a compile-visible gap.
		switch query.ActorRole {
		case authorization.RoleAdmin, authorization.RoleProjectManager:
			return uc.projectRepo.ListByCompany(ctx, query.ActorCompanyID, false)
		case authorization.RoleDeveloper, authorization.RoleSubmitter, authorization.RoleDemoUser:
			return nil, nil
		default:
			return nil, nil
		}
	default:
		return nil, errors.NewValidationError("unknown project list scope")
	}
}

type GetProjectQuery struct {
	ActorCompanyID uint
	ProjectID      uint
}

type GetProjectUseCase struct {
	projectRepo project.Repository
}

func NewGetProjectUseCase(projectRepo project.Repository) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: projectRepo}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*ProjectDTO, error) {
	if query.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}
	proj, err := uc.projectRepo.GetByID(ctx, query.ProjectID, query.ActorCompanyID)
	if err != nil {
		return nil, err
	}
	dto := toProjectDTO(proj)
	return &dto, nil
}

type UsersNotOnProjectQuery struct {
	ActorCompanyID uint
	ProjectID      uint
}

// UsersNotOnProjectUseCase lists company members outside the project's
// member set, for the add-member picker.
type UsersNotOnProjectUseCase struct {
	membershipRepo project.MembershipRepository
	userRepo       user.Repository
}

func NewUsersNotOnProjectUseCase(
	membershipRepo project.MembershipRepository,
	userRepo user.Repository,
) *UsersNotOnProjectUseCase {
	return &UsersNotOnProjectUseCase{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
	}
}

func (uc *UsersNotOnProjectUseCase) Execute(ctx context.Context, query UsersNotOnProjectQuery) ([]MemberDTO, error) {
	if query.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	memberIDs, err := uc.membershipRepo.MemberIDs(ctx, query.ProjectID)
	if err != nil {
		return nil, errors.NewInternalError("failed to list project members")
	}
	onProject := make(map[uint]bool, len(memberIDs))
	for _, id := range memberIDs {
		onProject[id] = true
	}

	users, err := uc.userRepo.ListByCompany(ctx, query.ActorCompanyID)
	if err != nil {
		return nil, errors.NewInternalError("failed to list company members")
	}

	var outside []*user.User
	for _, u := range users {
		if !onProject[u.ID()] {
			outside = append(outside, u)
		}
	}
	return toMemberDTOs(outside), nil
}
