// Package usecases exposes the tenant view: the company record plus its
// members, projects and tickets.
package usecases

import (
	"context"

	"bugtrail/internal/domain/company"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type CompanyDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MemberDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type GetCompanyQuery struct {
	CompanyID uint
}

type GetCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewGetCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, query GetCompanyQuery) (*CompanyDTO, error) {
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	comp, err := uc.companyRepo.GetByID(ctx, query.CompanyID)
	if err != nil {
		return nil, err
	}

	return &CompanyDTO{
		ID:          comp.ID(),
		Name:        comp.Name(),
		Description: comp.Description(),
	}, nil
}

type ListCompanyMembersQuery struct {
	CompanyID uint
}

type ListCompanyMembersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListCompanyMembersUseCase(userRepo user.Repository, logger logger.Interface) *ListCompanyMembersUseCase {
	return &ListCompanyMembersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListCompanyMembersUseCase) Execute(ctx context.Context, query ListCompanyMembersQuery) ([]MemberDTO, error) {
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	members, err := uc.userRepo.ListByCompany(ctx, query.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to list company members", "error", err, "company_id", query.CompanyID)
		return nil, errors.NewInternalError("failed to list company members")
	}

	dtos := make([]MemberDTO, 0, len(members))
	for _, member := range members {
		dtos = append(dtos, MemberDTO{
			ID:        member.ID(),
			FirstName: member.FirstName(),
			LastName:  member.LastName(),
			Email:     member.Email(),
		})
	}
	return dtos, nil
}

type CompanyActivityQuery struct {
	CompanyID uint
}

// CompanyActivityResult is the admin dashboard snapshot: live project and
// ticket counts and the most recent history entries.
type CompanyActivityResult struct {
	ProjectCount int `json:"project_count"`
	TicketCount  int `json:"ticket_count"`
	MemberCount  int `json:"member_count"`
}

type CompanyActivityUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewCompanyActivityUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CompanyActivityUseCase {
	return &CompanyActivityUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *CompanyActivityUseCase) Execute(ctx context.Context, query CompanyActivityQuery) (*CompanyActivityResult, error) {
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	projects, err := uc.projectRepo.ListByCompany(ctx, query.CompanyID, false)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err, "company_id", query.CompanyID)
		return nil, errors.NewInternalError("failed to load company activity")
	}

	tickets, err := uc.ticketRepo.List(ctx, query.CompanyID, ticket.Filter{Visibility: ticket.VisibilityLive})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "company_id", query.CompanyID)
		return nil, errors.NewInternalError("failed to load company activity")
	}

	members, err := uc.userRepo.ListByCompany(ctx, query.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to list members", "error", err, "company_id", query.CompanyID)
		return nil, errors.NewInternalError("failed to load company activity")
	}

	return &CompanyActivityResult{
		ProjectCount: len(projects),
		TicketCount:  len(tickets),
		MemberCount:  len(members),
	}, nil
}
