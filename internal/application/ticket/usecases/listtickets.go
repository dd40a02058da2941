package usecases

import (
	"context"

	"bugtrail/internal/domain/catalog"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type ListTicketsScope int

const (
	// ScopeVisible returns the live tickets the actor's role grants:
	// admins see every company ticket, project managers see tickets on
	// their projects, developers see tickets assigned to them, submitters
	// see tickets they opened, demo users see nothing.
	ScopeVisible ListTicketsScope = iota
	// ScopeArchived returns tickets hidden by either archive flag.
	ScopeArchived
	// ScopeUnassigned returns live tickets with no developer.
	ScopeUnassigned
)

type ListTicketsQuery struct {
	ActorUserID    uint
	ActorCompanyID uint
	ActorRole      authorization.Role
	Scope          ListTicketsScope
	ProjectID      *uint
	StatusName     string
	PriorityName   string
	TypeName       string
}

type ListTicketsUseCase struct {
	ticketRepo     ticket.Repository
	membershipRepo project.MembershipRepository
	catalogRepo    catalog.Repository
	logger         logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	membershipRepo project.MembershipRepository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:     ticketRepo,
		membershipRepo: membershipRepo,
		catalogRepo:    catalogRepo,
		logger:         logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]TicketDTO, error) {
	if query.ActorUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if query.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}
	if !query.ActorRole.IsValid() {
		return nil, errors.NewValidationError("unknown role: " + string(query.ActorRole))
	}

	filter, err := uc.buildFilter(ctx, query)
	if err != nil {
		return nil, err
	}

	switch query.Scope {
	case ScopeVisible:
		return uc.listVisible(ctx, query, filter)
	case ScopeArchived:
		filter.Visibility = ticket.VisibilityArchived
	case ScopeUnassigned:
		filter.Unassigned = true
	}

	tickets, err := uc.ticketRepo.List(ctx, query.ActorCompanyID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "company_id", query.ActorCompanyID)
		return nil, errors.NewInternalError("failed to list tickets")
	}
	return toTicketDTOs(tickets), nil
}

// listVisible applies the per-role visibility branch. Every role gets an
// explicit case so a new role cannot silently inherit another's reach.
func (uc *ListTicketsUseCase) listVisible(ctx context.Context, query ListTicketsQuery, filter ticket.Filter) ([]TicketDTO, error) {
	switch query.ActorRole {
	case authorization.RoleAdmin:
		// no extra narrowing; sees the whole company

	case authorization.RoleProjectManager:
		projectIDs, err := uc.membershipRepo.ProjectIDs(ctx, query.ActorUserID)
		if err != nil {
			uc.logger.Errorw("failed to resolve member projects", "error", err, "user_id", query.ActorUserID)
			return nil, errors.NewInternalError("failed to list tickets")
		}
		if len(projectIDs) == 0 {
			return []TicketDTO{}, nil
		}
		filter.ProjectIDs = projectIDs

	case authorization.RoleDeveloper:
		developerID := query.ActorUserID
		filter.DeveloperID = &developerID

	case authorization.RoleSubmitter:
		ownerID := query.ActorUserID
		filter.OwnerID = &ownerID

	case authorization.RoleDemoUser:
		return []TicketDTO{}, nil

	default:
		return []TicketDTO{}, nil
	}

	tickets, err := uc.ticketRepo.List(ctx, query.ActorCompanyID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "company_id", query.ActorCompanyID)
		return nil, errors.NewInternalError("failed to list tickets")
	}
	return toTicketDTOs(tickets), nil
}

func (uc *ListTicketsUseCase) buildFilter(ctx context.Context, query ListTicketsQuery) (ticket.Filter, error) {
	filter := ticket.Filter{
		ProjectID:  query.ProjectID,
		Visibility: ticket.VisibilityLive,
	}

	if query.StatusName != "" {
		id, err := uc.catalogRepo.TicketStatusIDByName(ctx, query.StatusName)
		if err != nil {
			return filter, errors.NewValidationError("unknown ticket status: " + query.StatusName)
		}
		filter.StatusID = &id
	}
	if query.PriorityName != "" {
		id, err := uc.catalogRepo.TicketPriorityIDByName(ctx, query.PriorityName)
		if err != nil {
			return filter, errors.NewValidationError("unknown ticket priority: " + query.PriorityName)
		}
		filter.PriorityID = &id
	}
	if query.TypeName != "" {
		id, err := uc.catalogRepo.TicketTypeIDByName(ctx, query.TypeName)
		if err != nil {
			return filter, errors.NewValidationError("unknown ticket type: " + query.TypeName)
		}
		filter.TypeID = &id
	}

	return filter, nil
}
