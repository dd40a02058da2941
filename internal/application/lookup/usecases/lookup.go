// Package usecases serves the fixed reference lists that populate form
// dropdowns: ticket types, statuses, ticket and project priorities.
package usecases

import (
	"context"

	"bugtrail/internal/domain/catalog"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type LookupItemDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LookupResult carries all four lists in one response; the forms need them
// together.
type LookupResult struct {
	TicketTypes       []LookupItemDTO `json:"ticket_types"`
	TicketStatuses    []LookupItemDTO `json:"ticket_statuses"`
	TicketPriorities  []LookupItemDTO `json:"ticket_priorities"`
	ProjectPriorities []LookupItemDTO `json:"project_priorities"`
}

type ListLookupsUseCase struct {
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewListLookupsUseCase(catalogRepo catalog.Repository, logger logger.Interface) *ListLookupsUseCase {
	return &ListLookupsUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *ListLookupsUseCase) Execute(ctx context.Context) (*LookupResult, error) {
	types, err := uc.catalogRepo.ListTicketTypes(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list ticket types", "error", err)
		return nil, errors.NewInternalError("failed to load lookups")
	}
	statuses, err := uc.catalogRepo.ListTicketStatuses(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list ticket statuses", "error", err)
		return nil, errors.NewInternalError("failed to load lookups")
	}
	ticketPriorities, err := uc.catalogRepo.ListTicketPriorities(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list ticket priorities", "error", err)
		return nil, errors.NewInternalError("failed to load lookups")
	}
	projectPriorities, err := uc.catalogRepo.ListProjectPriorities(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list project priorities", "error", err)
		return nil, errors.NewInternalError("failed to load lookups")
	}

	result := &LookupResult{
		TicketTypes:       make([]LookupItemDTO, 0, len(types)),
		TicketStatuses:    make([]LookupItemDTO, 0, len(statuses)),
		TicketPriorities:  make([]LookupItemDTO, 0, len(ticketPriorities)),
		ProjectPriorities: make([]LookupItemDTO, 0, len(projectPriorities)),
	}
	for _, t := range types {
		result.TicketTypes = append(result.TicketTypes, LookupItemDTO{ID: t.ID, Name: t.Name})
	}
	for _, s := range statuses {
		result.TicketStatuses = append(result.TicketStatuses, LookupItemDTO{ID: s.ID, Name: s.Name})
	}
	for _, p := range ticketPriorities {
		result.TicketPriorities = append(result.TicketPriorities, LookupItemDTO{ID: p.ID, Name: p.Name})
	}
	for _, p := range projectPriorities {
		result.ProjectPriorities = append(result.ProjectPriorities, LookupItemDTO{ID: p.ID, Name: p.Name})
	}
	return result, nil
}
