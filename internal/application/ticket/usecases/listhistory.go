package usecases

import (
	"context"

	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type ListHistoryQuery struct {
	ActorCompanyID uint
	// TicketID, ProjectID scope the listing; with both zero the whole
	// company trail is returned.
	TicketID  uint
	ProjectID uint
}

type ListHistoryUseCase struct {
	historyRepo ticket.HistoryRepository
	ticketRepo  ticket.Repository
	logger      logger.Interface
}

func NewListHistoryUseCase(historyRepo ticket.HistoryRepository, ticketRepo ticket.Repository, logger logger.Interface) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		historyRepo: historyRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *ListHistoryUseCase) Execute(ctx context.Context, query ListHistoryQuery) ([]HistoryEntryDTO, error) {
	if query.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	var (
		entries []ticket.HistoryEntry
		err     error
	)
	switch {
	case query.TicketID != 0:
		// The trail itself carries no company column, so ownership is
		// established through the ticket before reading it.
		if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID, query.ActorCompanyID); err != nil {
			return nil, err
		}
		entries, err = uc.historyRepo.ListByTicket(ctx, query.TicketID)
	case query.ProjectID != 0:
		entries, err = uc.historyRepo.ListByProject(ctx, query.ProjectID, query.ActorCompanyID)
	default:
		entries, err = uc.historyRepo.ListByCompany(ctx, query.ActorCompanyID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list history", "error", err, "company_id", query.ActorCompanyID)
		return nil, errors.NewInternalError("failed to list history")
	}

	return toHistoryEntryDTOs(entries), nil
}
