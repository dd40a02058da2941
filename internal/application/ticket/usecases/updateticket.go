package usecases

import (
	"context"
	"time"

	"bugtrail/internal/application/history"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type UpdateTicketCommand struct {
	ActorUserID    uint
	ActorCompanyID uint
	TicketID       uint
	Title          string
	Description    string
	TypeID         uint
	PriorityID     uint
	StatusID       uint
}

type UpdateTicketResult struct {
	TicketID  uint   `json:"ticket_id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updated_at"`
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	recorder   *history.Recorder
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, recorder *history.Recorder, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.ActorUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, cmd.ActorCompanyID)
	if err != nil {
		return nil, err
	}

	// Snapshot before mutation so the recorder can diff old against new.
	before := *t

	if err := t.UpdateDetails(cmd.Title, cmd.Description, cmd.TypeID, cmd.PriorityID, cmd.StatusID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	if err := uc.recorder.RecordChange(ctx, &before, t, cmd.ActorUserID); err != nil {
		return nil, err
	}

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		Title:     t.Title(),
		UpdatedAt: t.UpdatedAt().Format(time.RFC3339),
	}, nil
}
