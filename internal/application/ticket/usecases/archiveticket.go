package usecases

import (
	"context"

	"bugtrail/internal/application/history"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type ArchiveTicketCommand struct {
	ActorUserID    uint
	ActorCompanyID uint
	TicketID       uint
}

// ArchiveTicketUseCase flips only the ticket-level flag; the project-level
// flag is owned by the project archive cascade and untouched here.
type ArchiveTicketUseCase struct {
	ticketRepo ticket.Repository
	recorder   *history.Recorder
	logger     logger.Interface
}

func NewArchiveTicketUseCase(ticketRepo ticket.Repository, recorder *history.Recorder, logger logger.Interface) *ArchiveTicketUseCase {
	return &ArchiveTicketUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *ArchiveTicketUseCase) Execute(ctx context.Context, cmd ArchiveTicketCommand) error {
	if cmd.ActorUserID == 0 {
		return errors.NewValidationError("acting user ID is required")
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, cmd.ActorCompanyID)
	if err != nil {
		return err
	}

	if t.Archived() {
		return nil
	}

	before := *t
	t.Archive()

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to archive ticket", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	if err := uc.recorder.RecordChange(ctx, &before, t, cmd.ActorUserID); err != nil {
		return err
	}

	uc.logger.Infow("ticket archived", "ticket_id", cmd.TicketID)
	return nil
}

type RestoreTicketCommand struct {
	ActorUserID    uint
	ActorCompanyID uint
	TicketID       uint
}

// RestoreTicketUseCase clears the ticket-level flag. A ticket whose project
// is still archived stays out of live views until the project is restored.
type RestoreTicketUseCase struct {
	ticketRepo ticket.Repository
	recorder   *history.Recorder
	logger     logger.Interface
}

func NewRestoreTicketUseCase(ticketRepo ticket.Repository, recorder *history.Recorder, logger logger.Interface) *RestoreTicketUseCase {
	return &RestoreTicketUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *RestoreTicketUseCase) Execute(ctx context.Context, cmd RestoreTicketCommand) error {
	if cmd.ActorUserID == 0 {
		return errors.NewValidationError("acting user ID is required")
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, cmd.ActorCompanyID)
	if err != nil {
		return err
	}

	if !t.Archived() {
		return nil
	}

	before := *t
	t.Restore()

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to restore ticket", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	if err := uc.recorder.RecordChange(ctx, &before, t, cmd.ActorUserID); err != nil {
		return err
	}

	uc.logger.Infow("ticket restored", "ticket_id", cmd.TicketID)
	return nil
}
