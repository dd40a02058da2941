package usecases

import (
	"context"

	"bugtrail/internal/application/history"
	"bugtrail/internal/domain/catalog"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type AssignDeveloperCommand struct {
	ActorUserID    uint
	ActorCompanyID uint
	TicketID       uint
	DeveloperID    uint
}

// AssignDeveloperUseCase puts a developer on a ticket and moves the ticket
// into the Development status in the same step.
type AssignDeveloperUseCase struct {
	ticketRepo  ticket.Repository
	userRepo    user.Repository
	catalogRepo catalog.Repository
	recorder    *history.Recorder
	logger      logger.Interface
}

func NewAssignDeveloperUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	recorder *history.Recorder,
	logger logger.Interface,
) *AssignDeveloperUseCase {
	return &AssignDeveloperUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

func (uc *AssignDeveloperUseCase) Execute(ctx context.Context, cmd AssignDeveloperCommand) error {
	if cmd.ActorUserID == 0 {
		return errors.NewValidationError("acting user ID is required")
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.DeveloperID == 0 {
		return errors.NewValidationError("developer ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, cmd.ActorCompanyID)
	if err != nil {
		return err
	}

	developer, err := uc.userRepo.GetByID(ctx, cmd.DeveloperID)
	if err != nil {
		return err
	}
	if !developer.BelongsTo(cmd.ActorCompanyID) {
		return errors.NewNotFoundError("user not found")
	}

	statusID, err := uc.catalogRepo.TicketStatusIDByName(ctx, catalog.StatusDevelopment)
	if err != nil {
		uc.logger.Errorw("failed to resolve development status", "error", err)
		return errors.NewInternalError("failed to resolve ticket status")
	}

	before := *t

	if err := t.AssignDeveloper(cmd.DeveloperID, statusID); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to assign developer", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	if err := uc.recorder.RecordChange(ctx, &before, t, cmd.ActorUserID); err != nil {
		return err
	}

	uc.logger.Infow("developer assigned", "ticket_id", cmd.TicketID, "developer_id", cmd.DeveloperID)
	return nil
}
