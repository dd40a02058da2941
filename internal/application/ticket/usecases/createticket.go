package usecases

import (
	"context"

	"bugtrail/internal/application/history"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type CreateTicketCommand struct {
	ActorUserID    uint
	ActorCompanyID uint
	ProjectID      uint
	Title          string
	Description    string
	TypeID         uint
	PriorityID     uint
	StatusID       uint
}

type CreateTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Title    string `json:"title"`
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	projectRepo project.Repository
	recorder    *history.Recorder
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	projectRepo project.Repository,
	recorder *history.Recorder,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if cmd.ActorUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	// The project lookup doubles as the tenant check: a project outside the
	// actor's company comes back not-found.
	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID, cmd.ActorCompanyID); err != nil {
		return nil, err
	}

	t, err := ticket.NewTicket(cmd.ActorCompanyID, cmd.ProjectID, cmd.Title, cmd.Description,
		cmd.TypeID, cmd.PriorityID, cmd.StatusID, cmd.ActorUserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "project_id", cmd.ProjectID)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	if err := uc.recorder.RecordChange(ctx, nil, t, cmd.ActorUserID); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "project_id", cmd.ProjectID, "owner_id", cmd.ActorUserID)

	return &CreateTicketResult{
		TicketID: t.ID(),
		Title:    t.Title(),
	}, nil
}
