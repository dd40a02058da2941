package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/application/history"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type AddCommentCommand struct {
	ActorUserID    uint
	ActorCompanyID uint
	TicketID       uint
	Body           string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	recorder    *history.Recorder
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	recorder *history.Recorder,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentDTO, error) {
	if cmd.ActorUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, cmd.ActorCompanyID)
	if err != nil {
		return nil, err
	}

	comment, err := ticket.NewComment(t.ID(), cmd.ActorUserID, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to save comment")
	}

	if err := uc.recorder.RecordEvent(ctx, t.ID(), fmt.Sprintf("comment added by user %d", cmd.ActorUserID), cmd.ActorUserID); err != nil {
		return nil, err
	}

	dto := toCommentDTO(comment)
	return &dto, nil
}
