package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/application/history"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

// Attachments above this size are rejected before touching storage.
const maxAttachmentSize = 10 << 20

type AddAttachmentCommand struct {
	ActorUserID    uint
	ActorCompanyID uint
	TicketID       uint
	Description    string
	FileName       string
	ContentType    string
	Data           []byte
}

type AddAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	recorder       *history.Recorder
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	recorder *history.Recorder,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		recorder:       recorder,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AttachmentDTO, error) {
	if cmd.ActorUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}
	if len(cmd.Data) > maxAttachmentSize {
		return nil, errors.NewValidationError("attachment exceeds maximum size of 10MB")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, cmd.ActorCompanyID)
	if err != nil {
		return nil, err
	}

	attachment, err := ticket.NewAttachment(t.ID(), cmd.ActorUserID, cmd.Description, cmd.FileName, cmd.ContentType, cmd.Data)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to save attachment")
	}

	if err := uc.recorder.RecordEvent(ctx, t.ID(), fmt.Sprintf("attachment %q added by user %d", cmd.FileName, cmd.ActorUserID), cmd.ActorUserID); err != nil {
		return nil, err
	}

	dto := toAttachmentDTO(attachment)
	return &dto, nil
}

type GetAttachmentQuery struct {
	ActorCompanyID uint
	AttachmentID   uint
}

// GetAttachmentUseCase returns the stored bytes for download. The parent
// ticket lookup enforces tenant isolation.
type GetAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetAttachmentUseCase(ticketRepo ticket.Repository, attachmentRepo ticket.AttachmentRepository, logger logger.Interface) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetAttachmentUseCase) Execute(ctx context.Context, query GetAttachmentQuery) (*AttachmentFileDTO, error) {
	if query.AttachmentID == 0 {
		return nil, errors.NewValidationError("attachment ID is required")
	}
	if query.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	attachment, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.ticketRepo.GetByID(ctx, attachment.TicketID(), query.ActorCompanyID); err != nil {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	return &AttachmentFileDTO{
		FileName:    attachment.FileName(),
		ContentType: attachment.ContentType(),
		Data:        attachment.Data(),
	}, nil
}
