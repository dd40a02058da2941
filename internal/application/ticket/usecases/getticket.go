package usecases

import (
	"context"

	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	ActorCompanyID uint
	TicketID       uint
}

type GetTicketUseCase struct {
	ticketRepo     ticket.Repository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	historyRepo    ticket.HistoryRepository
	markdownSvc    markdown.Service
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	historyRepo ticket.HistoryRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		historyRepo:    historyRepo,
		markdownSvc:    markdownSvc,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDetailDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if query.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID, query.ActorCompanyID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to load ticket detail")
	}

	attachments, err := uc.attachmentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to load ticket detail")
	}

	entries, err := uc.historyRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list history", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to load ticket detail")
	}

	detail := &TicketDetailDTO{
		Ticket:      toTicketDTO(t),
		Comments:    make([]CommentDTO, 0, len(comments)),
		Attachments: make([]AttachmentDTO, 0, len(attachments)),
		History:     toHistoryEntryDTOs(entries),
	}

	for _, comment := range comments {
		dto := toCommentDTO(comment)
		html, err := uc.markdownSvc.ToHTMLSanitized(comment.Body())
		if err != nil {
			uc.logger.Warnw("failed to render comment markdown", "error", err, "comment_id", comment.ID())
		} else {
			dto.BodyHTML = html
		}
		detail.Comments = append(detail.Comments, dto)
	}
	for _, attachment := range attachments {
		detail.Attachments = append(detail.Attachments, toAttachmentDTO(attachment))
	}

	return detail, nil
}
