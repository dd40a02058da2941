package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/infrastructure/persistence/mappers"
	"bugtrail/internal/infrastructure/persistence/models"
	"bugtrail/internal/shared/db"
	apperrors "bugtrail/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return comment.SetID(model.ID)
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelRows []models.TicketCommentModel
	err := tx.Where("ticket_id = ?", ticketID).Order("created_at ASC").Find(&modelRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(modelRows))
	for i := range modelRows {
		comments = append(comments, r.mapper.CommentToDomain(&modelRows[i]))
	}
	return comments, nil
}

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(attachment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}
	return attachment.SetID(model.ID)
}

func (r *AttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	var model models.TicketAttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("id = ?", attachmentID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("attachment not found")
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model), nil
}

func (r *AttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelRows []models.TicketAttachmentModel
	err := tx.Where("ticket_id = ?", ticketID).Order("created_at ASC").Find(&modelRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, 0, len(modelRows))
	for i := range modelRows {
		attachments = append(attachments, r.mapper.AttachmentToDomain(&modelRows[i]))
	}
	return attachments, nil
}

// HistoryRepository is insert-only; entries are never updated or deleted.
type HistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *HistoryRepository) Save(ctx context.Context, entry ticket.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

func (r *HistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]ticket.HistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelRows []models.TicketHistoryModel
	err := tx.Where("ticket_id = ?", ticketID).Order("created_at ASC").Find(&modelRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return r.toDomain(modelRows), nil
}

func (r *HistoryRepository) ListByCompany(ctx context.Context, companyID uint) ([]ticket.HistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelRows []models.TicketHistoryModel
	err := tx.
		Joins("JOIN tickets ON tickets.id = ticket_histories.ticket_id").
		Where("tickets.company_id = ?", companyID).
		Order("ticket_histories.created_at DESC").
		Find(&modelRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list company history: %w", err)
	}
	return r.toDomain(modelRows), nil
}

func (r *HistoryRepository) ListByProject(ctx context.Context, projectID, companyID uint) ([]ticket.HistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelRows []models.TicketHistoryModel
	err := tx.
		Joins("JOIN tickets ON tickets.id = ticket_histories.ticket_id").
		Where("tickets.project_id = ? AND tickets.company_id = ?", projectID, companyID).
		Order("ticket_histories.created_at DESC").
		Find(&modelRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list project history: %w", err)
	}
	return r.toDomain(modelRows), nil
}

func (r *HistoryRepository) toDomain(modelRows []models.TicketHistoryModel) []ticket.HistoryEntry {
	entries := make([]ticket.HistoryEntry, 0, len(modelRows))
	for i := range modelRows {
		entries = append(entries, r.mapper.HistoryToDomain(&modelRows[i]))
	}
	return entries
}
