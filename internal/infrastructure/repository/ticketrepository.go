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

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update persists the aggregate guarded by the version the caller loaded.
// A zero-row update on an existing ticket means a concurrent writer won.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("Title", "Description", "TypeID", "PriorityID", "StatusID",
			"DeveloperID", "ProjectID", "Archived", "ArchivedByProject", "Version").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.TicketModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to verify ticket existence: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("ticket not found")
		}
		return apperrors.NewConflictError("ticket was modified concurrently")
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID, companyID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("id = ? AND company_id = ?", ticketID, companyID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{}).Where("company_id = ?", companyID)

	switch filter.Visibility {
	case ticket.VisibilityLive:
		query = query.Where("archived = ? AND archived_by_project = ?", false, false)
	case ticket.VisibilityArchived:
		query = query.Where("archived = ? OR archived_by_project = ?", true, true)
	case ticket.VisibilityAll:
	}

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if len(filter.ProjectIDs) > 0 {
		query = query.Where("project_id IN ?", filter.ProjectIDs)
	}
	if filter.DeveloperID != nil {
		query = query.Where("developer_id = ?", *filter.DeveloperID)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}
	if filter.PriorityID != nil {
		query = query.Where("priority_id = ?", *filter.PriorityID)
	}
	if filter.TypeID != nil {
		query = query.Where("type_id = ?", *filter.TypeID)
	}
	if filter.Unassigned {
		query = query.Where("developer_id IS NULL")
	}

	var modelRows []models.TicketModel
	if err := query.Order("created_at DESC").Find(&modelRows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelRows))
	for i := range modelRows {
		t, err := r.mapper.ToDomain(&modelRows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map ticket (id=%d): %w", modelRows[i].ID, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// SetArchivedByProject flips the derived flag on every ticket of the
// project in one statement. The caller wraps it in the cascade transaction.
func (r *TicketRepository) SetArchivedByProject(ctx context.Context, projectID uint, archived bool) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.TicketModel{}).
		Where("project_id = ?", projectID).
		Update("archived_by_project", archived).Error
	if err != nil {
		return fmt.Errorf("failed to cascade archive flag: %w", err)
	}
	return nil
}
