package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/domain/catalog"
	"bugtrail/internal/infrastructure/persistence/models"
	"bugtrail/internal/shared/db"
	apperrors "bugtrail/internal/shared/errors"
)

// CatalogRepository reads the seeded reference tables.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListTicketTypes(ctx context.Context) ([]catalog.TicketType, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketTypeModel
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}

	items := make([]catalog.TicketType, 0, len(rows))
	for _, row := range rows {
		items = append(items, catalog.TicketType{ID: row.ID, Name: row.Name})
	}
	return items, nil
}

func (r *CatalogRepository) ListTicketStatuses(ctx context.Context) ([]catalog.TicketStatus, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketStatusModel
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket statuses: %w", err)
	}

	items := make([]catalog.TicketStatus, 0, len(rows))
	for _, row := range rows {
		items = append(items, catalog.TicketStatus{ID: row.ID, Name: row.Name})
	}
	return items, nil
}

func (r *CatalogRepository) ListTicketPriorities(ctx context.Context) ([]catalog.TicketPriority, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketPriorityModel
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket priorities: %w", err)
	}

	items := make([]catalog.TicketPriority, 0, len(rows))
	for _, row := range rows {
		items = append(items, catalog.TicketPriority{ID: row.ID, Name: row.Name})
	}
	return items, nil
}

func (r *CatalogRepository) ListProjectPriorities(ctx context.Context) ([]catalog.ProjectPriority, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ProjectPriorityModel
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list project priorities: %w", err)
	}

	items := make([]catalog.ProjectPriority, 0, len(rows))
	for _, row := range rows {
		items = append(items, catalog.ProjectPriority{ID: row.ID, Name: row.Name})
	}
	return items, nil
}

func (r *CatalogRepository) TicketTypeIDByName(ctx context.Context, name string) (uint, error) {
	var row models.TicketTypeModel
	if err := r.lookup(ctx, &row, name); err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *CatalogRepository) TicketStatusIDByName(ctx context.Context, name string) (uint, error) {
	var row models.TicketStatusModel
	if err := r.lookup(ctx, &row, name); err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *CatalogRepository) TicketPriorityIDByName(ctx context.Context, name string) (uint, error) {
	var row models.TicketPriorityModel
	if err := r.lookup(ctx, &row, name); err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *CatalogRepository) ProjectPriorityIDByName(ctx context.Context, name string) (uint, error) {
	var row models.ProjectPriorityModel
	if err := r.lookup(ctx, &row, name); err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *CatalogRepository) lookup(ctx context.Context, dest interface{}, name string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("name = ?", name).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("catalog entry %q not found", name))
		}
		return fmt.Errorf("failed to look up catalog entry: %w", err)
	}
	return nil
}
