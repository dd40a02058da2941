package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/domain/company"
	"bugtrail/internal/infrastructure/persistence/mappers"
	"bugtrail/internal/infrastructure/persistence/models"
	"bugtrail/internal/shared/db"
	apperrors "bugtrail/internal/shared/errors"
)

type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		db:     db,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *CompanyRepository) Save(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CompanyRepository) GetByID(ctx context.Context, companyID uint) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("id = ?", companyID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
