package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/domain/invite"
	"bugtrail/internal/infrastructure/persistence/mappers"
	"bugtrail/internal/infrastructure/persistence/models"
	"bugtrail/internal/shared/db"
	apperrors "bugtrail/internal/shared/errors"
)

type InviteRepository struct {
	db     *gorm.DB
	mapper mappers.InviteMapper
}

func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{
		db:     db,
		mapper: mappers.NewInviteMapper(),
	}
}

func (r *InviteRepository) Save(ctx context.Context, inv *invite.Invite) error {
	model := r.mapper.ToModel(inv)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save invite: %w", err)
	}
	return inv.SetID(model.ID)
}

func (r *InviteRepository) Update(ctx context.Context, inv *invite.Invite) error {
	model := r.mapper.ToModel(inv)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InviteModel{}).
		Where("id = ?", model.ID).
		Select("Accepted", "InviteeID").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update invite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("invite not found")
	}
	return nil
}

func (r *InviteRepository) GetByToken(ctx context.Context, token string) (*invite.Invite, error) {
	var model models.InviteModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("token = ?", token).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("invite not found")
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InviteRepository) GetByID(ctx context.Context, inviteID, companyID uint) (*invite.Invite, error) {
	var model models.InviteModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("id = ? AND company_id = ?", inviteID, companyID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("invite not found")
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InviteRepository) ExistsMatching(ctx context.Context, companyID uint, token, inviteeEmail string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	q := tx.Model(&models.InviteModel{}).
		Where("company_id = ? AND invitee_email = ?", companyID, inviteeEmail)
	if token != "" {
		q = q.Where("token = ?", token)
	}

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check invite existence: %w", err)
	}
	return count > 0, nil
}
