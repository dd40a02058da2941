package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bugtrail/internal/domain/user"
	"bugtrail/internal/infrastructure/persistence/mappers"
	"bugtrail/internal/infrastructure/persistence/models"
	"bugtrail/internal/shared/db"
	apperrors "bugtrail/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("FirstName", "LastName", "Email", "PasswordHash",
			"AvatarFileName", "AvatarContentType", "AvatarData").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("id = ?", userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ListByCompany(ctx context.Context, companyID uint) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelRows []models.UserModel
	err := tx.Where("company_id = ?", companyID).Order("last_name ASC, first_name ASC").Find(&modelRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list company users: %w", err)
	}
	return r.toDomain(modelRows)
}

func (r *UserRepository) ListByIDs(ctx context.Context, companyID uint, userIDs []uint) ([]*user.User, error) {
	if len(userIDs) == 0 {
		return []*user.User{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var modelRows []models.UserModel
	err := tx.Where("company_id = ? AND id IN ?", companyID, userIDs).Find(&modelRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users by ids: %w", err)
	}
	return r.toDomain(modelRows)
}

func (r *UserRepository) toDomain(modelRows []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(modelRows))
	for i := range modelRows {
		u, err := r.mapper.ToDomain(&modelRows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map user (id=%d): %w", modelRows[i].ID, err)
		}
		users = append(users, u)
	}
	return users, nil
}
