package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/infrastructure/persistence/mappers"
	"bugtrail/internal/infrastructure/persistence/models"
	"bugtrail/internal/shared/db"
	apperrors "bugtrail/internal/shared/errors"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("Name", "Description", "StartDate", "EndDate", "PriorityID",
			"Archived", "ImageFileName", "ImageContentType", "ImageData", "Version").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.ProjectModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to verify project existence: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("project not found")
		}
		return apperrors.NewConflictError("project was modified concurrently")
	}

	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID, companyID uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("id = ? AND company_id = ?", projectID, companyID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) ListByCompany(ctx context.Context, companyID uint, includeArchived bool) ([]*project.Project, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ProjectModel{}).Where("company_id = ?", companyID)
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}

	return r.list(query)
}

func (r *ProjectRepository) ListArchivedByCompany(ctx context.Context, companyID uint) ([]*project.Project, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ProjectModel{}).
		Where("company_id = ? AND archived = ?", companyID, true)

	return r.list(query)
}

func (r *ProjectRepository) ListByIDs(ctx context.Context, companyID uint, projectIDs []uint) ([]*project.Project, error) {
	if len(projectIDs) == 0 {
		return []*project.Project{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProjectModel{}).
		Where("company_id = ? AND id IN ?", companyID, projectIDs)

	return r.list(query)
}

func (r *ProjectRepository) ListByPriority(ctx context.Context, companyID, priorityID uint) ([]*project.Project, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ProjectModel{}).
		Where("company_id = ? AND priority_id = ? AND archived = ?", companyID, priorityID, false)

	return r.list(query)
}

func (r *ProjectRepository) list(query *gorm.DB) ([]*project.Project, error) {
	var modelRows []models.ProjectModel
	if err := query.Order("created_at DESC").Find(&modelRows).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, 0, len(modelRows))
	for i := range modelRows {
		p, err := r.mapper.ToDomain(&modelRows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map project (id=%d): %w", modelRows[i].ID, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// MembershipRepository persists the explicit (project, user) join rows.
type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Add(ctx context.Context, projectID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	row := models.ProjectMemberModel{ProjectID: projectID, UserID: userID}
	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to add project member: %w", err)
	}
	return nil
}

func (r *MembershipRepository) Remove(ctx context.Context, projectID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectMemberModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove project member: %w", err)
	}
	return nil
}

func (r *MembershipRepository) Contains(ctx context.Context, projectID, userID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.ProjectMemberModel{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check project membership: %w", err)
	}
	return count > 0, nil
}

func (r *MembershipRepository) MemberIDs(ctx context.Context, projectID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	err := tx.Model(&models.ProjectMemberModel{}).
		Where("project_id = ?", projectID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	return ids, nil
}

func (r *MembershipRepository) ProjectIDs(ctx context.Context, userID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	err := tx.Model(&models.ProjectMemberModel{}).
		Where("user_id = ?", userID).
		Pluck("project_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list member projects: %w", err)
	}
	return ids, nil
}
