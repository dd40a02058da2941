package mappers

import (
	"time"

	"gorm.io/datatypes"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/infrastructure/persistence/models"
)

type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	model := &models.ProjectModel{
		ID:          p.ID(),
		CompanyID:   p.CompanyID(),
		Name:        p.Name(),
		Description: p.Description(),
		StartDate:   datatypes.Date(p.StartDate()),
		EndDate:     datatypes.Date(p.EndDate()),
		PriorityID:  p.PriorityID(),
		Archived:    p.Archived(),
		Version:     p.Version(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}

	if image := p.Image(); image != nil {
		model.ImageFileName = image.FileName
		model.ImageContentType = image.ContentType
		model.ImageData = image.Data
	}

	return model
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	var image *project.Image
	if len(model.ImageData) > 0 {
		image = &project.Image{
			FileName:    model.ImageFileName,
			ContentType: model.ImageContentType,
			Data:        model.ImageData,
		}
	}

	return project.ReconstructProject(
		model.ID,
		model.CompanyID,
		model.Name,
		model.Description,
		time.Time(model.StartDate),
		time.Time(model.EndDate),
		model.PriorityID,
		model.Archived,
		image,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
