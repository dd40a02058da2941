package usecases

import (
	"context"
	"time"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type CreateProjectCommand struct {
	ActorCompanyID uint
	Name           string
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	PriorityID     uint
}

type CreateProjectResult struct {
	ProjectID uint   `json:"project_id"`
	Name      string `json:"name"`
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCreateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	if cmd.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	proj, err := project.NewProject(cmd.ActorCompanyID, cmd.Name, cmd.Description, cmd.StartDate, cmd.EndDate, cmd.PriorityID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Save(ctx, proj); err != nil {
		uc.logger.Errorw("failed to save project", "error", err, "company_id", cmd.ActorCompanyID)
		return nil, errors.NewInternalError("failed to save project")
	}

	uc.logger.Infow("project created", "project_id", proj.ID(), "company_id", cmd.ActorCompanyID)

	return &CreateProjectResult{
		ProjectID: proj.ID(),
		Name:      proj.Name(),
	}, nil
}

type UpdateProjectCommand struct {
	ActorCompanyID uint
	ProjectID      uint
	Name           string
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	PriorityID     uint
}

type UpdateProjectResult struct {
	ProjectID uint   `json:"project_id"`
	Name      string `json:"name"`
	UpdatedAt string `json:"updated_at"`
}

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*UpdateProjectResult, error) {
	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	proj, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID, cmd.ActorCompanyID)
	if err != nil {
		return nil, err
	}

	if err := proj.UpdateDetails(cmd.Name, cmd.Description, cmd.StartDate, cmd.EndDate, cmd.PriorityID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, proj); err != nil {
		uc.logger.Errorw("failed to update project", "error", err, "project_id", cmd.ProjectID)
		return nil, err
	}

	return &UpdateProjectResult{
		ProjectID: proj.ID(),
		Name:      proj.Name(),
		UpdatedAt: proj.UpdatedAt().Format(time.RFC3339),
	}, nil
}
