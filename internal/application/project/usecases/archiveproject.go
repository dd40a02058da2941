package usecases

import (
	"context"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type ArchiveProjectCommand struct {
	ActorCompanyID uint
	ProjectID      uint
}

type ArchiveProjectResult struct {
	ProjectID uint `json:"project_id"`
	Archived  bool `json:"archived"`
}

// ArchiveProjectUseCase soft-deletes a project and cascades the
// ArchivedByProject flag onto every ticket it owns. The whole cascade runs
// in one transaction so a mid-cascade failure leaves nothing half-archived.
type ArchiveProjectUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.Repository
	tx          Transactor
	logger      logger.Interface
}

func NewArchiveProjectUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	tx Transactor,
	logger logger.Interface,
) *ArchiveProjectUseCase {
	return &ArchiveProjectUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *ArchiveProjectUseCase) Execute(ctx context.Context, cmd ArchiveProjectCommand) (*ArchiveProjectResult, error) {
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

	if proj.Archived() {
		return &ArchiveProjectResult{ProjectID: proj.ID(), Archived: true}, nil
	}

	proj.Archive()

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.projectRepo.Update(txCtx, proj); err != nil {
			return err
		}
		if err := uc.ticketRepo.SetArchivedByProject(txCtx, proj.ID(), true); err != nil {
			return errors.NewDownstreamError("failed to cascade archive to project tickets", err.Error())
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to archive project", "error", err, "project_id", cmd.ProjectID)
		return nil, err
	}

	uc.logger.Infow("project archived", "project_id", proj.ID(), "company_id", cmd.ActorCompanyID)

	return &ArchiveProjectResult{
		ProjectID: proj.ID(),
		Archived:  true,
	}, nil
}

type RestoreProjectCommand struct {
	ActorCompanyID uint
	ProjectID      uint
}

type RestoreProjectResult struct {
	ProjectID uint `json:"project_id"`
	Archived  bool `json:"archived"`
}

// RestoreProjectUseCase is the mirror of archive: clears the project flag
// and the derived flag on every owned ticket. A ticket's own Archived flag
// is untouched either way.
type RestoreProjectUseCase struct {
	projectRepo project.Repository
	ticketRepo  ticket.Repository
	tx          Transactor
	logger      logger.Interface
}

func NewRestoreProjectUseCase(
	projectRepo project.Repository,
	ticketRepo ticket.Repository,
	tx Transactor,
	logger logger.Interface,
) *RestoreProjectUseCase {
	return &RestoreProjectUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *RestoreProjectUseCase) Execute(ctx context.Context, cmd RestoreProjectCommand) (*RestoreProjectResult, error) {
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

	if !proj.Archived() {
		return &RestoreProjectResult{ProjectID: proj.ID(), Archived: false}, nil
	}

	proj.Restore()

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.projectRepo.Update(txCtx, proj); err != nil {
			return err
		}
		if err := uc.ticketRepo.SetArchivedByProject(txCtx, proj.ID(), false); err != nil {
			return errors.NewDownstreamError("failed to cascade restore to project tickets", err.Error())
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to restore project", "error", err, "project_id", cmd.ProjectID)
		return nil, err
	}

	uc.logger.Infow("project restored", "project_id", proj.ID(), "company_id", cmd.ActorCompanyID)

	return &RestoreProjectResult{
		ProjectID: proj.ID(),
		Archived:  false,
	}, nil
}
