package usecases

import (
	"context"

	inviteusecases "bugtrail/internal/application/invite/usecases"
	"bugtrail/internal/domain/company"
	"bugtrail/internal/domain/identity"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type RegisterCommand struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	// CompanyName/CompanyDescription found a new tenant; InviteToken joins
	// an existing one instead. Exactly one path applies.
	CompanyName        string
	CompanyDescription string
	InviteToken        string
}

type RegisterResult struct {
	UserID    uint               `json:"user_id"`
	CompanyID uint               `json:"company_id"`
	Role      authorization.Role `json:"role"`
}

// RegisterUseCase creates an account. Without a token the caller founds a
// company and becomes its admin; with a token they join the invite's
// company and project as a submitter.
type RegisterUseCase struct {
	userRepo       user.Repository
	companyRepo    company.Repository
	membershipRepo project.MembershipRepository
	roleDirectory  identity.RoleDirectory
	validateInvite inviteusecases.ValidateInviteTokenExecutor
	acceptInvite   inviteusecases.AcceptInviteExecutor
	hasher         PasswordHasher
	tx             Transactor
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	companyRepo company.Repository,
	membershipRepo project.MembershipRepository,
	roleDirectory identity.RoleDirectory,
	validateInvite inviteusecases.ValidateInviteTokenExecutor,
	acceptInvite inviteusecases.AcceptInviteExecutor,
	hasher PasswordHasher,
	tx Transactor,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		membershipRepo: membershipRepo,
		roleDirectory:  roleDirectory,
		validateInvite: validateInvite,
		acceptInvite:   acceptInvite,
		hasher:         hasher,
		tx:             tx,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	if cmd.InviteToken == "" && cmd.CompanyName == "" {
		return nil, errors.NewValidationError("either a company name or an invite token is required")
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewConflictError("an account with this email already exists")
	} else if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check existing account", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	if cmd.InviteToken != "" {
		return uc.registerInvited(ctx, cmd, hash)
	}
	return uc.registerFounder(ctx, cmd, hash)
}

func (uc *RegisterUseCase) registerFounder(ctx context.Context, cmd RegisterCommand, hash string) (*RegisterResult, error) {
	comp, err := company.NewCompany(cmd.CompanyName, cmd.CompanyDescription)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result *RegisterResult
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.companyRepo.Save(ctx, comp); err != nil {
			return err
		}

		founder, err := user.NewUser(cmd.FirstName, cmd.LastName, cmd.Email, hash, comp.ID())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Save(ctx, founder); err != nil {
			return err
		}
		if err := uc.roleDirectory.AssignRole(ctx, founder.ID(), authorization.RoleAdmin); err != nil {
			return err
		}

		result = &RegisterResult{
			UserID:    founder.ID(),
			CompanyID: comp.ID(),
			Role:      authorization.RoleAdmin,
		}
		return nil
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to register founder", "error", err, "email", cmd.Email)
		return nil, errors.NewInternalError("failed to register")
	}

	uc.logger.Infow("company founded", "company_id", result.CompanyID, "user_id", result.UserID)
	return result, nil
}

func (uc *RegisterUseCase) registerInvited(ctx context.Context, cmd RegisterCommand, hash string) (*RegisterResult, error) {
	inv, err := uc.validateInvite.Redeemable(ctx, inviteusecases.ValidateInviteTokenQuery{
		Token: cmd.InviteToken,
		Email: cmd.Email,
	})
	if err != nil {
		return nil, err
	}

	var result *RegisterResult
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		invited, err := user.NewUser(cmd.FirstName, cmd.LastName, cmd.Email, hash, inv.CompanyID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Save(ctx, invited); err != nil {
			return err
		}
		if err := uc.roleDirectory.AssignRole(ctx, invited.ID(), authorization.RoleSubmitter); err != nil {
			return err
		}
		if err := uc.membershipRepo.Add(ctx, inv.ProjectID, invited.ID()); err != nil {
			return err
		}
		if _, err := uc.acceptInvite.Execute(ctx, inviteusecases.AcceptInviteCommand{
			Token:  cmd.InviteToken,
			UserID: invited.ID(),
		}); err != nil {
			return err
		}

		result = &RegisterResult{
			UserID:    invited.ID(),
			CompanyID: inv.CompanyID,
			Role:      authorization.RoleSubmitter,
		}
		return nil
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to register invited user", "error", err, "email", cmd.Email)
		return nil, errors.NewInternalError("failed to register")
	}

	uc.logger.Infow("invited user registered", "company_id", result.CompanyID, "user_id", result.UserID, "project_id", inv.ProjectID)
	return result, nil
}
