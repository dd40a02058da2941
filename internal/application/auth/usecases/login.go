package usecases

import (
	"context"

	"bugtrail/internal/domain/identity"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string             `json:"token"`
	UserID    uint               `json:"user_id"`
	CompanyID uint               `json:"company_id"`
	Role      authorization.Role `json:"role"`
}

type LoginUseCase struct {
	userRepo      user.Repository
	roleDirectory identity.RoleDirectory
	hasher        PasswordHasher
	tokenIssuer   TokenIssuer
	logger        logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	roleDirectory identity.RoleDirectory,
	hasher PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:      userRepo,
		roleDirectory: roleDirectory,
		hasher:        hasher,
		tokenIssuer:   tokenIssuer,
		logger:        logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	// Credential failures all map to the same message so a caller cannot
	// probe which emails have accounts.
	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to load account", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	if err := uc.hasher.Compare(account.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	roles, err := uc.roleDirectory.RolesOf(ctx, account.ID())
	if err != nil {
		uc.logger.Errorw("failed to read roles", "error", err, "user_id", account.ID())
		return nil, errors.NewInternalError("failed to log in")
	}
	if len(roles) == 0 {
		return nil, errors.NewForbiddenError("account has no role assigned")
	}
	role := roles[0]

	token, err := uc.tokenIssuer.Issue(account.ID(), account.CompanyID(), role)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", account.ID())
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "role", role)

	return &LoginResult{
		Token:     token,
		UserID:    account.ID(),
		CompanyID: account.CompanyID(),
		Role:      role,
	}, nil
}
