package usecases

import (
	"context"
	"time"

	"bugtrail/internal/domain/invite"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type ValidateInviteTokenQuery struct {
	Token string
	Email string
}

// ValidateInviteTokenUseCase answers two different questions about a
// token. Execute confirms a consumed token: the invite must have been
// accepted and the acceptance must fall inside the validity window.
// Redeemable is the pre-registration gate: the invite must still be
// unconsumed and inside the window.
type ValidateInviteTokenUseCase struct {
	inviteRepo invite.Repository
	window     time.Duration
	now        func() time.Time
	logger     logger.Interface
}

func NewValidateInviteTokenUseCase(inviteRepo invite.Repository, window time.Duration, logger logger.Interface) *ValidateInviteTokenUseCase {
	if window <= 0 {
		window = invite.DefaultValidityWindow
	}
	return &ValidateInviteTokenUseCase{
		inviteRepo: inviteRepo,
		window:     window,
		now:        time.Now,
		logger:     logger,
	}
}

func (uc *ValidateInviteTokenUseCase) Execute(ctx context.Context, query ValidateInviteTokenQuery) (*InviteDTO, error) {
	inv, err := uc.lookup(ctx, query)
	if err != nil {
		return nil, err
	}

	if !inv.Accepted() {
		return nil, errors.NewValidationError("invite has not been accepted")
	}
	if !inv.AcceptableAt(uc.now(), uc.window) {
		return nil, errors.NewValidationError("invite has expired")
	}

	dto := toInviteDTO(inv)
	return &dto, nil
}

// Redeemable reports whether the token can still be consumed by a new
// registration: it must exist, be unconsumed, and be inside the window.
func (uc *ValidateInviteTokenUseCase) Redeemable(ctx context.Context, query ValidateInviteTokenQuery) (*InviteDTO, error) {
	inv, err := uc.lookup(ctx, query)
	if err != nil {
		return nil, err
	}

	if inv.Accepted() {
		return nil, errors.NewValidationError("invite has already been used")
	}
	if !inv.AcceptableAt(uc.now(), uc.window) {
		return nil, errors.NewValidationError("invite has expired")
	}

	dto := toInviteDTO(inv)
	return &dto, nil
}

func (uc *ValidateInviteTokenUseCase) lookup(ctx context.Context, query ValidateInviteTokenQuery) (*invite.Invite, error) {
	if query.Token == "" {
		return nil, errors.NewValidationError("invite token is required")
	}

	inv, err := uc.inviteRepo.GetByToken(ctx, query.Token)
	if err != nil {
		return nil, err
	}

	if query.Email != "" && inv.InviteeEmail() != query.Email {
		return nil, errors.NewNotFoundError("invite not found")
	}
	return inv, nil
}

type AcceptInviteCommand struct {
	Token  string
	UserID uint
}

// AcceptInviteUseCase marks the invite consumed by the registered user.
// It does not re-check the validity window; validation is the gate and
// runs before the account exists.
type AcceptInviteUseCase struct {
	inviteRepo invite.Repository
	logger     logger.Interface
}

func NewAcceptInviteUseCase(inviteRepo invite.Repository, logger logger.Interface) *AcceptInviteUseCase {
	return &AcceptInviteUseCase{
		inviteRepo: inviteRepo,
		logger:     logger,
	}
}

func (uc *AcceptInviteUseCase) Execute(ctx context.Context, cmd AcceptInviteCommand) (*InviteDTO, error) {
	if cmd.Token == "" {
		return nil, errors.NewValidationError("invite token is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	inv, err := uc.inviteRepo.GetByToken(ctx, cmd.Token)
	if err != nil {
		return nil, err
	}

	if inv.Accepted() {
		return nil, errors.NewConflictError("invite has already been used")
	}

	if err := inv.Accept(cmd.UserID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inviteRepo.Update(ctx, inv); err != nil {
		uc.logger.Errorw("failed to mark invite accepted", "error", err, "invite_id", inv.ID())
		return nil, errors.NewInternalError("failed to accept invite")
	}

	uc.logger.Infow("invite accepted", "invite_id", inv.ID(), "user_id", cmd.UserID)

	dto := toInviteDTO(inv)
	return &dto, nil
}

type GetInviteQuery struct {
	ActorCompanyID uint
	InviteID       uint
}

type GetInviteUseCase struct {
	inviteRepo invite.Repository
	logger     logger.Interface
}

func NewGetInviteUseCase(inviteRepo invite.Repository, logger logger.Interface) *GetInviteUseCase {
	return &GetInviteUseCase{
		inviteRepo: inviteRepo,
		logger:     logger,
	}
}

func (uc *GetInviteUseCase) Execute(ctx context.Context, query GetInviteQuery) (*InviteDTO, error) {
	if query.InviteID == 0 {
		return nil, errors.NewValidationError("invite ID is required")
	}
	if query.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	inv, err := uc.inviteRepo.GetByID(ctx, query.InviteID, query.ActorCompanyID)
	if err != nil {
		return nil, err
	}

	dto := toInviteDTO(inv)
	return &dto, nil
}
