package usecases

import (
	"context"
	"time"

	"bugtrail/internal/domain/identity"
	"bugtrail/internal/domain/notification"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type DispatchToUsersCommand struct {
	ActorUserID    uint
	ActorCompanyID uint
	RecipientIDs   []uint
	TicketID       *uint
	Title          string
	Message        string
}

type DispatchToRoleCommand struct {
	ActorUserID    uint
	ActorCompanyID uint
	Role           authorization.Role
	TicketID       *uint
	Title          string
	Message        string
}

// RecipientFailure records one recipient the dispatcher could not reach.
type RecipientFailure struct {
	RecipientID uint   `json:"recipient_id"`
	Reason      string `json:"reason"`
}

// DispatchResult reports fan-out per recipient: one failed delivery never
// aborts the rest.
type DispatchResult struct {
	Delivered uint               `json:"delivered"`
	Failures  []RecipientFailure `json:"failures,omitempty"`
}

// DispatchToUsersUseCase persists one notification copy per recipient and
// emails each one. Recipients outside the actor's company are dropped
// silently; delivery failures are collected, not propagated.
type DispatchToUsersUseCase struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	emailSender      notification.EmailSender
	logger           logger.Interface
}

func NewDispatchToUsersUseCase(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	emailSender notification.EmailSender,
	logger logger.Interface,
) *DispatchToUsersUseCase {
	return &DispatchToUsersUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailSender:      emailSender,
		logger:           logger,
	}
}

func (uc *DispatchToUsersUseCase) Execute(ctx context.Context, cmd DispatchToUsersCommand) (*DispatchResult, error) {
	if cmd.ActorUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}
	if len(cmd.RecipientIDs) == 0 {
		return nil, errors.NewValidationError("at least one recipient is required")
	}

	template, err := notification.NewNotification(cmd.ActorUserID, cmd.TicketID, cmd.Title, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	recipients, err := uc.userRepo.ListByIDs(ctx, cmd.ActorCompanyID, cmd.RecipientIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve recipients", "error", err, "company_id", cmd.ActorCompanyID)
		return nil, errors.NewInternalError("failed to dispatch notifications")
	}

	return uc.fanOut(ctx, template, recipients), nil
}

func (uc *DispatchToUsersUseCase) fanOut(ctx context.Context, template *notification.Notification, recipients []*user.User) *DispatchResult {
	result := &DispatchResult{}

	for _, recipient := range recipients {
		addressed := template.ForRecipient(recipient.ID())

		if err := uc.notificationRepo.Save(ctx, addressed); err != nil {
			uc.logger.Warnw("failed to persist notification", "error", err, "recipient_id", recipient.ID())
			result.Failures = append(result.Failures, RecipientFailure{
				RecipientID: recipient.ID(),
				Reason:      "failed to persist notification",
			})
			continue
		}

		sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		err := uc.emailSender.Send(sendCtx, recipient.Email(), template.Title(), template.Message())
		cancel()
		if err != nil {
			uc.logger.Warnw("failed to email notification", "error", err, "recipient_id", recipient.ID())
			result.Failures = append(result.Failures, RecipientFailure{
				RecipientID: recipient.ID(),
				Reason:      "failed to send email",
			})
			continue
		}

		result.Delivered++
	}

	uc.logger.Infow("notification fan-out finished",
		"sender_id", template.SenderID(), "delivered", result.Delivered, "failed", len(result.Failures))
	return result
}

// DispatchToRoleUseCase fans a notification out to every company member
// holding the given role.
type DispatchToRoleUseCase struct {
	dispatch      *DispatchToUsersUseCase
	roleDirectory identity.RoleDirectory
	userRepo      user.Repository
	logger        logger.Interface
}

func NewDispatchToRoleUseCase(
	dispatch *DispatchToUsersUseCase,
	roleDirectory identity.RoleDirectory,
	userRepo user.Repository,
	logger logger.Interface,
) *DispatchToRoleUseCase {
	return &DispatchToRoleUseCase{
		dispatch:      dispatch,
		roleDirectory: roleDirectory,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *DispatchToRoleUseCase) Execute(ctx context.Context, cmd DispatchToRoleCommand) (*DispatchResult, error) {
	if cmd.ActorUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}
	if !cmd.Role.IsValid() {
		return nil, errors.NewValidationError("unknown role: " + string(cmd.Role))
	}

	userIDs, err := uc.roleDirectory.UserIDsInRole(ctx, cmd.Role)
	if err != nil {
		uc.logger.Errorw("failed to enumerate role members", "error", err, "role", cmd.Role)
		return nil, errors.NewInternalError("failed to dispatch notifications")
	}
	if len(userIDs) == 0 {
		return &DispatchResult{}, nil
	}

	// The directory is company-agnostic; ListByIDs narrows to the tenant.
	members, err := uc.userRepo.ListByIDs(ctx, cmd.ActorCompanyID, userIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve role members", "error", err, "company_id", cmd.ActorCompanyID)
		return nil, errors.NewInternalError("failed to dispatch notifications")
	}
	if len(members) == 0 {
		return &DispatchResult{}, nil
	}

	template, err := notification.NewNotification(cmd.ActorUserID, cmd.TicketID, cmd.Title, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	return uc.dispatch.fanOut(ctx, template, members), nil
}
