package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/invite"
	"bugtrail/internal/domain/notification"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type IssueInviteCommand struct {
	ActorUserID    uint
	ActorCompanyID uint
	ProjectID      uint
	InviteeEmail   string
	InviteeFirst   string
	InviteeLast    string
}

type IssueInviteResult struct {
	InviteID  uint   `json:"invite_id"`
	Token     string `json:"token"`
	AcceptURL string `json:"accept_url"`
}

// IssueInviteUseCase creates a time-boxed invite and emails the accept
// link. A failed email is a warning, not a rollback; the invite stays
// issued and the link can be re-sent.
type IssueInviteUseCase struct {
	inviteRepo  invite.Repository
	projectRepo project.Repository
	emailSender notification.EmailSender
	baseURL     string
	logger      logger.Interface
}

func NewIssueInviteUseCase(
	inviteRepo invite.Repository,
	projectRepo project.Repository,
	emailSender notification.EmailSender,
	baseURL string,
	logger logger.Interface,
) *IssueInviteUseCase {
	return &IssueInviteUseCase{
		inviteRepo:  inviteRepo,
		projectRepo: projectRepo,
		emailSender: emailSender,
		baseURL:     baseURL,
		logger:      logger,
	}
}

func (uc *IssueInviteUseCase) Execute(ctx context.Context, cmd IssueInviteCommand) (*IssueInviteResult, error) {
	if cmd.ActorUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if cmd.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID, cmd.ActorCompanyID); err != nil {
		return nil, err
	}

	inv, err := invite.NewInvite(cmd.ActorCompanyID, cmd.ProjectID, cmd.ActorUserID,
		cmd.InviteeEmail, cmd.InviteeFirst, cmd.InviteeLast)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Token left empty: the check covers any outstanding invite for this
	// invitee in the company, not just one carrying the same token.
	exists, err := uc.inviteRepo.ExistsMatching(ctx, cmd.ActorCompanyID, "", inv.InviteeEmail())
	if err != nil {
		uc.logger.Errorw("failed to check invite uniqueness", "error", err, "company_id", cmd.ActorCompanyID)
		return nil, errors.NewInternalError("failed to issue invite")
	}
	if exists {
		return nil, errors.NewConflictError("an invite for this email already exists")
	}

	if err := uc.inviteRepo.Save(ctx, inv); err != nil {
		uc.logger.Errorw("failed to save invite", "error", err, "company_id", cmd.ActorCompanyID)
		return nil, errors.NewInternalError("failed to issue invite")
	}

	acceptURL := fmt.Sprintf("%s/invites/accept?token=%s&email=%s", uc.baseURL, inv.Token(), inv.InviteeEmail())
	subject := "You have been invited to a bug tracker project"
	body := fmt.Sprintf("Hello %s,\n\nYou have been invited to join a project. Follow this link to register:\n%s\n\nThe invite expires in 7 days.",
		inv.InviteeFirst(), acceptURL)

	if err := uc.emailSender.Send(ctx, inv.InviteeEmail(), subject, body); err != nil {
		uc.logger.Warnw("failed to send invite email", "error", err, "invite_id", inv.ID(), "email", inv.InviteeEmail())
	}

	uc.logger.Infow("invite issued", "invite_id", inv.ID(), "project_id", cmd.ProjectID, "email", inv.InviteeEmail())

	return &IssueInviteResult{
		InviteID:  inv.ID(),
		Token:     inv.Token(),
		AcceptURL: acceptURL,
	}, nil
}
