package usecases

import (
	"time"

	"bugtrail/internal/domain/invite"
)

type InviteDTO struct {
	ID           uint   `json:"id"`
	CompanyID    uint   `json:"company_id"`
	ProjectID    uint   `json:"project_id"`
	InvitorID    uint   `json:"invitor_id"`
	InviteeEmail string `json:"invitee_email"`
	InviteeFirst string `json:"invitee_first"`
	InviteeLast  string `json:"invitee_last"`
	Token        string `json:"token"`
	IssuedAt     string `json:"issued_at"`
	Accepted     bool   `json:"accepted"`
	InviteeID    *uint  `json:"invitee_id,omitempty"`
}

func toInviteDTO(inv *invite.Invite) InviteDTO {
	return InviteDTO{
		ID:           inv.ID(),
		CompanyID:    inv.CompanyID(),
		ProjectID:    inv.ProjectID(),
		InvitorID:    inv.InvitorID(),
		InviteeEmail: inv.InviteeEmail(),
		InviteeFirst: inv.InviteeFirst(),
		InviteeLast:  inv.InviteeLast(),
		Token:        inv.Token(),
		IssuedAt:     inv.IssuedAt().Format(time.RFC3339),
		Accepted:     inv.Accepted(),
		InviteeID:    inv.InviteeID(),
	}
}
