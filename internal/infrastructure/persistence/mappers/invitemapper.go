package mappers

import (
	"bugtrail/internal/domain/invite"
	"bugtrail/internal/infrastructure/persistence/models"
)

type InviteMapper interface {
	ToModel(inv *invite.Invite) *models.InviteModel
	ToDomain(model *models.InviteModel) (*invite.Invite, error)
}

type InviteMapperImpl struct{}

func NewInviteMapper() InviteMapper {
	return &InviteMapperImpl{}
}

func (m *InviteMapperImpl) ToModel(inv *invite.Invite) *models.InviteModel {
	return &models.InviteModel{
		ID:           inv.ID(),
		CompanyID:    inv.CompanyID(),
		ProjectID:    inv.ProjectID(),
		InvitorID:    inv.InvitorID(),
		InviteeEmail: inv.InviteeEmail(),
		InviteeFirst: inv.InviteeFirst(),
		InviteeLast:  inv.InviteeLast(),
		Token:        inv.Token(),
		IssuedAt:     inv.IssuedAt().UnixMilli(),
		Accepted:     inv.Accepted(),
		InviteeID:    inv.InviteeID(),
	}
}

func (m *InviteMapperImpl) ToDomain(model *models.InviteModel) (*invite.Invite, error) {
	return invite.ReconstructInvite(
		model.ID,
		model.CompanyID,
		model.ProjectID,
		model.InvitorID,
		model.InviteeEmail,
		model.InviteeFirst,
		model.InviteeLast,
		model.Token,
		millisToTime(model.IssuedAt),
		model.Accepted,
		model.InviteeID,
	)
}
