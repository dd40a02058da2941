package invite

import "context"

type Repository interface {
	Save(ctx context.Context, invite *Invite) error
	Update(ctx context.Context, invite *Invite) error
	GetByToken(ctx context.Context, token string) (*Invite, error)
	GetByID(ctx context.Context, inviteID, companyID uint) (*Invite, error)
	// ExistsMatching checks for an invite with this token and invitee email
	// inside the company; used to block duplicate issuance. An empty token
	// matches any token.
	ExistsMatching(ctx context.Context, companyID uint, token, inviteeEmail string) (bool, error)
}
