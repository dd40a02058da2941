// Package invite models time-boxed, single-use onboarding invites. The
// source system overloaded one IsValid flag to mean both "accepted" and
// "still usable"; here acceptance is stored and usability is derived from
// the issue timestamp and a validity window.
package invite

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultValidityWindow is how long an invite can be accepted after issue.
const DefaultValidityWindow = 7 * 24 * time.Hour

type Invite struct {
	id           uint
	companyID    uint
	projectID    uint
	invitorID    uint
	inviteeEmail string
	inviteeFirst string
	inviteeLast  string
	token        string
	issuedAt     time.Time
	accepted     bool
	inviteeID    *uint
}

func NewInvite(companyID, projectID, invitorID uint, inviteeEmail, inviteeFirst, inviteeLast string) (*Invite, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if invitorID == 0 {
		return nil, fmt.Errorf("invitor ID is required")
	}
	inviteeEmail = strings.ToLower(strings.TrimSpace(inviteeEmail))
	if !strings.Contains(inviteeEmail, "@") {
		return nil, fmt.Errorf("invalid invitee email address")
	}

	return &Invite{
		companyID:    companyID,
		projectID:    projectID,
		invitorID:    invitorID,
		inviteeEmail: inviteeEmail,
		inviteeFirst: inviteeFirst,
		inviteeLast:  inviteeLast,
		token:        uuid.NewString(),
		issuedAt:     time.Now(),
	}, nil
}

func ReconstructInvite(
	id uint,
	companyID, projectID, invitorID uint,
	inviteeEmail, inviteeFirst, inviteeLast string,
	token string,
	issuedAt time.Time,
	accepted bool,
	inviteeID *uint,
) (*Invite, error) {
	if id == 0 {
		return nil, fmt.Errorf("invite ID cannot be zero")
	}
	if token == "" {
		return nil, fmt.Errorf("invite token is required")
	}
	return &Invite{
		id:           id,
		companyID:    companyID,
		projectID:    projectID,
		invitorID:    invitorID,
		inviteeEmail: inviteeEmail,
		inviteeFirst: inviteeFirst,
		inviteeLast:  inviteeLast,
		token:        token,
		issuedAt:     issuedAt,
		accepted:     accepted,
		inviteeID:    inviteeID,
	}, nil
}

func (i *Invite) ID() uint             { return i.id }
func (i *Invite) CompanyID() uint      { return i.companyID }
func (i *Invite) ProjectID() uint      { return i.projectID }
func (i *Invite) InvitorID() uint      { return i.invitorID }
func (i *Invite) InviteeEmail() string { return i.inviteeEmail }
func (i *Invite) InviteeFirst() string { return i.inviteeFirst }
func (i *Invite) InviteeLast() string  { return i.inviteeLast }
func (i *Invite) Token() string        { return i.token }
func (i *Invite) IssuedAt() time.Time  { return i.issuedAt }
func (i *Invite) Accepted() bool       { return i.accepted }
func (i *Invite) InviteeID() *uint     { return i.inviteeID }

func (i *Invite) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("invite ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("invite ID cannot be zero")
	}
	i.id = id
	return nil
}

// AcceptableAt reports whether the invite is still inside its validity
// window at the given time. The window runs from issuance, not acceptance.
func (i *Invite) AcceptableAt(now time.Time, window time.Duration) bool {
	if window <= 0 {
		window = DefaultValidityWindow
	}
	return now.Sub(i.issuedAt) <= window
}

// Accept marks the invite consumed by the given user. It deliberately does
// not check the validity window; the window check belongs to token
// validation, which callers run first.
func (i *Invite) Accept(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("accepting user ID is required")
	}
	i.accepted = true
	i.inviteeID = &userID
	return nil
}
