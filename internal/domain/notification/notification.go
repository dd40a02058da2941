// Package notification models the persisted audit of what was sent to
// whom, plus the email-sending port the dispatcher fans out through.
package notification

import (
	"context"
	"fmt"
	"time"
)

type Notification struct {
	id          uint
	senderID    uint
	recipientID uint
	ticketID    *uint
	title       string
	message     string
	createdAt   time.Time
}

func NewNotification(senderID uint, ticketID *uint, title, message string) (*Notification, error) {
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("notification title is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("notification message is required")
	}
	return &Notification{
		senderID:  senderID,
		ticketID:  ticketID,
		title:     title,
		message:   message,
		createdAt: time.Now(),
	}, nil
}

func ReconstructNotification(id, senderID, recipientID uint, ticketID *uint, title, message string, createdAt time.Time) *Notification {
	return &Notification{
		id:          id,
		senderID:    senderID,
		recipientID: recipientID,
		ticketID:    ticketID,
		title:       title,
		message:     message,
		createdAt:   createdAt,
	}
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) SenderID() uint       { return n.senderID }
func (n *Notification) RecipientID() uint    { return n.recipientID }
func (n *Notification) TicketID() *uint      { return n.ticketID }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// ForRecipient clones the notification addressed to one recipient. The
// dispatcher creates one persisted copy per fan-out target.
func (n *Notification) ForRecipient(recipientID uint) *Notification {
	clone := *n
	clone.id = 0
	clone.recipientID = recipientID
	return &clone
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

type Repository interface {
	Save(ctx context.Context, n *Notification) error
	ListSent(ctx context.Context, userID uint) ([]*Notification, error)
	ListReceived(ctx context.Context, userID uint) ([]*Notification, error)
}

// EmailSender is the email-sending collaborator. Implementations must treat
// each call independently; the dispatcher relies on that for per-recipient
// failure isolation.
type EmailSender interface {
	Send(ctx context.Context, toAddress, subject, body string) error
}
