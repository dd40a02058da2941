package ticket

import (
	"fmt"
	"time"
)

// Comment is append-only; nothing in the tracker edits a comment in place.
type Comment struct {
	id        uint
	ticketID  uint
	userID    uint
	body      string
	createdAt time.Time
}

func NewComment(ticketID, userID uint, body string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("comment body is required")
	}
	if len(body) > 5000 {
		return nil, fmt.Errorf("comment exceeds maximum length of 5000 characters")
	}
	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		body:      body,
		createdAt: time.Now(),
	}, nil
}

func ReconstructComment(id, ticketID, userID uint, body string, createdAt time.Time) *Comment {
	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		body:      body,
		createdAt: createdAt,
	}
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) UserID() uint         { return c.userID }
func (c *Comment) Body() string         { return c.body }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// Attachment is an uploaded file pinned to a ticket, stored as the
// byte/name/content-type triple the file collaborator produces.
type Attachment struct {
	id          uint
	ticketID    uint
	userID      uint
	description string
	fileName    string
	contentType string
	data        []byte
	createdAt   time.Time
}

func NewAttachment(ticketID, userID uint, description, fileName, contentType string, data []byte) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("attachment data is required")
	}
	return &Attachment{
		ticketID:    ticketID,
		userID:      userID,
		description: description,
		fileName:    fileName,
		contentType: contentType,
		data:        data,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructAttachment(id, ticketID, userID uint, description, fileName, contentType string, data []byte, createdAt time.Time) *Attachment {
	return &Attachment{
		id:          id,
		ticketID:    ticketID,
		userID:      userID,
		description: description,
		fileName:    fileName,
		contentType: contentType,
		data:        data,
		createdAt:   createdAt,
	}
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) TicketID() uint       { return a.ticketID }
func (a *Attachment) UserID() uint         { return a.userID }
func (a *Attachment) Description() string  { return a.description }
func (a *Attachment) FileName() string     { return a.fileName }
func (a *Attachment) ContentType() string  { return a.contentType }
func (a *Attachment) Data() []byte         { return a.data }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
