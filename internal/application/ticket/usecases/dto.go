package usecases

import (
	"time"

	"bugtrail/internal/domain/ticket"
)

type TicketDTO struct {
	ID                uint   `json:"id"`
	ProjectID         uint   `json:"project_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	TypeID            uint   `json:"type_id"`
	PriorityID        uint   `json:"priority_id"`
	StatusID          uint   `json:"status_id"`
	OwnerID           uint   `json:"owner_id"`
	DeveloperID       *uint  `json:"developer_id,omitempty"`
	Archived          bool   `json:"archived"`
	ArchivedByProject bool   `json:"archived_by_project"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// TicketDetailDTO bundles the ticket with its comments, attachments and
// history for the detail view.
type TicketDetailDTO struct {
	Ticket      TicketDTO         `json:"ticket"`
	Comments    []CommentDTO      `json:"comments"`
	Attachments []AttachmentDTO   `json:"attachments"`
	History     []HistoryEntryDTO `json:"history"`
}

type CommentDTO struct {
	ID        uint   `json:"id"`
	TicketID  uint   `json:"ticket_id"`
	UserID    uint   `json:"user_id"`
	Body      string `json:"body"`
	BodyHTML  string `json:"body_html,omitempty"`
	CreatedAt string `json:"created_at"`
}

type AttachmentDTO struct {
	ID          uint   `json:"id"`
	TicketID    uint   `json:"ticket_id"`
	UserID      uint   `json:"user_id"`
	Description string `json:"description"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	CreatedAt   string `json:"created_at"`
}

// AttachmentFileDTO carries the stored bytes for download responses.
type AttachmentFileDTO struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

type HistoryEntryDTO struct {
	ID          uint   `json:"id"`
	TicketID    uint   `json:"ticket_id"`
	UserID      uint   `json:"user_id"`
	Property    string `json:"property,omitempty"`
	OldValue    string `json:"old_value,omitempty"`
	NewValue    string `json:"new_value,omitempty"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func toTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:                t.ID(),
		ProjectID:         t.ProjectID(),
		Title:             t.Title(),
		Description:       t.Description(),
		TypeID:            t.TypeID(),
		PriorityID:        t.PriorityID(),
		StatusID:          t.StatusID(),
		OwnerID:           t.OwnerID(),
		DeveloperID:       t.DeveloperID(),
		Archived:          t.Archived(),
		ArchivedByProject: t.ArchivedByProject(),
		CreatedAt:         t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:         t.UpdatedAt().Format(time.RFC3339),
	}
}

func toTicketDTOs(tickets []*ticket.Ticket) []TicketDTO {
	dtos := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, toTicketDTO(t))
	}
	return dtos
}

func toCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt().Format(time.RFC3339),
	}
}

func toAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		UserID:      a.UserID(),
		Description: a.Description(),
		FileName:    a.FileName(),
		ContentType: a.ContentType(),
		CreatedAt:   a.CreatedAt().Format(time.RFC3339),
	}
}

func toHistoryEntryDTO(entry ticket.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:          entry.ID(),
		TicketID:    entry.TicketID(),
		UserID:      entry.UserID(),
		Property:    entry.Property(),
		OldValue:    entry.OldValue(),
		NewValue:    entry.NewValue(),
		Description: entry.Description(),
		CreatedAt:   entry.CreatedAt().Format(time.RFC3339),
	}
}

func toHistoryEntryDTOs(entries []ticket.HistoryEntry) []HistoryEntryDTO {
	dtos := make([]HistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, toHistoryEntryDTO(entry))
	}
	return dtos
}
