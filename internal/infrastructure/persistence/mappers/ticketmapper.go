package mappers

import (
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/infrastructure/persistence/models"
)

type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.TicketCommentModel
	CommentToDomain(model *models.TicketCommentModel) *ticket.Comment
	AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel
	AttachmentToDomain(model *models.TicketAttachmentModel) *ticket.Attachment
	HistoryToModel(entry ticket.HistoryEntry) *models.TicketHistoryModel
	HistoryToDomain(model *models.TicketHistoryModel) ticket.HistoryEntry
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                t.ID(),
		CompanyID:         t.CompanyID(),
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
		Version:           t.Version(),
		CreatedAt:         t.CreatedAt().UnixMilli(),
		UpdatedAt:         t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.CompanyID,
		model.ProjectID,
		model.Title,
		model.Description,
		model.TypeID,
		model.PriorityID,
		model.StatusID,
		model.OwnerID,
		model.DeveloperID,
		model.Archived,
		model.ArchivedByProject,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.TicketCommentModel {
	return &models.TicketCommentModel{
		ID:       c.ID(),
		TicketID: c.TicketID(),
		UserID:   c.UserID(),
		Body:     c.Body(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.TicketCommentModel) *ticket.Comment {
	return ticket.ReconstructComment(model.ID, model.TicketID, model.UserID,
		model.Body, millisToTime(model.CreatedAt))
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel {
	return &models.TicketAttachmentModel{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		UserID:      a.UserID(),
		Description: a.Description(),
		FileName:    a.FileName(),
		ContentType: a.ContentType(),
		Data:        a.Data(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.TicketAttachmentModel) *ticket.Attachment {
	return ticket.ReconstructAttachment(model.ID, model.TicketID, model.UserID,
		model.Description, model.FileName, model.ContentType, model.Data,
		millisToTime(model.CreatedAt))
}

func (m *TicketMapperImpl) HistoryToModel(entry ticket.HistoryEntry) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:          entry.ID(),
		TicketID:    entry.TicketID(),
		UserID:      entry.UserID(),
		Property:    entry.Property(),
		OldValue:    entry.OldValue(),
		NewValue:    entry.NewValue(),
		Description: entry.Description(),
		CreatedAt:   entry.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.TicketHistoryModel) ticket.HistoryEntry {
	return ticket.ReconstructHistoryEntry(model.ID, model.TicketID, model.UserID,
		model.Property, model.OldValue, model.NewValue, model.Description,
		millisToTime(model.CreatedAt))
}
