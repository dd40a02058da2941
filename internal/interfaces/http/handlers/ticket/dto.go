package ticket

import (
	"bugtrail/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	ProjectID   uint   `json:"project_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	TypeID      uint   `json:"type_id" binding:"required"`
	PriorityID  uint   `json:"priority_id" binding:"required"`
	StatusID    uint   `json:"status_id"`
}

func (r *CreateTicketRequest) ToCommand(userID, companyID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		ActorUserID:    userID,
		ActorCompanyID: companyID,
		ProjectID:      r.ProjectID,
		Title:          r.Title,
		Description:    r.Description,
		TypeID:         r.TypeID,
		PriorityID:     r.PriorityID,
		StatusID:       r.StatusID,
	}
}

type UpdateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	TypeID      uint   `json:"type_id" binding:"required"`
	PriorityID  uint   `json:"priority_id" binding:"required"`
	StatusID    uint   `json:"status_id" binding:"required"`
}

func (r *UpdateTicketRequest) ToCommand(userID, companyID, ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		ActorUserID:    userID,
		ActorCompanyID: companyID,
		TicketID:       ticketID,
		Title:          r.Title,
		Description:    r.Description,
		TypeID:         r.TypeID,
		PriorityID:     r.PriorityID,
		StatusID:       r.StatusID,
	}
}

type AssignDeveloperRequest struct {
	DeveloperID uint `json:"developer_id" binding:"required"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}
