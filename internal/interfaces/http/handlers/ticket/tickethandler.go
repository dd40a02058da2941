package ticket

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/ticket/usecases"
	"bugtrail/internal/interfaces/http/handlers/common"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type TicketHandler struct {
	createUC        usecases.CreateTicketExecutor
	updateUC        usecases.UpdateTicketExecutor
	assignUC        usecases.AssignDeveloperExecutor
	archiveUC       usecases.ArchiveTicketExecutor
	restoreUC       usecases.RestoreTicketExecutor
	listUC          usecases.ListTicketsExecutor
	getUC           usecases.GetTicketExecutor
	addCommentUC    usecases.AddCommentExecutor
	addAttachmentUC usecases.AddAttachmentExecutor
	getAttachmentUC usecases.GetAttachmentExecutor
	listHistoryUC   usecases.ListHistoryExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	updateUC usecases.UpdateTicketExecutor,
	assignUC usecases.AssignDeveloperExecutor,
	archiveUC usecases.ArchiveTicketExecutor,
	restoreUC usecases.RestoreTicketExecutor,
	listUC usecases.ListTicketsExecutor,
	getUC usecases.GetTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	addAttachmentUC usecases.AddAttachmentExecutor,
	getAttachmentUC usecases.GetAttachmentExecutor,
	listHistoryUC usecases.ListHistoryExecutor,
) *TicketHandler {
	return &TicketHandler{
		createUC:        createUC,
		updateUC:        updateUC,
		assignUC:        assignUC,
		archiveUC:       archiveUC,
		restoreUC:       restoreUC,
		listUC:          listUC,
		getUC:           getUC,
		addCommentUC:    addCommentUC,
		addAttachmentUC: addAttachmentUC,
		getAttachmentUC: getAttachmentUC,
		listHistoryUC:   listHistoryUC,
		logger:          logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(actor.UserID, actor.CompanyID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created successfully")
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(actor.UserID, actor.CompanyID, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated successfully", result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		ActorCompanyID: common.ActorFromContext(c).CompanyID,
		TicketID:       ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets. The scope query selects visible
// (default, role-scoped), archived, or unassigned; name filters narrow by
// status, priority, type and project_id.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor := common.ActorFromContext(c)

	query := usecases.ListTicketsQuery{
		ActorUserID:    actor.UserID,
		ActorCompanyID: actor.CompanyID,
		ActorRole:      actor.Role,
		StatusName:     c.Query("status"),
		PriorityName:   c.Query("priority"),
		TypeName:       c.Query("type"),
	}

	switch c.DefaultQuery("scope", "visible") {
	case "archived":
		query.Scope = usecases.ScopeArchived
	case "unassigned":
		query.Scope = usecases.ScopeUnassigned
	default:
		query.Scope = usecases.ScopeVisible
	}

	projectID, ok, err := utils.ParseUintQuery(c, "project_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if ok {
		query.ProjectID = &projectID
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}

// AssignDeveloper handles PUT /tickets/:id/developer
func (h *TicketHandler) AssignDeveloper(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignDeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	if err := h.assignUC.Execute(c.Request.Context(), usecases.AssignDeveloperCommand{
		ActorUserID:    actor.UserID,
		ActorCompanyID: actor.CompanyID,
		TicketID:       ticketID,
		DeveloperID:    req.DeveloperID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "developer assigned", nil)
}

// ArchiveTicket handles POST /tickets/:id/archive
func (h *TicketHandler) ArchiveTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	if err := h.archiveUC.Execute(c.Request.Context(), usecases.ArchiveTicketCommand{
		ActorUserID:    actor.UserID,
		ActorCompanyID: actor.CompanyID,
		TicketID:       ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket archived", nil)
}

// RestoreTicket handles POST /tickets/:id/restore
func (h *TicketHandler) RestoreTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	if err := h.restoreUC.Execute(c.Request.Context(), usecases.RestoreTicketCommand{
		ActorUserID:    actor.UserID,
		ActorCompanyID: actor.CompanyID,
		TicketID:       ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket restored", nil)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		ActorUserID:    actor.UserID,
		ActorCompanyID: actor.CompanyID,
		TicketID:       ticketID,
		Body:           req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "comment added")
}

// AddAttachment handles POST /tickets/:id/attachments as multipart form
// data with a "file" part and an optional "description" field.
func (h *TicketHandler) AddAttachment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to open uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		ActorUserID:    actor.UserID,
		ActorCompanyID: actor.CompanyID,
		TicketID:       ticketID,
		Description:    c.PostForm("description"),
		FileName:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		Data:           data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "attachment added")
}

// DownloadAttachment handles GET /attachments/:id
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	attachmentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAttachmentUC.Execute(c.Request.Context(), usecases.GetAttachmentQuery{
		ActorCompanyID: common.ActorFromContext(c).CompanyID,
		AttachmentID:   attachmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// ListHistory handles GET /history with optional ticket_id / project_id
// query parameters; without either the whole company trail is returned.
func (h *TicketHandler) ListHistory(c *gin.Context) {
	query := usecases.ListHistoryQuery{
		ActorCompanyID: common.ActorFromContext(c).CompanyID,
	}

	if ticketID, ok, err := utils.ParseUintQuery(c, "ticket_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	} else if ok {
		query.TicketID = ticketID
	}

	if projectID, ok, err := utils.ParseUintQuery(c, "project_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	} else if ok {
		query.ProjectID = projectID
	}

	result, err := h.listHistoryUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}
