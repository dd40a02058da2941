package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/notification/usecases"
	"bugtrail/internal/interfaces/http/handlers/common"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type DispatchToUsersRequest struct {
	RecipientIDs []uint `json:"recipient_ids" binding:"required,min=1"`
	TicketID     *uint  `json:"ticket_id,omitempty"`
	Title        string `json:"title" binding:"required,max=200"`
	Message      string `json:"message" binding:"required,max=5000"`
}

type DispatchToRoleRequest struct {
	Role     string `json:"role" binding:"required"`
	TicketID *uint  `json:"ticket_id,omitempty"`
	Title    string `json:"title" binding:"required,max=200"`
	Message  string `json:"message" binding:"required,max=5000"`
}

type NotificationHandler struct {
	dispatchUsersUC usecases.DispatchToUsersExecutor
	dispatchRoleUC  usecases.DispatchToRoleExecutor
	listUC          usecases.ListNotificationsExecutor
	logger          logger.Interface
}

func NewNotificationHandler(
	dispatchUsersUC usecases.DispatchToUsersExecutor,
	dispatchRoleUC usecases.DispatchToRoleExecutor,
	listUC usecases.ListNotificationsExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		dispatchUsersUC: dispatchUsersUC,
		dispatchRoleUC:  dispatchRoleUC,
		listUC:          listUC,
		logger:          logger.NewLogger(),
	}
}

// DispatchToUsers handles POST /notifications. Partial delivery is a
// success response; per-recipient failures ride along in the result.
func (h *NotificationHandler) DispatchToUsers(c *gin.Context) {
	var req DispatchToUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for dispatch", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.dispatchUsersUC.Execute(c.Request.Context(), usecases.DispatchToUsersCommand{
		ActorUserID:    actor.UserID,
		ActorCompanyID: actor.CompanyID,
		RecipientIDs:   req.RecipientIDs,
		TicketID:       req.TicketID,
		Title:          req.Title,
		Message:        req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "notification dispatched", result)
}

// DispatchToRole handles POST /notifications/role
func (h *NotificationHandler) DispatchToRole(c *gin.Context) {
	var req DispatchToRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for role dispatch", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	role, ok := authorization.ParseRole(req.Role)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "unknown role")
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.dispatchRoleUC.Execute(c.Request.Context(), usecases.DispatchToRoleCommand{
		ActorUserID:    actor.UserID,
		ActorCompanyID: actor.CompanyID,
		Role:           role,
		TicketID:       req.TicketID,
		Title:          req.Title,
		Message:        req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "notification dispatched", result)
}

// ListNotifications handles GET /notifications?box=received|sent
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	query := usecases.ListNotificationsQuery{
		ActorUserID: common.ActorFromContext(c).UserID,
	}

	switch c.DefaultQuery("box", "received") {
	case "sent":
		query.Box = usecases.BoxSent
	default:
		query.Box = usecases.BoxReceived
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}
