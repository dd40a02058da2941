package invite

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/invite/usecases"
	"bugtrail/internal/interfaces/http/handlers/common"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type IssueInviteRequest struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
}

type InviteHandler struct {
	issueUC usecases.IssueInviteExecutor
	getUC   usecases.GetInviteExecutor
	logger  logger.Interface
}

func NewInviteHandler(issueUC usecases.IssueInviteExecutor, getUC usecases.GetInviteExecutor) *InviteHandler {
	return &InviteHandler{
		issueUC: issueUC,
		getUC:   getUC,
		logger:  logger.NewLogger(),
	}
}

// IssueInvite handles POST /invites
func (h *InviteHandler) IssueInvite(c *gin.Context) {
	var req IssueInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for issue invite", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.issueUC.Execute(c.Request.Context(), usecases.IssueInviteCommand{
		ActorUserID:    actor.UserID,
		ActorCompanyID: actor.CompanyID,
		ProjectID:      req.ProjectID,
		InviteeEmail:   req.Email,
		InviteeFirst:   req.FirstName,
		InviteeLast:    req.LastName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "invite issued")
}

// GetInvite handles GET /invites/:id
func (h *InviteHandler) GetInvite(c *gin.Context) {
	inviteID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetInviteQuery{
		ActorCompanyID: common.ActorFromContext(c).CompanyID,
		InviteID:       inviteID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
