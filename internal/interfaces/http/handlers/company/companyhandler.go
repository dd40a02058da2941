package company

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/company/usecases"
	"bugtrail/internal/interfaces/http/handlers/common"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type CompanyHandler struct {
	getUC      *usecases.GetCompanyUseCase
	membersUC  *usecases.ListCompanyMembersUseCase
	activityUC *usecases.CompanyActivityUseCase
	logger     logger.Interface
}

func NewCompanyHandler(
	getUC *usecases.GetCompanyUseCase,
	membersUC *usecases.ListCompanyMembersUseCase,
	activityUC *usecases.CompanyActivityUseCase,
) *CompanyHandler {
	return &CompanyHandler{
		getUC:      getUC,
		membersUC:  membersUC,
		activityUC: activityUC,
		logger:     logger.NewLogger(),
	}
}

// GetCompany handles GET /company and returns the actor's own tenant.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCompanyQuery{
		CompanyID: common.ActorFromContext(c).CompanyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMembers handles GET /company/members
func (h *CompanyHandler) ListMembers(c *gin.Context) {
	result, err := h.membersUC.Execute(c.Request.Context(), usecases.ListCompanyMembersQuery{
		CompanyID: common.ActorFromContext(c).CompanyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}

// GetActivity handles GET /company/activity
func (h *CompanyHandler) GetActivity(c *gin.Context) {
	result, err := h.activityUC.Execute(c.Request.Context(), usecases.CompanyActivityQuery{
		CompanyID: common.ActorFromContext(c).CompanyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
