package roles

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/identity/usecases"
	"bugtrail/internal/interfaces/http/handlers/common"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type RoleHandler struct {
	assignUC      *usecases.AssignRoleUseCase
	removeUC      *usecases.RemoveRoleUseCase
	rolesOfUserUC *usecases.RolesOfUserUseCase
	usersInRoleUC *usecases.UsersInRoleUseCase
	logger        logger.Interface
}

func NewRoleHandler(
	assignUC *usecases.AssignRoleUseCase,
	removeUC *usecases.RemoveRoleUseCase,
	rolesOfUserUC *usecases.RolesOfUserUseCase,
	usersInRoleUC *usecases.UsersInRoleUseCase,
) *RoleHandler {
	return &RoleHandler{
		assignUC:      assignUC,
		removeUC:      removeUC,
		rolesOfUserUC: rolesOfUserUC,
		usersInRoleUC: usersInRoleUC,
		logger:        logger.NewLogger(),
	}
}

// ListRoles handles GET /roles and returns the closed role set.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles := authorization.AllRoles()
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	utils.ListSuccessResponse(c, names, len(names))
}

// AssignRole handles PUT /users/:id/role
func (h *RoleHandler) AssignRole(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	role, ok := authorization.ParseRole(req.Role)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "unknown role")
		return
	}

	if err := h.assignUC.Execute(c.Request.Context(), usecases.AssignRoleCommand{
		ActorCompanyID: common.ActorFromContext(c).CompanyID,
		UserID:         userID,
		Role:           role,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role assigned", nil)
}

// RemoveRole handles DELETE /users/:id/role?role=Developer
func (h *RoleHandler) RemoveRole(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role, ok := authorization.ParseRole(c.Query("role"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "unknown role")
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), usecases.RemoveRoleCommand{
		ActorCompanyID: common.ActorFromContext(c).CompanyID,
		UserID:         userID,
		Role:           role,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RolesOfUser handles GET /users/:id/roles
func (h *RoleHandler) RolesOfUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.rolesOfUserUC.Execute(c.Request.Context(), usecases.RolesOfUserQuery{
		ActorCompanyID: common.ActorFromContext(c).CompanyID,
		UserID:         userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}

// UsersInRole handles GET /roles/:role/users. The in query parameter set
// to false flips the listing to users outside the role.
func (h *RoleHandler) UsersInRole(c *gin.Context) {
	role, ok := authorization.ParseRole(c.Param("role"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "unknown role")
		return
	}

	query := usecases.UsersInRoleQuery{
		ActorCompanyID: common.ActorFromContext(c).CompanyID,
		Role:           role,
	}

	var (
		result []usecases.UserDTO
		err    error
	)
	if c.DefaultQuery("in", "true") == "false" {
		result, err = h.usersInRoleUC.UsersNotInRole(c.Request.Context(), query)
	} else {
		result, err = h.usersInRoleUC.Execute(c.Request.Context(), query)
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}
