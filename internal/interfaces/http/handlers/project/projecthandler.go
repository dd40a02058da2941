package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/application/project/usecases"
	"bugtrail/internal/interfaces/http/handlers/common"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/logger"
	"bugtrail/internal/shared/utils"
)

type ProjectHandler struct {
	createUC        usecases.CreateProjectExecutor
	updateUC        usecases.UpdateProjectExecutor
	archiveUC       usecases.ArchiveProjectExecutor
	restoreUC       usecases.RestoreProjectExecutor
	listUC          usecases.ListProjectsExecutor
	getUC           usecases.GetProjectExecutor
	addMemberUC     usecases.AddUserToProjectExecutor
	removeMemberUC  usecases.RemoveUserFromProjectExecutor
	removeByRoleUC  usecases.RemoveUsersByRoleExecutor
	assignPMUC      usecases.AssignProjectManagerExecutor
	getPMUC         usecases.GetProjectManagerExecutor
	listMembersUC   usecases.ListProjectMembersExecutor
	usersNotOnProj  *usecases.UsersNotOnProjectUseCase
	logger          logger.Interface
}

func NewProjectHandler(
	createUC usecases.CreateProjectExecutor,
	updateUC usecases.UpdateProjectExecutor,
	archiveUC usecases.ArchiveProjectExecutor,
	restoreUC usecases.RestoreProjectExecutor,
	listUC usecases.ListProjectsExecutor,
	getUC usecases.GetProjectExecutor,
	addMemberUC usecases.AddUserToProjectExecutor,
	removeMemberUC usecases.RemoveUserFromProjectExecutor,
	removeByRoleUC usecases.RemoveUsersByRoleExecutor,
	assignPMUC usecases.AssignProjectManagerExecutor,
	getPMUC usecases.GetProjectManagerExecutor,
	listMembersUC usecases.ListProjectMembersExecutor,
	usersNotOnProj *usecases.UsersNotOnProjectUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		archiveUC:      archiveUC,
		restoreUC:      restoreUC,
		listUC:         listUC,
		getUC:          getUC,
		addMemberUC:    addMemberUC,
		removeMemberUC: removeMemberUC,
		removeByRoleUC: removeByRoleUC,
		assignPMUC:     assignPMUC,
		getPMUC:        getPMUC,
		listMembersUC:  listMembersUC,
		usersNotOnProj: usersNotOnProj,
		logger:         logger.NewLogger(),
	}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	cmd, err := req.ToCommand(actor.CompanyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "project created successfully")
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	cmd, err := req.ToCommand(actor.CompanyID, projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project updated successfully", result)
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetProjectQuery{
		ActorCompanyID: actor.CompanyID,
		ProjectID:      projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProjects handles GET /projects. The scope query parameter selects
// the projection: visible (default, role-scoped), mine, or archived.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor := common.ActorFromContext(c)

	query := usecases.ListProjectsQuery{
		ActorUserID:    actor.UserID,
		ActorCompanyID: actor.CompanyID,
		ActorRole:      actor.Role,
		PriorityName:   c.Query("priority"),
	}

	switch c.DefaultQuery("scope", "visible") {
	case "mine":
		query.Scope = usecases.ScopeMine
	case "archived":
		query.Scope = usecases.ScopeArchived
	default:
		query.Scope = usecases.ScopeVisible
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}

// ArchiveProject handles POST /projects/:id/archive
func (h *ProjectHandler) ArchiveProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.archiveUC.Execute(c.Request.Context(), usecases.ArchiveProjectCommand{
		ActorCompanyID: actor.CompanyID,
		ProjectID:      projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project archived", result)
}

// RestoreProject handles POST /projects/:id/restore
func (h *ProjectHandler) RestoreProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.restoreUC.Execute(c.Request.Context(), usecases.RestoreProjectCommand{
		ActorCompanyID: actor.CompanyID,
		ProjectID:      projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project restored", result)
}

// AddMember handles POST /projects/:id/members
func (h *ProjectHandler) AddMember(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	added, err := h.addMemberUC.Execute(c.Request.Context(), usecases.AddUserToProjectCommand{
		ActorCompanyID: actor.CompanyID,
		ProjectID:      projectID,
		UserID:         req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"added": added})
}

// RemoveMember handles DELETE /projects/:id/members/:userId
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseUintParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	if err := h.removeMemberUC.Execute(c.Request.Context(), usecases.RemoveUserFromProjectCommand{
		ActorCompanyID: actor.CompanyID,
		ProjectID:      projectID,
		UserID:         userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RemoveMembersByRole handles DELETE /projects/:id/members?role=Developer
func (h *ProjectHandler) RemoveMembersByRole(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role, ok := authorization.ParseRole(c.Query("role"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "unknown role")
		return
	}

	actor := common.ActorFromContext(c)
	if err := h.removeByRoleUC.Execute(c.Request.Context(), usecases.RemoveUsersByRoleCommand{
		ActorCompanyID: actor.CompanyID,
		ProjectID:      projectID,
		Role:           role,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AssignManager handles PUT /projects/:id/manager
func (h *ProjectHandler) AssignManager(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	assigned, err := h.assignPMUC.Execute(c.Request.Context(), usecases.AssignProjectManagerCommand{
		ActorCompanyID: actor.CompanyID,
		ProjectID:      projectID,
		UserID:         req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"assigned": assigned})
}

// GetManager handles GET /projects/:id/manager
func (h *ProjectHandler) GetManager(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.getPMUC.Execute(c.Request.Context(), usecases.GetProjectManagerQuery{
		ActorCompanyID: actor.CompanyID,
		ProjectID:      projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMembers handles GET /projects/:id/members. An optional role query
// narrows to one role; without it the manager is excluded.
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListProjectMembersQuery{
		ActorCompanyID: common.ActorFromContext(c).CompanyID,
		ProjectID:      projectID,
	}
	if roleParam := c.Query("role"); roleParam != "" {
		role, ok := authorization.ParseRole(roleParam)
		if !ok {
			utils.ErrorResponse(c, http.StatusBadRequest, "unknown role")
			return
		}
		query.Role = role
	}

	result, err := h.listMembersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}

// ListUsersNotOnProject handles GET /projects/:id/candidates
func (h *ProjectHandler) ListUsersNotOnProject(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.usersNotOnProj.Execute(c.Request.Context(), usecases.UsersNotOnProjectQuery{
		ActorCompanyID: common.ActorFromContext(c).CompanyID,
		ProjectID:      projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result))
}
