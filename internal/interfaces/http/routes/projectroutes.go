package routes

import (
	"github.com/gin-gonic/gin"

	projecthandlers "bugtrail/internal/interfaces/http/handlers/project"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/shared/authorization"
)

type ProjectRouteConfig struct {
	ProjectHandler *projecthandlers.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProjectRoutes(engine *gin.Engine, config *ProjectRouteConfig) {
	manage := authorization.RequireAnyRole(authorization.RoleAdmin, authorization.RoleProjectManager)

	projects := engine.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		projects.POST("", manage, config.ProjectHandler.CreateProject)
		projects.GET("", config.ProjectHandler.ListProjects)

		projects.POST("/:id/archive", manage, config.ProjectHandler.ArchiveProject)
		projects.POST("/:id/restore", manage, config.ProjectHandler.RestoreProject)

		projects.GET("/:id/manager", config.ProjectHandler.GetManager)
		projects.PUT("/:id/manager", authorization.RequireAdmin(), config.ProjectHandler.AssignManager)

		projects.GET("/:id/members", config.ProjectHandler.ListMembers)
		projects.POST("/:id/members", manage, config.ProjectHandler.AddMember)
		projects.DELETE("/:id/members", manage, config.ProjectHandler.RemoveMembersByRole)
		projects.DELETE("/:id/members/:userId", manage, config.ProjectHandler.RemoveMember)

		projects.GET("/:id/candidates", manage, config.ProjectHandler.ListUsersNotOnProject)

		projects.GET("/:id", config.ProjectHandler.GetProject)
		projects.PUT("/:id", manage, config.ProjectHandler.UpdateProject)
	}
}
