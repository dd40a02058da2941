package routes

import (
	"github.com/gin-gonic/gin"

	rolehandlers "bugtrail/internal/interfaces/http/handlers/roles"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/shared/authorization"
)

type RoleRouteConfig struct {
	RoleHandler    *rolehandlers.RoleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRoleRoutes(engine *gin.Engine, config *RoleRouteConfig) {
	roles := engine.Group("/roles")
	roles.Use(config.AuthMiddleware.RequireAuth())
	{
		roles.GET("", config.RoleHandler.ListRoles)
		roles.GET("/:role/users", authorization.RequireAdmin(), config.RoleHandler.UsersInRole)
	}

	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/:id/roles", config.RoleHandler.RolesOfUser)
		users.PUT("/:id/role", authorization.RequireAdmin(), config.RoleHandler.AssignRole)
		users.DELETE("/:id/role", authorization.RequireAdmin(), config.RoleHandler.RemoveRole)
	}
}
