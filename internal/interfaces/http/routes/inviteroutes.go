package routes

import (
	"github.com/gin-gonic/gin"

	invitehandlers "bugtrail/internal/interfaces/http/handlers/invite"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/shared/authorization"
)

type InviteRouteConfig struct {
	InviteHandler  *invitehandlers.InviteHandler
	AuthMiddleware *middleware.AuthMiddleware
	// IssueLimiter throttles invite issuance per actor; nil disables it.
	IssueLimiter gin.HandlerFunc
}

func SetupInviteRoutes(engine *gin.Engine, config *InviteRouteConfig) {
	manage := authorization.RequireAnyRole(authorization.RoleAdmin, authorization.RoleProjectManager)

	invites := engine.Group("/invites")
	invites.Use(config.AuthMiddleware.RequireAuth())
	{
		if config.IssueLimiter != nil {
			invites.POST("", manage, config.IssueLimiter, config.InviteHandler.IssueInvite)
		} else {
			invites.POST("", manage, config.InviteHandler.IssueInvite)
		}

		invites.GET("/:id", manage, config.InviteHandler.GetInvite)
	}
}
