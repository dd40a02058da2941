package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "bugtrail/internal/interfaces/http/handlers/notification"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/shared/authorization"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	dispatch := authorization.RequireAnyRole(authorization.RoleAdmin, authorization.RoleProjectManager)

	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.POST("", dispatch, config.NotificationHandler.DispatchToUsers)
		notifications.POST("/role", dispatch, config.NotificationHandler.DispatchToRole)
		notifications.GET("", config.NotificationHandler.ListNotifications)
	}
}
