package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "bugtrail/internal/interfaces/http/handlers/ticket"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	assign := authorization.RequireAnyRole(authorization.RoleAdmin, authorization.RoleProjectManager)

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.PUT("/:id/developer", assign, config.TicketHandler.AssignDeveloper)
		tickets.POST("/:id/archive", config.TicketHandler.ArchiveTicket)
		tickets.POST("/:id/restore", config.TicketHandler.RestoreTicket)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.POST("/:id/attachments", config.TicketHandler.AddAttachment)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
	}

	attachments := engine.Group("/attachments")
	attachments.Use(config.AuthMiddleware.RequireAuth())
	{
		attachments.GET("/:id", config.TicketHandler.DownloadAttachment)
	}

	history := engine.Group("/history")
	history.Use(config.AuthMiddleware.RequireAuth())
	{
		history.GET("", config.TicketHandler.ListHistory)
	}
}
