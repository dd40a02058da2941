package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/infrastructure/ratelimit"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/interfaces/http/routes"
)

func (c *Container) setupRoutes() {
	var loginLimiter, inviteLimiter gin.HandlerFunc
	if c.redis != nil {
		limiter := ratelimit.NewRedisRateLimiter(c.redis)
		loginLimiter = middleware.RateLimit(limiter, "login", ratelimit.LoginLimit, c.log)
		inviteLimiter = middleware.ActorRateLimit(limiter, "invite", ratelimit.InviteLimit, c.log)
	}

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:  c.hdlrs.auth,
		LoginLimiter: loginLimiter,
	})

	routes.SetupProjectRoutes(c.engine, &routes.ProjectRouteConfig{
		ProjectHandler: c.hdlrs.project,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticket,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupInviteRoutes(c.engine, &routes.InviteRouteConfig{
		InviteHandler:  c.hdlrs.invite,
		AuthMiddleware: c.authMiddleware,
		IssueLimiter:   inviteLimiter,
	})

	routes.SetupNotificationRoutes(c.engine, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notification,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupRoleRoutes(c.engine, &routes.RoleRouteConfig{
		RoleHandler:    c.hdlrs.role,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupCompanyRoutes(c.engine, &routes.CompanyRouteConfig{
		CompanyHandler: c.hdlrs.company,
		LookupHandler:  c.hdlrs.lookup,
		AuthMiddleware: c.authMiddleware,
	})
}
