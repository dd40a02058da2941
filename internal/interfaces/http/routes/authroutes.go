package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "bugtrail/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
	// LoginLimiter throttles credential guessing; nil disables it.
	LoginLimiter gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)

		if config.LoginLimiter != nil {
			auth.POST("/login", config.LoginLimiter, config.AuthHandler.Login)
		} else {
			auth.POST("/login", config.AuthHandler.Login)
		}

		// Public: the registration form validates the token before signup.
		auth.GET("/invites/validate", config.AuthHandler.ValidateInvite)
	}
}
