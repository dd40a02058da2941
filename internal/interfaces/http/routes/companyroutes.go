package routes

import (
	"github.com/gin-gonic/gin"

	companyhandlers "bugtrail/internal/interfaces/http/handlers/company"
	lookuphandlers "bugtrail/internal/interfaces/http/handlers/lookup"
	"bugtrail/internal/interfaces/http/middleware"
)

type CompanyRouteConfig struct {
	CompanyHandler *companyhandlers.CompanyHandler
	LookupHandler  *lookuphandlers.LookupHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCompanyRoutes(engine *gin.Engine, config *CompanyRouteConfig) {
	company := engine.Group("/company")
	company.Use(config.AuthMiddleware.RequireAuth())
	{
		company.GET("", config.CompanyHandler.GetCompany)
		company.GET("/members", config.CompanyHandler.ListMembers)
		company.GET("/activity", config.CompanyHandler.GetActivity)
	}

	lookups := engine.Group("/lookups")
	lookups.Use(config.AuthMiddleware.RequireAuth())
	{
		lookups.GET("", config.LookupHandler.ListLookups)
	}
}
