package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"bugtrail/internal/infrastructure/auth"
	"bugtrail/internal/infrastructure/config"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/shared/logger"
)

// Container wires repositories, use cases, handlers, and middleware into a
// runnable gin engine. Construction order matters: repositories first, then
// use cases, then handlers, then routes.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *useCases
	hdlrs *handlers

	jwtService     *auth.JWTService
	authMiddleware *middleware.AuthMiddleware
}

// NewContainer builds the whole dependency graph. The redis client may be
// nil, in which case rate limiting is disabled.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if cfg.Redis.Host != "" {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	c.jwtService = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, log)

	c.wireRepositories()
	if err := c.wireUseCases(); err != nil {
		return nil, err
	}
	c.wireHandlers()

	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.Logger(log))
	c.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	c.setupRoutes()

	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases held connections.
func (c *Container) Shutdown() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
