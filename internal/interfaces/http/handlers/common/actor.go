package common

import (
	"github.com/gin-gonic/gin"

	"bugtrail/internal/shared/authorization"
)

// Actor is the authenticated caller, resolved from the JWT claims the auth
// middleware put on the gin context. Handlers copy these into use-case
// commands so the application layer never reads ambient identity.
type Actor struct {
	UserID    uint
	CompanyID uint
	Role      authorization.Role
}

// ActorFromContext reads the actor off the request context. The zero Actor
// is returned for unauthenticated requests.
func ActorFromContext(c *gin.Context) Actor {
	return Actor{
		UserID:    c.GetUint("user_id"),
		CompanyID: c.GetUint("company_id"),
		Role:      authorization.Role(c.GetString("user_role")),
	}
}
