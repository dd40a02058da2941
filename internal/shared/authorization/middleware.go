package authorization

import (
	"github.com/gin-gonic/gin"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAnyRole allows the request through when the actor holds one of the
// given roles.
func RequireAnyRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := Role(c.GetString("user_role"))
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}
		c.JSON(403, gin.H{
			"error": "insufficient role",
		})
		c.Abort()
	}
}
