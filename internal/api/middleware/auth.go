package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salhdl/AI-Agent/pkg/jwt"
	"github.com/salhdl/AI-Agent/pkg/response"
)

const callerKey = "caller"

// ServiceAuth authenticates machine callers of the internal JSON API via
// Authorization: Bearer <token>. The public approval surface deliberately
// bypasses this: its only credential is knowledge of the request id.
func ServiceAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.Verify(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalid or expired")
			c.Abort()
			return
		}

		c.Set(callerKey, claims.Caller)

		c.Next()
	}
}
