package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/yelp-map-backend-go/internal/auth"
	"github.com/jengzang/yelp-map-backend-go/pkg/response"
)

// SessionIDKey is the context key holding the verified session id
const SessionIDKey = "sessionID"

// SessionAuth verifies the session token from the Authorization header
// ("Bearer <token>") or, for chart pages loaded in an iframe, the token query
// parameter.
func SessionAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if header := c.GetHeader("Authorization"); header != "" {
			scheme, value, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") {
				response.Unauthorized(c, "Authorization header must be Bearer <token>")
				return
			}
			token = strings.TrimSpace(value)
		}
		if token == "" {
			response.Unauthorized(c, "Missing session token")
			return
		}

		id, err := tokens.Parse(token)
		if err != nil {
			response.Unauthorized(c, "Invalid session token", err)
			return
		}

		c.Set(SessionIDKey, id)
		c.Next()
	}
}

// SessionID returns the session id set by SessionAuth
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
