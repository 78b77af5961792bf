package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger middleware logs HTTP requests
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			q := c.Request.URL.Query()
			if q.Has("token") {
				q.Set("token", "redacted")
				raw = q.Encode()
			}
			path = path + "?" + raw
		}

		c.Next()

		line := ""
		if sid := SessionID(c); sid != "" {
			line = " session=" + sid
		}
		if len(c.Errors) > 0 {
			line += " " + c.Errors.String()
		}

		log.Printf("[%s] %s %s %d %v%s",
			c.Request.Method,
			path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
			line,
		)
	}
}
