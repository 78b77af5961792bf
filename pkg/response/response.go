package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response represents a standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error sends an error response. The optional cause is recorded on the
// context for the request logger and echoed in the body.
func Error(c *gin.Context, code int, message string, cause ...error) {
	resp := Response{Code: code, Message: message}
	if len(cause) > 0 && cause[0] != nil {
		c.Error(cause[0])
		resp.Error = cause[0].Error()
	}
	c.AbortWithStatusJSON(code, resp)
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string, cause ...error) {
	Error(c, http.StatusBadRequest, message, cause...)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string, cause ...error) {
	Error(c, http.StatusNotFound, message, cause...)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *gin.Context, message string, cause ...error) {
	Error(c, http.StatusUnauthorized, message, cause...)
}

// ServiceUnavailable sends a 503 response
func ServiceUnavailable(c *gin.Context, message string, cause ...error) {
	Error(c, http.StatusServiceUnavailable, message, cause...)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string, cause ...error) {
	Error(c, http.StatusInternalServerError, message, cause...)
}
