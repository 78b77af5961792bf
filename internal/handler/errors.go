package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/service"
	"github.com/jengzang/yelp-map-backend-go/internal/session"
	"github.com/jengzang/yelp-map-backend-go/internal/state"
	"github.com/jengzang/yelp-map-backend-go/pkg/response"
)

// fail maps service errors onto HTTP responses
func fail(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, dataset.ErrNotReady):
		c.Header("Retry-After", "1")
		response.ServiceUnavailable(c, "Dataset is still loading", err)
	case errors.Is(err, dataset.ErrUnavailable):
		response.ServiceUnavailable(c, "Dataset is unavailable", err)
	case errors.Is(err, session.ErrNotFound):
		response.NotFound(c, "Session not found or expired", err)
	case errors.Is(err, state.ErrUnknownCell):
		response.NotFound(c, "Heatmap cell has no businesses in range", err)
	case errors.Is(err, state.ErrInvalidCenter), errors.Is(err, service.ErrInvalidViewport):
		response.BadRequest(c, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
