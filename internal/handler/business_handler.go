package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
	"github.com/jengzang/yelp-map-backend-go/internal/service"
	"github.com/jengzang/yelp-map-backend-go/pkg/response"
)

// BusinessHandler handles stateless queries over the business dataset
type BusinessHandler struct {
	service *service.ExplorerService
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(service *service.ExplorerService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// Search handles GET /api/v1/businesses/search
func (h *BusinessHandler) Search(c *gin.Context) {
	var q models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	frame, err := h.service.Search(q)
	if err != nil {
		fail(c, "Failed to search businesses", err)
		return
	}
	response.Success(c, frame)
}

// Summary handles GET /api/v1/businesses/summary
func (h *BusinessHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary()
	if err != nil {
		fail(c, "Failed to summarize dataset", err)
		return
	}
	response.Success(c, summary)
}

// Health handles GET /health. It stays 200 while the dataset loads so the
// process is considered alive; the dataset field tells readiness apart.
func (h *BusinessHandler) Health(c *gin.Context) {
	status, err := h.service.Status()
	body := gin.H{
		"status":  "ok",
		"message": "Yelp Map Backend API is running",
		"dataset": status,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusOK, body)
}
