package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/yelp-map-backend-go/internal/middleware"
	"github.com/jengzang/yelp-map-backend-go/internal/models"
	"github.com/jengzang/yelp-map-backend-go/internal/service"
	"github.com/jengzang/yelp-map-backend-go/internal/session"
	"github.com/jengzang/yelp-map-backend-go/pkg/response"
)

// SessionHandler handles HTTP requests for map page sessions
type SessionHandler struct {
	service *service.ExplorerService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service *service.ExplorerService) *SessionHandler {
	return &SessionHandler{service: service}
}

// CreateSession handles POST /api/v1/session
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req models.SessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Invalid request body", err)
			return
		}
	}

	token, frame, err := h.service.CreateSession(req)
	if err != nil {
		fail(c, "Failed to create session", err)
		return
	}

	c.JSON(http.StatusCreated, response.Response{
		Code:    0,
		Message: "success",
		Data: gin.H{
			"token": token,
			"frame": frame,
		},
	})
}

// session resolves the session of the verified token
func (h *SessionHandler) session(c *gin.Context) (*session.Session, bool) {
	sess, err := h.service.Session(middleware.SessionID(c))
	if err != nil {
		fail(c, "Failed to load session", err)
		return nil, false
	}
	return sess, true
}

// GetFrame handles GET /api/v1/session
func (h *SessionHandler) GetFrame(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, sess.Frame())
}

// Refresh handles POST /api/v1/session/refresh
func (h *SessionHandler) Refresh(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, sess.Refresh())
}

// UpdateFilters handles PUT /api/v1/session/filters
func (h *SessionHandler) UpdateFilters(c *gin.Context) {
	var cfg models.FilterConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.BadRequest(c, "Invalid filters", err)
		return
	}

	sess, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, sess.UpdateFilters(cfg))
}

// MoveCenter handles PUT /api/v1/session/center
func (h *SessionHandler) MoveCenter(c *gin.Context) {
	var req models.CenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid center", err)
		return
	}

	sess, ok := h.session(c)
	if !ok {
		return
	}
	frame, err := sess.MoveCenter(models.LatLng{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		fail(c, "Invalid center", err)
		return
	}
	response.Success(c, frame)
}

// SetRadius handles PUT /api/v1/session/radius
func (h *SessionHandler) SetRadius(c *gin.Context) {
	var req models.RadiusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid radius", err)
		return
	}
	if req.Slider == nil && req.Meters == nil {
		response.BadRequest(c, "Either slider or meters is required")
		return
	}

	sess, ok := h.session(c)
	if !ok {
		return
	}
	if req.Slider != nil {
		response.Success(c, sess.SetSlider(*req.Slider))
		return
	}
	response.Success(c, sess.SetRadius(*req.Meters))
}

// Select handles PUT /api/v1/session/selection
func (h *SessionHandler) Select(c *gin.Context) {
	var req models.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid heatmap cell", err)
		return
	}

	sess, ok := h.session(c)
	if !ok {
		return
	}
	frame, err := sess.Select(models.CellKey{Stars: req.Stars, Price: req.Price})
	if err != nil {
		fail(c, "Failed to select heatmap cell", err)
		return
	}
	response.Success(c, frame)
}

// ClearSelection handles DELETE /api/v1/session/selection
func (h *SessionHandler) ClearSelection(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	response.Success(c, sess.ClearSelection())
}

// CloseSession handles DELETE /api/v1/session
func (h *SessionHandler) CloseSession(c *gin.Context) {
	if err := h.service.CloseSession(middleware.SessionID(c)); err != nil {
		fail(c, "Failed to close session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HistogramChart handles GET /api/v1/session/charts/histogram
func (h *SessionHandler) HistogramChart(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	h.html(c, sess.RenderHistogram)
}

// HeatmapChart handles GET /api/v1/session/charts/heatmap
func (h *SessionHandler) HeatmapChart(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	h.html(c, sess.RenderHeatmap)
}

func (h *SessionHandler) html(c *gin.Context, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		fail(c, "Failed to render chart", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
