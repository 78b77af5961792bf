package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/yelp-map-backend-go/internal/auth"
	"github.com/jengzang/yelp-map-backend-go/internal/handler"
	"github.com/jengzang/yelp-map-backend-go/internal/middleware"
	"github.com/jengzang/yelp-map-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(svc *service.ExplorerService, tokens *auth.TokenIssuer, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	businessHandler := handler.NewBusinessHandler(svc)
	sessionHandler := handler.NewSessionHandler(svc)

	// 健康检查
	r.GET("/health", businessHandler.Health)

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(limiter))
	{
		// 商家查询接口
		businesses := api.Group("/businesses")
		{
			businesses.GET("/search", businessHandler.Search)
			businesses.GET("/summary", businessHandler.Summary)
		}

		// 地图会话接口
		api.POST("/session", sessionHandler.CreateSession)

		sess := api.Group("/session")
		sess.Use(middleware.SessionAuth(tokens))
		{
			sess.GET("", sessionHandler.GetFrame)
			sess.DELETE("", sessionHandler.CloseSession)
			sess.POST("/refresh", sessionHandler.Refresh)
			sess.PUT("/filters", sessionHandler.UpdateFilters)
			sess.PUT("/center", sessionHandler.MoveCenter)
			sess.PUT("/radius", sessionHandler.SetRadius)
			sess.PUT("/selection", sessionHandler.Select)
			sess.DELETE("/selection", sessionHandler.ClearSelection)
			sess.GET("/charts/histogram", sessionHandler.HistogramChart)
			sess.GET("/charts/heatmap", sessionHandler.HeatmapChart)
		}
	}

	return r
}
