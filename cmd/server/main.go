package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/yelp-map-backend-go/internal/api"
	"github.com/jengzang/yelp-map-backend-go/internal/auth"
	"github.com/jengzang/yelp-map-backend-go/internal/config"
	"github.com/jengzang/yelp-map-backend-go/internal/dataset"
	"github.com/jengzang/yelp-map-backend-go/internal/middleware"
	"github.com/jengzang/yelp-map-backend-go/internal/repository"
	"github.com/jengzang/yelp-map-backend-go/internal/service"
	"github.com/jengzang/yelp-map-backend-go/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 加载配置
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 后台加载数据集，加载完成前接口返回 503
	source := repository.NewBusinessSource(cfg.DatasetPath)
	loader := dataset.NewLoader(source)
	loader.Start(ctx)

	sessions := session.NewManager(cfg.SessionTTL)
	defer sessions.Close()

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	svc := service.NewExplorerService(cfg, loader, sessions, tokens)

	// 初始化路由
	router := api.SetupRouter(svc, tokens, limiter)
	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		limiter.Run(gctx.Done())
		return nil
	})
	g.Go(func() error {
		// 启动服务器
		log.Printf("Server starting on port %s (dataset %s)", cfg.Port, source)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error:", err)
	}
	log.Println("Server stopped")
}
