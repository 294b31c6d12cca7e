package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atopal/blog-backend/internal/api"
	"github.com/atopal/blog-backend/internal/auth"
	"github.com/atopal/blog-backend/internal/config"
	"github.com/atopal/blog-backend/internal/db"
	"github.com/atopal/blog-backend/internal/logger"
	"github.com/atopal/blog-backend/internal/metrics"
	"github.com/atopal/blog-backend/internal/middleware"
	"github.com/atopal/blog-backend/internal/repository/postgres"
	"github.com/atopal/blog-backend/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	tm := auth.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	userSvc := services.NewUserService(repos.Users, tm, cfg)
	postSvc := services.NewPostService(repos.Posts, repos.Comments)
	commentSvc := services.NewCommentService(repos.Comments, repos.Posts)

	metrics.Init()
	r := api.NewRouter(cfg, middleware.NewIdentity(tm), userSvc, postSvc, commentSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
