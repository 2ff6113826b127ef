package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planeacion/backend/config"
	"planeacion/backend/internal/api/handler"
	"planeacion/backend/internal/api/router"
	"planeacion/backend/internal/repository"
	"planeacion/backend/internal/service"
	"planeacion/backend/pkg/database"
	"planeacion/backend/pkg/jwt"
	applogger "planeacion/backend/pkg/logger"
	"planeacion/backend/pkg/password"
)

func main() {
	// 1. config
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.Strings("allowed_origins", cfg.Server.CORS.AllowOrigins),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	// 4. token codec and hasher
	tokens, err := jwt.NewManager(&cfg.Auth)
	if err != nil {
		logger.Fatal("init token manager", zap.Error(err))
	}
	hasher := password.NewHasher(cfg.Auth.BcryptCost)

	// 5. Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, tokens, hasher, logger)
	probe := func(ctx context.Context) (string, error) {
		return database.Probe(ctx, sqlDB)
	}
	h := handler.NewHandler(svc, probe, logger)

	// 6. router
	engine, err := router.Setup(cfg, h, svc.Auth, logger)
	if err != nil {
		logger.Fatal("init router", zap.Error(err))
	}

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("close database", zap.Error(err))
	}

	logger.Info("stopped")
}
