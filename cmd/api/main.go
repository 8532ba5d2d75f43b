package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/cmd/api/auth"
	"portfolio-backend/cmd/api/router"
	"portfolio-backend/internal/logger"
	"portfolio-backend/config"
	"portfolio-backend/db"
)

// @title           Portfolio API
// @version         1.0
// @description     REST backend for a personal portfolio site: projects, blog, contact form and admin auth
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		return
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		logger.Log.Errorf("failed to initialize JWT manager: %v", err)
		return
	}

	srv := &http.Server{
		Addr:    ":" + config.Port(),
		Handler: router.New(jwtManager),
	}

	go func() {
		logger.Log.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server shutdown: %v", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Log.Errorf("mongo disconnect: %v", err)
	}
}
