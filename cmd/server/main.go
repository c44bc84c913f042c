package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/primeacres/realty/internal/app"
	"github.com/primeacres/realty/internal/config"
	"github.com/primeacres/realty/internal/handlers"
	"github.com/primeacres/realty/internal/logging"
	"github.com/primeacres/realty/internal/service/token"
	"github.com/primeacres/realty/internal/storage"
	httpserver "github.com/primeacres/realty/internal/transport/http"
	"github.com/primeacres/realty/internal/validation"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	if err := app.SeedDefaultAdmin(db, configuration.ADMIN_USERNAME, configuration.ADMIN_PASSWORD, logger); err != nil {
		log.Fatalf("admin seed error: %v", err)
	}

	store, err := storage.New(configuration.UPLOAD_DIR)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	tokens := &token.Service{Secret: jwtSecret}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS(), middleware.BodyLimit("32M"))
	e.Use(logging.RequestLogger(logger))
	e.Validator = validation.New()

	deps := httpserver.Deps{
		DB:              db,
		AuthHandler:     &handlers.AuthHandler{DB: db, Tokens: tokens},
		PropertyHandler: &handlers.PropertyHandler{DB: db, Store: store},
		LogoHandler:     &handlers.LogoHandler{Store: store},
		JWTSecret:       jwtSecret,
		UploadDir:       configuration.UPLOAD_DIR,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "err", err)
		}
	} else {
		logger.Error("db handle error", "err", err)
	}

	logger.Info("shutdown complete")
}
