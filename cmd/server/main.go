package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logging"
	"trivia-api/internal/server"
	"trivia-api/internal/services"
	"trivia-api/internal/telegram"
	"trivia-api/internal/telemetry"
	"trivia-api/internal/ws"

	"github.com/gin-gonic/gin"
)

// @title           Trivia API
// @version         1.0
// @description     Trivia question bank: categories, paginated questions, search and a quiz mode.
// @host            localhost:5000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Init(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint)
	if err != nil {
		logger.Error("set up tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("flush traces", "error", err)
		}
	}()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("connect database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Error("migrate database", "error", err)
		os.Exit(1)
	}
	if cfg.Seed {
		seed, err := database.DefaultSeed()
		if err != nil {
			logger.Error("parse seed data", "error", err)
			os.Exit(1)
		}
		if err := database.Seed(db, seed); err != nil {
			logger.Error("seed database", "error", err)
			os.Exit(1)
		}
	}

	hub := ws.NewHub()
	authService := services.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecret)
	if !cfg.AuthEnabled() {
		logger.Info("TRIVIA_ADMIN_PASSWORD_HASH not set, mutations are unauthenticated")
	}

	r := server.New(server.Options{
		DB:     db,
		Hub:    hub,
		Auth:   authService,
		Logger: logger,
	})

	if cfg.TelegramBotToken != "" {
		bot, err := telegram.NewBot(
			cfg.TelegramBotToken,
			services.NewCategoryService(db),
			services.NewQuizService(db),
			logger,
		)
		if err != nil {
			logger.Error("start telegram bot", "error", err)
			os.Exit(1)
		}
		go bot.Run(ctx)
	} else {
		logger.Info("TELEGRAM_BOT_TOKEN not set, telegram bot disabled")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			logger.Warn("server shutdown", "error", err)
		}
	}()

	logger.Info("server starting", "port", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
