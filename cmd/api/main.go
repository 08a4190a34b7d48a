package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"restaurant-bot/config"
	_ "restaurant-bot/docs" // Swagger docs
	"restaurant-bot/internal/bootstrap"
	chatHTTP "restaurant-bot/internal/chat/delivery/http"
	tgDelivery "restaurant-bot/internal/chat/delivery/telegram"
	chatUC "restaurant-bot/internal/chat/usecase"
	"restaurant-bot/internal/httpserver"
	"restaurant-bot/internal/middleware"
	"restaurant-bot/pkg/log"
	"restaurant-bot/pkg/telegram"
)

// @title       Restaurant Bot API
// @description Hybrid intent routing for a café chatbot: keyword rules, classifier ensemble and catalog-aware replies.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Restaurant Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Routing engine
	engine, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build routing engine: ", err)
		return
	}
	defer func() {
		if cerr := engine.Close(); cerr != nil {
			logger.Warnf(ctx, "Failed to close session store: %v", cerr)
		}
	}()

	// 4. Chat domain
	uc := chatUC.New(engine.Router, logger)
	chatHandler := chatHTTP.New(logger, uc)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, uc, bot)
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.RateLimit.PerMin,
		WebhookSecret:   cfg.Telegram.Secret,
		AllowedIPs:      cfg.Telegram.AllowedIPs,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		Ready:           engine.Ready,
		ChatHandler:     chatHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service: the configured URL, or a
// tunnel discovered through the ngrok API.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + webhookPath
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: no webhook_url")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.Secret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
