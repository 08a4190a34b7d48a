package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "restaurant-bot/internal/chat/delivery/http"
	tgDelivery "restaurant-bot/internal/chat/delivery/telegram"
	"restaurant-bot/internal/middleware"
	"restaurant-bot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	ready       ReadinessFunc

	// Chat domain
	chatHandler     chatHTTP.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	Ready       ReadinessFunc

	// Chat domain
	ChatHandler chatHTTP.Handler
	// TelegramHandler is optional; the webhook route is skipped without it.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		ready:           cfg.Ready,
		chatHandler:     cfg.ChatHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
