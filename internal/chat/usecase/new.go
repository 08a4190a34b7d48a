package usecase

import (
	"context"

	"restaurant-bot/internal/router"
	"restaurant-bot/pkg/log"
)

// Router is the routing engine the use case drives.
type Router interface {
	Route(ctx context.Context, clientID, text, requestedAlgo string) (router.Result, error)
	SetPreferredAlgo(ctx context.Context, clientID, algo string) (string, error)
	Reset(ctx context.Context, clientID string) error
	Algorithms() router.Algorithms
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	router Router
	l      log.Logger
}

// New creates a new chat UseCase implementation.
func New(r Router, l log.Logger) *implUseCase {
	return &implUseCase{
		router: r,
		l:      l,
	}
}
