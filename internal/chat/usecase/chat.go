package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-bot/internal/chat"
	"restaurant-bot/internal/classifier"
)

var _ chat.UseCase = (*implUseCase)(nil)

// Chat routes one message.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	clientID := strings.TrimSpace(input.ClientID)
	if clientID == "" {
		return chat.ChatOutput{}, chat.ErrMissingClientID
	}

	res, err := uc.router.Route(ctx, clientID, input.Text, input.Algo)
	if err != nil {
		return chat.ChatOutput{}, uc.mapError(input.Algo, err)
	}

	return chat.ChatOutput{
		Intent:     string(res.Intent),
		Confidence: res.Confidence,
		Reply:      res.Reply.Text,
		Algo:       res.Algo,
		Source:     res.Source,
	}, nil
}

// SetAlgo stores the client's preferred classifier.
func (uc *implUseCase) SetAlgo(ctx context.Context, input chat.SetAlgoInput) (chat.SetAlgoOutput, error) {
	clientID := strings.TrimSpace(input.ClientID)
	if clientID == "" {
		return chat.SetAlgoOutput{}, chat.ErrMissingClientID
	}

	id, err := uc.router.SetPreferredAlgo(ctx, clientID, input.Algo)
	if err != nil {
		return chat.SetAlgoOutput{}, uc.mapError(input.Algo, err)
	}
	return chat.SetAlgoOutput{Algo: id}, nil
}

// Algorithms lists the loaded classifiers.
func (uc *implUseCase) Algorithms(ctx context.Context) chat.AlgorithmsOutput {
	a := uc.router.Algorithms()
	return chat.AlgorithmsOutput{Available: a.Available, Default: a.Default}
}

// Reset forgets the client's conversation state.
func (uc *implUseCase) Reset(ctx context.Context, clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return chat.ErrMissingClientID
	}
	return uc.router.Reset(ctx, clientID)
}

func (uc *implUseCase) mapError(algo string, err error) error {
	if errors.Is(err, classifier.ErrInvalidAlgorithm) {
		return fmt.Errorf("%w: %q", chat.ErrInvalidAlgorithm, strings.ToLower(strings.TrimSpace(algo)))
	}
	return err
}
