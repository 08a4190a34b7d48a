package chat

import "context"

// UseCase is the conversation entry point shared by every transport.
type UseCase interface {
	// Chat routes one message for a client and returns the reply.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// SetAlgo stores the client's preferred classifier.
	SetAlgo(ctx context.Context, input SetAlgoInput) (SetAlgoOutput, error)
	// Algorithms lists the loaded classifiers.
	Algorithms(ctx context.Context) AlgorithmsOutput
	// Reset forgets the client's conversation state.
	Reset(ctx context.Context, clientID string) error
}
