package chat

// ChatInput is one inbound message.
type ChatInput struct {
	ClientID string
	Text     string
	// Algo optionally overrides the classifier for this call only.
	Algo string
}

// ChatOutput is the routed reply.
type ChatOutput struct {
	Intent     string
	Confidence float64
	Reply      string
	Algo       string
	Source     string
}

type SetAlgoInput struct {
	ClientID string
	Algo     string
}

type SetAlgoOutput struct {
	Algo string
}

type AlgorithmsOutput struct {
	Available []string
	Default   string
}
