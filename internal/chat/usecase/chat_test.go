package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-bot/internal/chat"
	"restaurant-bot/internal/classifier"
	"restaurant-bot/internal/model"
	"restaurant-bot/internal/reply"
	"restaurant-bot/internal/router"
	"restaurant-bot/pkg/log"
)

type mockRouter struct {
	result   router.Result
	routeErr error
	setID    string
	setErr   error
	resetErr error

	gotClient string
	gotText   string
	gotAlgo   string
}

func (m *mockRouter) Route(ctx context.Context, clientID, text, algo string) (router.Result, error) {
	m.gotClient, m.gotText, m.gotAlgo = clientID, text, algo
	return m.result, m.routeErr
}

func (m *mockRouter) SetPreferredAlgo(ctx context.Context, clientID, algo string) (string, error) {
	m.gotClient, m.gotAlgo = clientID, algo
	return m.setID, m.setErr
}

func (m *mockRouter) Reset(ctx context.Context, clientID string) error {
	m.gotClient = clientID
	return m.resetErr
}

func (m *mockRouter) Algorithms() router.Algorithms {
	return router.Algorithms{Available: []string{"lr", "svm"}, Default: "lr"}
}

func TestChat(t *testing.T) {
	mr := &mockRouter{result: router.Result{
		Intent:     model.IntentGreet,
		Confidence: 1,
		Algo:       "lr",
		Reply:      reply.Reply{Text: reply.TextGreet},
		Source:     "rule:greeting",
	}}
	uc := New(mr, log.NewNop())

	out, err := uc.Chat(context.Background(), chat.ChatInput{ClientID: " c1 ", Text: "hi", Algo: "svm"})
	require.NoError(t, err)
	assert.Equal(t, chat.ChatOutput{Intent: "greet", Confidence: 1, Reply: reply.TextGreet, Algo: "lr", Source: "rule:greeting"}, out)
	assert.Equal(t, "c1", mr.gotClient)
	assert.Equal(t, "hi", mr.gotText)
	assert.Equal(t, "svm", mr.gotAlgo)
}

func TestChat_Errors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name     string
		clientID string
		routeErr error
		wantErr  error
	}{
		{"missing client", "  ", nil, chat.ErrMissingClientID},
		{"invalid algo", "c1", fmt.Errorf("%w: %q", classifier.ErrInvalidAlgorithm, "knn"), chat.ErrInvalidAlgorithm},
		{"store failure", "c1", boom, boom},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := New(&mockRouter{routeErr: tc.routeErr}, log.NewNop())
			_, err := uc.Chat(context.Background(), chat.ChatInput{ClientID: tc.clientID, Text: "hi", Algo: "KNN"})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSetAlgo(t *testing.T) {
	mr := &mockRouter{setID: "svm"}
	uc := New(mr, log.NewNop())

	out, err := uc.SetAlgo(context.Background(), chat.SetAlgoInput{ClientID: "c1", Algo: "SVM"})
	require.NoError(t, err)
	assert.Equal(t, "svm", out.Algo)

	mr.setErr = classifier.ErrInvalidAlgorithm
	_, err = uc.SetAlgo(context.Background(), chat.SetAlgoInput{ClientID: "c1", Algo: "knn"})
	assert.ErrorIs(t, err, chat.ErrInvalidAlgorithm)
	assert.Contains(t, err.Error(), `"knn"`)

	_, err = uc.SetAlgo(context.Background(), chat.SetAlgoInput{Algo: "lr"})
	assert.ErrorIs(t, err, chat.ErrMissingClientID)
}

func TestAlgorithmsAndReset(t *testing.T) {
	mr := &mockRouter{}
	uc := New(mr, log.NewNop())

	assert.Equal(t, chat.AlgorithmsOutput{Available: []string{"lr", "svm"}, Default: "lr"}, uc.Algorithms(context.Background()))

	require.NoError(t, uc.Reset(context.Background(), "c9"))
	assert.Equal(t, "c9", mr.gotClient)
	assert.ErrorIs(t, uc.Reset(context.Background(), ""), chat.ErrMissingClientID)
}
