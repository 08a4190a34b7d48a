package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-bot/internal/chat"
	"restaurant-bot/internal/chat/delivery/telegram"
	"restaurant-bot/pkg/log"
	pkgTelegram "restaurant-bot/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockChatUseCase struct {
	mu       sync.Mutex
	chatOut  chat.ChatOutput
	chatErr  error
	setErr   error
	inputs   []chat.ChatInput
	setCalls []chat.SetAlgoInput
	resets   []string
}

func (m *mockChatUseCase) Chat(ctx context.Context, in chat.ChatInput) (chat.ChatOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, in)
	return m.chatOut, m.chatErr
}

func (m *mockChatUseCase) SetAlgo(ctx context.Context, in chat.SetAlgoInput) (chat.SetAlgoOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls = append(m.setCalls, in)
	return chat.SetAlgoOutput{Algo: strings.ToLower(in.Algo)}, m.setErr
}

func (m *mockChatUseCase) Algorithms(ctx context.Context) chat.AlgorithmsOutput {
	return chat.AlgorithmsOutput{Available: []string{"lr", "svm"}, Default: "lr"}
}

func (m *mockChatUseCase) Reset(ctx context.Context, clientID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, clientID)
	return nil
}

type captured struct {
	mu   sync.Mutex
	msgs []string
}

func (c *captured) add(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, s)
}

func (c *captured) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine *gin.Engine
	uc     *mockChatUseCase
	sent   *captured
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sent := &captured{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				sent.add(text)
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	uc := &mockChatUseCase{chatOut: chat.ChatOutput{Intent: "greet", Reply: "Hello! How can I help you today?"}}
	engine := gin.New()
	h := telegram.New(log.NewNop(), uc, bot)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{engine: engine, uc: uc, sent: sent}
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(c *captured, atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if msgs := c.snapshot(); len(msgs) >= atLeast {
			return msgs
		}
		time.Sleep(10 * time.Millisecond)
	}
	return c.snapshot()
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_Message(t *testing.T) {
	env := newTestEnv(t)

	w := sendWebhook(env.engine, "hi there")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	msgs := waitForMessages(env.sent, 1, time.Second)
	if len(msgs) != 1 || msgs[0] != "Hello! How can I help you today?" {
		t.Fatalf("unexpected replies: %v", msgs)
	}

	env.uc.mu.Lock()
	defer env.uc.mu.Unlock()
	if len(env.uc.inputs) != 1 {
		t.Fatalf("expected one chat call, got %d", len(env.uc.inputs))
	}
	if got := env.uc.inputs[0]; got.ClientID != "telegram_456" || got.Text != "hi there" {
		t.Errorf("unexpected chat input: %+v", got)
	}
}

func TestHandleWebhook_Commands(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"start", "/start", "Welcome"},
		{"help", "/help", "/algo <id>"},
		{"algo list", "/algo", "Classifiers: lr, svm (default lr)"},
		{"algo set", "/algo SVM", "Classifier set to svm."},
		{"addressed command", "/help@CafeBot", "/algo <id>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			sendWebhook(env.engine, tc.text)

			msgs := waitForMessages(env.sent, 1, time.Second)
			if len(msgs) != 1 || !strings.Contains(msgs[0], tc.want) {
				t.Fatalf("expected reply containing %q, got %v", tc.want, msgs)
			}

			env.uc.mu.Lock()
			defer env.uc.mu.Unlock()
			if len(env.uc.inputs) != 0 {
				t.Errorf("commands must not be routed, got %v", env.uc.inputs)
			}
		})
	}
}

func TestHandleWebhook_StartResetsSession(t *testing.T) {
	env := newTestEnv(t)
	sendWebhook(env.engine, "/start")
	waitForMessages(env.sent, 1, time.Second)

	env.uc.mu.Lock()
	defer env.uc.mu.Unlock()
	if len(env.uc.resets) != 1 || env.uc.resets[0] != "telegram_456" {
		t.Errorf("expected reset of telegram_456, got %v", env.uc.resets)
	}
}

func TestHandleWebhook_InvalidAlgo(t *testing.T) {
	env := newTestEnv(t)
	env.uc.setErr = chat.ErrInvalidAlgorithm

	sendWebhook(env.engine, "/algo knn")
	msgs := waitForMessages(env.sent, 1, time.Second)
	if len(msgs) != 1 || msgs[0] != "Unknown classifier. Available: lr, svm" {
		t.Fatalf("unexpected replies: %v", msgs)
	}
}

func TestHandleWebhook_ChatError(t *testing.T) {
	env := newTestEnv(t)
	env.uc.chatErr = errors.New("store down")

	sendWebhook(env.engine, "menu")
	msgs := waitForMessages(env.sent, 1, time.Second)
	if len(msgs) != 1 || msgs[0] != "Sorry, something went wrong. Please try again." {
		t.Fatalf("unexpected replies: %v", msgs)
	}
}

func TestHandleWebhook_Ignored(t *testing.T) {
	env := newTestEnv(t)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(`{"update_id": 9}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
		t.Fatalf("expected ignored ack, got %d %s", w.Code, w.Body.String())
	}
}

func TestHandleWebhook_BadJSON(t *testing.T) {
	env := newTestEnv(t)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
