package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"restaurant-bot/pkg/log"
)

func TestRequestIDAttached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewZap(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-42")
	l.Infof(ctx, "routed %s", "greet")
	l.Info(context.Background(), "no id")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "routed greet" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()[log.FieldRequestID]; got != "req-42" {
		t.Errorf("expected request id field, got %v", got)
	}
	if _, ok := entries[1].ContextMap()[log.FieldRequestID]; ok {
		t.Errorf("did not expect request id on second entry")
	}
}

func TestRequestIDMissing(t *testing.T) {
	if id := log.RequestID(context.Background()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}

func TestNopDoesNotPanic(t *testing.T) {
	l := log.NewNop()
	l.Debugf(context.Background(), "x=%d", 1)
	l.Warn(context.Background(), "warn")
	l.Error(context.Background(), "error")
}
