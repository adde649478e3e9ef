package logger

import (
	"context"
	"testing"
)

func TestInitAndLog(t *testing.T) {
	Init("development")
	if GetLogger() == nil {
		t.Fatal("expected logger to be initialized")
	}

	ctx := context.WithValue(context.Background(), "request_id", "req-123")
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")
	Debug(ctx, "debug message")
	LogRequest(ctx, "POST", "/webhooks/payment", 200, 0, "127.0.0.1")
}

func TestWithContext_NilAndTypedKey(t *testing.T) {
	Init("development")
	if WithContext(nil) == nil {
		t.Fatal("expected fallback logger")
	}

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-456")
	if WithContext(ctx) == nil {
		t.Fatal("expected logger with typed request id")
	}
}
