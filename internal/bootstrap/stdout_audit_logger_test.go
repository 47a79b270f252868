package bootstrap

import (
	"context"
	"testing"
	"time"

	"hris-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := NewStdoutAuditLogger(zap.New(core))
	audit.now = func() time.Time { return time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithUserID(ctx, "user-9")
	audit.Log(ctx, AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": "terminated"},
	})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		e := entries[0]
		assert.Equal(t, "audit", e.LoggerName)
		fields := e.ContextMap()
		assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
		assert.Equal(t, "2026-03-31T23:00:00Z", fields["timestamp"])
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, "user-9", fields["user_id"])
	}
}

func TestStdoutAuditLogger_NoRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	NewStdoutAuditLogger(zap.New(core)).Log(context.Background(), AuditLog{Action: "SERVER_START"})

	if assert.Len(t, logs.All(), 1) {
		_, ok := logs.All()[0].ContextMap()["request_id"]
		assert.False(t, ok)
	}
}
