package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)

	ctx := ContextWithRequestID(context.Background(), "req-123")
	ctx = ContextWithCallerID(ctx, "caller-9")

	WithContext(ctx).WithField("project_id", "p-1").Info("milestone updated")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-123", line["request_id"])
	assert.Equal(t, "caller-9", line["caller_id"])
	assert.Equal(t, "p-1", line["project_id"])
	assert.Equal(t, "milestone updated", line["msg"])
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
}

func TestWithContextAnonymous(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)

	WithContext(context.Background()).Debug("hidden")
	assert.Zero(t, buf.Len())

	WithContext(context.Background()).Warn("shown")
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "anonymous", line["caller_id"])
	_, hasRequest := line["request_id"]
	assert.False(t, hasRequest)
}
