package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForContext_AddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", "json", &buf)

	ctx, correlationID := WithCorrelationID(context.Background())
	require.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))

	ForContext(ctx).Info("mensagem de teste")

	assert.Contains(t, buf.String(), `"correlation_id":"`+correlationID+`"`)
	assert.Contains(t, buf.String(), "mensagem de teste")
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Setup("verbose", "text", &buf)

	L.Debug("não deve aparecer")
	L.Info("deve aparecer")

	assert.NotContains(t, buf.String(), "não deve aparecer")
	assert.Contains(t, buf.String(), "deve aparecer")
}

func TestGetCorrelationID_Missing(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}
