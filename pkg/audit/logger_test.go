package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raseguard/raseguard/pkg/correlation"
)

func TestRecordWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := correlation.WithCorrelationID(context.Background(), "corr-123")
	logger.Record(ctx, ActionProtect, "dr-smith", "PAT-1", "protected successfully", true)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "corr-123", entry["correlationId"])
	assert.Equal(t, "PROTECT", entry["action"])
	assert.Equal(t, "dr-smith", entry["actor"])
	assert.Equal(t, "PAT-1", entry["subjectId"])
	assert.Equal(t, true, entry["success"])
}

func TestRecordGeneratesCorrelationIDWhenAbsent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Record(context.Background(), ActionAttack, "RANSOMWARE", "PAT-1", "simulated attack", true)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotEmpty(t, entry["correlationId"])
}
