package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)

	log.Debug("hidden")
	log.Info("holidays computed", "jurisdiction", "DE-BY", "count", 12)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "holidays computed", entry["msg"])
	assert.Equal(t, "DE-BY", entry["jurisdiction"])

	ts, err := time.Parse(time.RFC3339Nano, entry["time"].(string))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, true).Debug("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Contains(t, entry, "source")
}
