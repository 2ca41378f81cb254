package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewIsolatedLogger(path)

	l.Info("CHAT", "query submitted", map[string]interface{}{"history_size": 4})
	l.Error("UPLOAD", "upload failed", map[string]interface{}{"error": "boom"})
	l.Warn("CORPUS", "no details", nil)
	_ = l.Sync()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}

	require.Len(t, entries, 3)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "CHAT", entries[0]["module"])
	assert.Equal(t, "query submitted", entries[0]["message"])
	assert.Equal(t, "boom", entries[1]["error_ref"])
	assert.NotNil(t, entries[2]["details"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Debug("X", "y", nil)
		l.Error("X", "y", map[string]interface{}{"error": "z"})
	})
	assert.NoError(t, l.Sync())
}
