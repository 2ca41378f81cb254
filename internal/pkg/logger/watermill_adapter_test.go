package logger

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
)

type captured struct {
	level   string
	module  string
	message string
	details map[string]interface{}
}

type captureLogger struct {
	entries []captured
}

func (c *captureLogger) record(level, module, message string, details map[string]interface{}) {
	c.entries = append(c.entries, captured{level, module, message, details})
}

func (c *captureLogger) Debug(m, msg string, d map[string]interface{}) { c.record("debug", m, msg, d) }
func (c *captureLogger) Info(m, msg string, d map[string]interface{}) { c.record("info", m, msg, d) }
func (c *captureLogger) Warn(m, msg string, d map[string]interface{}) { c.record("warn", m, msg, d) }
func (c *captureLogger) Error(m, msg string, d map[string]interface{}) { c.record("error", m, msg, d) }
func (c *captureLogger) Sync() error { return nil }

func TestWatermillAdapter(t *testing.T) {
	sink := &captureLogger{}
	var adapter watermill.LoggerAdapter = NewWatermillAdapter(sink, "BUS")

	scoped := adapter.With(watermill.LogFields{"topic": "client.state.changed"})
	scoped.Info("Subscribing", watermill.LogFields{"subscriber": 1})
	scoped.Trace("Sending", nil)
	adapter.Error("Publish failed", errors.New("closed"), nil)

	assert.Len(t, sink.entries, 3)
	assert.Equal(t, captured{"info", "BUS", "Subscribing", map[string]interface{}{"topic": "client.state.changed", "subscriber": 1}}, sink.entries[0])
	assert.Equal(t, "debug", sink.entries[1].level)
	assert.Equal(t, "client.state.changed", sink.entries[1].details["topic"])
	assert.Equal(t, "closed", sink.entries[2].details["error"])
	assert.NotContains(t, sink.entries[2].details, "topic")
}
