package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"foldercolor/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	defer SetDebug(false)
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1")).With(F("key2", 123)).Info("chained fields")
	output := buf.String()
	assert.Contains(t, output, "chained fields")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.With(F("color", "blue")).Info("json message")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "json message", entry["message"])
	assert.Equal(t, "blue", entry["color"])
	assert.Contains(t, entry, "timestamp")
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	original := logger
	Configure(WithOutput(&buf))
	defer func() { logger = original }()

	LogWithFields(F("error", fmt.Errorf("standard error").Error())).Error("error occurred")
	assert.Contains(t, buf.String(), "standard error")
	buf.Reset()

	toolErr := errors.NewToolError("executable not found or not runnable", "papirus-folders", "", errors.ToolNotFound, nil)
	LogError(toolErr, "apply failed")
	output := buf.String()
	assert.Contains(t, output, "apply failed")
	assert.Contains(t, output, "tool=papirus-folders")
	assert.Contains(t, output, fmt.Sprintf("error_kind=%d", errors.ToolNotFound))
	buf.Reset()

	cfgErr := errors.NewConfigError("invalid value", "tool.theme", errors.InvalidConfig, nil)
	LogWithError(cfgErr).Warn("config rejected")
	output = buf.String()
	assert.Contains(t, output, "param=tool.theme")
	assert.Contains(t, output, fmt.Sprintf("error_kind=%d", errors.InvalidConfig))
	buf.Reset()

	Infof("package level %d", 7)
	assert.Contains(t, buf.String(), "package level 7")
}

func TestDefaultDiscards(t *testing.T) {
	l := NewLogger()
	assert.NotNil(t, l)
	assert.NotNil(t, Default())
}
