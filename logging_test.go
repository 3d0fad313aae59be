package main // import "github.com/calebowens/CorneliusCodes"

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "logfmt", "info")
	require.NoError(t, err)

	_ = level.Debug(logger).Log("msg", "hidden")
	_ = level.Info(logger).Log("msg", "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "ts=")
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "json", "debug")
	require.NoError(t, err)

	_ = level.Debug(logger).Log("msg", "chose", "move", Right)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "chose", line["msg"])
	assert.Equal(t, "right", line["move"])
	assert.Equal(t, "debug", line["level"])
}

func TestNewLoggerRejectsUnknown(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewLogger(&buf, "xml", "info")
	assert.Error(t, err)
	_, err = NewLogger(&buf, "logfmt", "chatty")
	assert.Error(t, err)
}

func TestLineWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "logfmt", "debug")
	require.NoError(t, err)

	fmt.Fprint(lineWriter{logger: logger, key: "grid"}, "F-A\n-Ma\n")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "grid=F-A")
	assert.Contains(t, lines[1], "grid=-Ma")
}
