package inputguard_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhiyi-school/ssd-practest/pkg/inputguard"
	"github.com/zhiyi-school/ssd-practest/pkg/logger"
)

func TestGuard_LogsDetectionWithoutInput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithJSONFormatter(), logger.WithLevel(slog.LevelDebug))
	guard := inputguard.New(inputguard.WithLogger(log), inputguard.WithClock(frozenClock()))

	v := guard.Validate("<script>alert(1)</script>")
	require.Equal(t, inputguard.CategoryXSS, v.Category)

	assert.NotContains(t, buf.String(), "alert(1)")

	var entry map[string]any
	scanner := bufio.NewScanner(buf)
	require.True(t, scanner.Scan())
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))

	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "inputguard", entry["component"])
	assert.Equal(t, "xss", entry["category"])
	assert.Equal(t, "xss.script_tag", entry["rule"])
	assert.Equal(t, "matched", entry["event"])
	assert.EqualValues(t, 25, entry["input_length"])
}

func TestGuard_LogsOversizedInput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithJSONFormatter())
	guard := inputguard.New(inputguard.WithLogger(log))

	v := guard.Validate(string(make([]byte, 5001)))
	require.Equal(t, inputguard.CategoryXSS, v.Category)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "oversized", entry["event"])
}
