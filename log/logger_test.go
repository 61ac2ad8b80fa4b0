package log

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	lines []string
}

func (c *captureLogger) Log(level Level, format string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf("%d: %s", level, fmt.Sprintf(format, args...)))
}

func TestLogfNoLoggerSet(t *testing.T) {
	SetLogger(nil)
	defer SetLogger(nil)

	// Should be a no-op rather than a panic
	Logf(LevelInfo, "lost message")
}

func TestLogfDispatchesToLogger(t *testing.T) {
	capture := &captureLogger{}

	SetLogger(capture)
	defer SetLogger(nil)

	Tracef("a %d", 1)
	Debugf("b")
	Infof("c")
	Warnf("d")
	Errorf("e")

	expected := []string{"0: a 1", "1: b", "2: c", "3: d", "4: e"}

	require.Equal(t, expected, capture.lines)
}

func TestPanicf(t *testing.T) {
	capture := &captureLogger{}

	SetLogger(capture)
	defer SetLogger(nil)

	require.PanicsWithValue(t, "oh no", func() { Panicf("oh %s", "no") })
	require.Equal(t, []string{"5: oh no"}, capture.lines)
}
