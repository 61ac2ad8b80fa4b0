package log

import (
	"fmt"
	"time"
)

// StdoutLogger is a basic logger implementation which prints all log statements to standard output.
type StdoutLogger struct{}

// Log prints the given message to standard output with a timestamp and a prefix dependant on the level.
func (s StdoutLogger) Log(level Level, msg string, args ...any) {
	var prefix string

	switch level {
	case LevelTrace:
		prefix = "TRAC"
	case LevelDebug:
		prefix = "DEBU"
	case LevelInfo:
		prefix = "INFO"
	case LevelWarning:
		prefix = "WARN"
	case LevelError:
		prefix = "ERRO"
	case LevelPanic:
		prefix = "PNIC"
	}

	fmt.Println(time.Now().Format(time.RFC3339Nano) + " " + prefix + ": " + fmt.Sprintf(msg, args...))
}
