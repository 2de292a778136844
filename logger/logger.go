package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init and logs at info
// level to stderr.
var Log = logrus.New()

// Init configures Log. Empty arguments fall back to LOG_LEVEL and LOG_FORMAT,
// then to "info" and "text".
func Init(level, format string) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	Log.SetOutput(os.Stderr)
}

// Silence discards all output. Tests call it to keep per-frame debug lines
// out of go test output.
func Silence() {
	Log.SetOutput(io.Discard)
}
