package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures the global logger. LOG_LEVEL and LOG_FORMAT override the
// configured level and format.
func Init(level, format string) {
	Log = logrus.New()

	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = env
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	if env, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = env
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// SetOutput redirects the global logger, e.g. away from a terminal the
// renderer is drawing on
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// For returns an entry tagged with the component name
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
