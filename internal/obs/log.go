package obs

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggerOnce sync.Once
	logger     *logrus.Logger
)

// Logger returns the shared structured logger used across the app. JSON
// output so log lines stay machine-readable alongside the interactive UI.
func Logger() *logrus.Logger {
	loggerOnce.Do(func() {
		logger = newLogger()
	})
	return logger
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	})
	return l
}

// SetOutput redirects the shared logger, e.g. to stderr so log lines do
// not interleave with session prompts, or to io.Discard in tests.
func SetOutput(w io.Writer) {
	Logger().SetOutput(w)
}

// SetLevel parses and applies a logrus level name; unknown names keep the
// current level.
func SetLevel(name string) {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		Logger().WithField("level", name).Warn("unknown log level, keeping current")
		return
	}
	Logger().SetLevel(lvl)
}
