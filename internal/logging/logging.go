package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds a logrus logger configured for CLI use. The returned
// *logrus.Logger satisfies the calculation.Logger interface directly.
func New(out io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return logger
}
