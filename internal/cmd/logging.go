package cmd

import (
	"io"

	"github.com/pthm/scrutey/internal/config"
	"github.com/sirupsen/logrus"
)

// setupLogging configures the logger; verbose forces debug level
func setupLogging(l *logrus.Logger, w io.Writer, cfg *config.Config, verbose bool) {
	level := cfg.Level()
	if verbose {
		level = logrus.DebugLevel
	}

	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
