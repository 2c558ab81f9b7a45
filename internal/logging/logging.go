package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the process-wide logger. Diagnostics go to stderr so
// they never mix with result output on stdout; verbose lowers the level to
// debug for per-file records.
func Setup(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.InfoLevel)
}
