package cmdlog

import (
	"github.com/sirupsen/logrus"

	"postpulse/internal/metrics"
)

// Run executes a CLI command body, recording metrics and logging the
// outcome.
func Run(cmd string, f func() error) error {
	metrics.IncCommandRun(cmd)
	err := f()
	if err != nil {
		metrics.IncCommandError(cmd)
		logrus.WithField("command", cmd).WithError(err).Error("command failed")
	} else {
		logrus.WithField("command", cmd).Debug("command ok")
	}
	return err
}
