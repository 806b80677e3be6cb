package checks

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"checkplug/pkg/plugin"
)

// Runner executes registered checks against a single run's Result.
type Runner struct {
	logger *logrus.Logger
}

// NewRunner creates a runner.
func NewRunner(logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Runner{logger: logger}
}

// RunAll executes each check in registration order. The first check
// that fails is recorded as Unknown and the remaining checks are
// skipped; outcomes recorded by earlier checks are kept and still
// rendered.
func (r *Runner) RunAll(reg *Registry, res *plugin.Result) {
	for _, c := range reg.Checks() {
		r.logger.WithField("check", c.Name()).Debug("Running check")

		if err := c.Run(res); err != nil {
			r.logger.WithFields(logrus.Fields{
				"check": c.Name(),
				"error": err,
			}).Warn("Check failed")

			res.Unknown(fmt.Sprintf("We got the following error %v", err))
			return
		}
	}
}
