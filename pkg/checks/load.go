package checks

import (
	"strconv"

	"github.com/shirou/gopsutil/v3/load"

	"checkplug/pkg/plugin"
)

// LoadAverage checks the 1-minute load average against a WARN:CRIT
// threshold spec. Exceeding a threshold is the failing side.
type LoadAverage struct {
	Spec string
	Perf *plugin.PerfData
}

// Name returns the check name.
func (c *LoadAverage) Name() string { return "load" }

// Run samples the load average, records the evaluation outcome, and
// emits a perfdata record when a recorder is attached.
func (c *LoadAverage) Run(res *plugin.Result) error {
	t, err := plugin.ParseThresholds(c.Spec)
	if err != nil {
		return err
	}

	avg, err := load.Avg()
	if err != nil {
		return err
	}

	sev, msg := plugin.Evaluate("load1", avg.Load1, t.Warning, t.Critical, t.Units, plugin.Above)
	res.Record(sev, msg)

	if c.Perf != nil {
		c.Perf.Add(plugin.Metric{
			Name:  "load1",
			Value: avg.Load1,
			Warn:  strconv.Itoa(t.Warning),
			Crit:  strconv.Itoa(t.Critical),
			Min:   "0",
		})
	}
	return nil
}
