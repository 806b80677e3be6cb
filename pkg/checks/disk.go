package checks

import (
	"math"
	"strconv"

	"golang.org/x/sys/unix"

	"checkplug/pkg/plugin"
)

// Filesystem holds capacity numbers for one mounted filesystem.
type Filesystem struct {
	MountPoint string
	Total      uint64
	Used       uint64
	Available  uint64
}

// statFilesystem returns filesystem capacity metrics using statfs.
// This is cross-platform (works on both Linux and macOS).
func statFilesystem(mountPoint string) (*Filesystem, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(mountPoint, &stat); err != nil {
		return nil, err
	}

	blockSize := uint64(stat.Bsize)
	total := stat.Blocks * blockSize
	available := stat.Bavail * blockSize
	used := total - (stat.Bfree * blockSize)

	return &Filesystem{
		MountPoint: mountPoint,
		Total:      total,
		Used:       used,
		Available:  available,
	}, nil
}

// DiskUsage checks the used percentage of a filesystem against a
// WARN:CRIT threshold spec.
type DiskUsage struct {
	Path string
	Spec string
	Perf *plugin.PerfData
}

// Name returns the check name.
func (c *DiskUsage) Name() string { return "disk" }

// Run measures filesystem usage, records the evaluation outcome, and
// emits a perfdata record when a recorder is attached.
func (c *DiskUsage) Run(res *plugin.Result) error {
	t, err := plugin.ParseThresholds(c.Spec)
	if err != nil {
		return err
	}

	fs, err := statFilesystem(c.Path)
	if err != nil {
		return err
	}

	var pct float64
	if fs.Total > 0 {
		pct = float64(fs.Used) / float64(fs.Total) * 100
	}
	// One decimal keeps the message and perfdata readable.
	pct = math.Round(pct*10) / 10

	sev, msg := plugin.Evaluate("disk "+c.Path, pct, t.Warning, t.Critical, "%", plugin.Above)
	res.Record(sev, msg)

	if c.Perf != nil {
		c.Perf.Add(plugin.Metric{
			Name:  "disk " + c.Path,
			Value: pct,
			Units: "%",
			Warn:  strconv.Itoa(t.Warning),
			Crit:  strconv.Itoa(t.Critical),
			Min:   "0",
			Max:   "100",
		})
	}
	return nil
}
