package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"checkplug/pkg/checks"
	"checkplug/pkg/fetch"
	"checkplug/pkg/output"
	"checkplug/pkg/plugin"
)

// options is the parsed invocation configuration. Flag handling stays
// here in cmd; the packages underneath only ever see this struct or
// its fields.
type options struct {
	quiet    bool
	validate bool
	debug    bool
	pretty   bool

	good       []int
	prime      bool
	aboveRange string
	belowRange string
	loadSpec   string
	diskSpec   string
	diskPath   string
	timeURL    string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "checkplug",
		Short: "NRPE-compatible check of the current second reported by a time service",
		Long: `checkplug fetches the current time from a remote service and classifies
the seconds component against the configured checks, producing a single
Nagios-style status line and exit code.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			run(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "do not display message information for checks that are OK")
	cmd.Flags().BoolVar(&opts.validate, "validate", true, "validate TLS certificates")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "also print a styled result table on stderr")
	cmd.Flags().IntSliceVar(&opts.good, "good", nil, "list of acceptable seconds (default: all)")
	cmd.Flags().BoolVar(&opts.prime, "prime", false, "require the second to be a prime number")
	cmd.Flags().StringVar(&opts.aboveRange, "above-range", "", "WARN:CRIT range the second should stay above")
	cmd.Flags().StringVar(&opts.belowRange, "below-range", "", "WARN:CRIT range the second should stay below")
	cmd.Flags().StringVar(&opts.loadSpec, "load", "", "WARN:CRIT thresholds for the 1-minute load average")
	cmd.Flags().StringVar(&opts.diskSpec, "disk", "", "WARN:CRIT thresholds for filesystem usage percent")
	cmd.Flags().StringVar(&opts.diskPath, "disk-path", "/", "mount point checked by --disk")
	cmd.Flags().StringVar(&opts.timeURL, "time-url", fetch.DefaultTimeURL, "time service endpoint")

	return cmd
}

// run performs one check invocation end to end and exits the process
// with the finalized return code.
func run(opts *options) {
	logger := newLogger(opts.debug)

	res := plugin.NewResult()
	res.Quiet = opts.quiet
	perf := plugin.NewPerfData()

	collect(opts, res, perf, logger)

	line, code := plugin.Render(res, perf)
	fmt.Println(line)

	if opts.pretty {
		output.NewPrettyPrinter(os.Stderr).Render(res, perf)
	}

	os.Exit(code)
}

// collect fetches the measurement and runs the configured checks. A
// fetch failure is recorded as Unknown and skips every check, mirroring
// the runner's own policy for mid-run failures.
func collect(opts *options, res *plugin.Result, perf *plugin.PerfData, logger *logrus.Logger) {
	client := fetch.NewClient(opts.validate, logger)

	second, err := client.CurrentSecond(opts.timeURL)
	if err != nil {
		res.Unknown(fmt.Sprintf("We got the following error %v", err))
		return
	}
	logger.WithField("second", second).Debug("Fetched current second")

	perf.Add(plugin.Metric{
		Name:  "current second",
		Value: float64(second),
		Units: "s",
		Min:   "0",
		Max:   "59",
	})

	reg := buildRegistry(opts, second, perf)
	checks.NewRunner(logger).RunAll(reg, res)
}

// buildRegistry translates options into the ordered list of checks for
// this invocation.
func buildRegistry(opts *options, second int, perf *plugin.PerfData) *checks.Registry {
	reg := checks.NewRegistry()

	reg.Register(&checks.GoodSeconds{Second: second, Good: opts.good})
	if opts.prime {
		reg.Register(&checks.PrimeSecond{Second: second})
	}
	if opts.aboveRange != "" {
		reg.Register(&checks.RangeCheck{
			CheckName: "range-above",
			Label:     "seconds above",
			Second:    second,
			Spec:      opts.aboveRange,
			Direction: plugin.Below,
		})
	}
	if opts.belowRange != "" {
		reg.Register(&checks.RangeCheck{
			CheckName: "range-below",
			Label:     "seconds below",
			Second:    second,
			Spec:      opts.belowRange,
			Direction: plugin.Above,
		})
	}
	if opts.loadSpec != "" {
		reg.Register(&checks.LoadAverage{Spec: opts.loadSpec, Perf: perf})
	}
	if opts.diskSpec != "" {
		reg.Register(&checks.DiskUsage{Path: opts.diskPath, Spec: opts.diskSpec, Perf: perf})
	}

	return reg
}

func newLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	// stdout carries exactly one machine-parsed line; everything else
	// goes to stderr.
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
