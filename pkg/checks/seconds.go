package checks

import (
	"fmt"
	"slices"

	"checkplug/pkg/plugin"
)

// GoodSeconds passes when the observed second is in the allowed set.
// An empty set means every second is acceptable.
type GoodSeconds struct {
	Second int
	Good   []int
}

// Name returns the check name.
func (c *GoodSeconds) Name() string { return "good-seconds" }

// Run records OK when the second is allowed, Critical otherwise.
func (c *GoodSeconds) Run(res *plugin.Result) error {
	if len(c.Good) == 0 {
		res.OK("It is all good")
		return nil
	}
	if slices.Contains(c.Good, c.Second) {
		res.OK(fmt.Sprintf("%d is good", c.Second))
	} else {
		res.Critical(fmt.Sprintf("%d is a bad second!", c.Second))
	}
	return nil
}

// primeSeconds are the primes that fit in a minute.
var primeSeconds = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59}

// PrimeSecond passes only when the observed second is a prime number.
type PrimeSecond struct {
	Second int
}

// Name returns the check name.
func (c *PrimeSecond) Name() string { return "prime-second" }

// Run records OK for a prime second, Critical otherwise.
func (c *PrimeSecond) Run(res *plugin.Result) error {
	if slices.Contains(primeSeconds, c.Second) {
		res.OK(fmt.Sprintf("%d is prime", c.Second))
	} else {
		res.Critical(fmt.Sprintf("%d is not prime", c.Second))
	}
	return nil
}

// RangeCheck evaluates the observed second against a WARN:CRIT[:UNITS]
// threshold spec in the given direction. The spec is parsed at run
// time; a malformed spec fails the check.
type RangeCheck struct {
	CheckName string
	Label     string
	Second    int
	Spec      string
	Direction plugin.Direction
}

// Name returns the check name.
func (c *RangeCheck) Name() string { return c.CheckName }

// Run parses the threshold spec and records the evaluation outcome.
func (c *RangeCheck) Run(res *plugin.Result) error {
	t, err := plugin.ParseThresholds(c.Spec)
	if err != nil {
		return err
	}

	sev, msg := plugin.Evaluate(c.Label, float64(c.Second), t.Warning, t.Critical, "s", c.Direction)
	res.Record(sev, msg)
	return nil
}
