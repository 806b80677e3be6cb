package plugin

import (
	"fmt"
	"strconv"
)

// Direction selects which side of a threshold is the failing side.
type Direction int

const (
	// Above treats values at or over a threshold as failing.
	Above Direction = iota
	// Below treats values at or under a threshold as failing.
	Below
)

// Evaluate classifies value against warning and critical thresholds and
// returns the severity together with the message to record. Boundaries
// escalate inclusively in both directions. Evaluate is pure; the caller
// feeds the outcome to a Result.
func Evaluate(name string, value float64, warning, critical int, units string, dir Direction) (Severity, string) {
	v := formatValue(value)
	switch dir {
	case Below:
		if value <= float64(critical) {
			return Critical, fmt.Sprintf("%s %s%s<%d%s", name, v, units, critical, units)
		}
		if value <= float64(warning) {
			return Warning, fmt.Sprintf("%s %s%s<%d%s", name, v, units, warning, units)
		}
	default:
		if value >= float64(critical) {
			return Critical, fmt.Sprintf("%s %s%s>%d%s", name, v, units, critical, units)
		}
		if value >= float64(warning) {
			return Warning, fmt.Sprintf("%s %s%s>%d%s", name, v, units, warning, units)
		}
	}
	return OK, fmt.Sprintf("%s %s%s", name, v, units)
}

// formatValue renders integral values without a decimal point so the
// plugin line stays byte-stable for integer measurements.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
