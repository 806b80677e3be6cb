// Package plugin implements the decision core of an NRPE-compatible
// monitoring check: severity aggregation, threshold parsing and
// evaluation, performance data, and rendering of the final plugin line.
package plugin

// Severity is the NRPE return-code scale. Higher values outrank lower
// ones when deciding the overall result of a run.
type Severity int

const (
	OK       Severity = 0
	Warning  Severity = 1
	Critical Severity = 2
	Unknown  Severity = 3
)

// undefined is the aggregator's initial rank. It is never rendered; a
// run that records nothing finalizes to Unknown instead.
const undefined Severity = -1

// String returns the category label used in plugin output.
func (s Severity) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	case Unknown:
		return "UNKNOWN"
	}
	return "UNDEFINED"
}
