package plugin

// Result accumulates (severity, message) outcomes for a single plugin
// run. The overall rank only ever goes up: recording a lower severity
// after a higher one keeps the higher one. Construct with NewResult;
// one Result serves exactly one run and is not safe for concurrent use.
type Result struct {
	rank   Severity
	groups map[Severity][]string

	// Quiet suppresses the OK block when the result is rendered.
	Quiet bool
}

// NewResult returns an empty Result ready to record outcomes.
func NewResult() *Result {
	return &Result{
		rank:   undefined,
		groups: make(map[Severity][]string),
	}
}

// Record appends message under the given severity and raises the
// overall rank if the severity outranks the current one.
func (r *Result) Record(s Severity, message string) {
	r.groups[s] = append(r.groups[s], message)
	if s > r.rank {
		r.rank = s
	}
}

// OK records an 'OK' outcome for a check.
func (r *Result) OK(message string) { r.Record(OK, message) }

// Warning records a 'WARNING' outcome for a check.
func (r *Result) Warning(message string) { r.Record(Warning, message) }

// Critical records a 'CRITICAL' outcome for a check.
func (r *Result) Critical(message string) { r.Record(Critical, message) }

// Unknown records an 'UNKNOWN' outcome for a check.
func (r *Result) Unknown(message string) { r.Record(Unknown, message) }

// Finalize returns the overall severity of the run. A run that never
// recorded anything is Unknown.
func (r *Result) Finalize() Severity {
	if r.rank == undefined {
		return Unknown
	}
	return r.rank
}

// Messages returns the recorded messages for a severity in insertion
// order.
func (r *Result) Messages(s Severity) []string {
	return r.groups[s]
}
