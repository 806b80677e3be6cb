package plugin

import "fmt"

// Metric is one performance-data record for the graphing section of the
// plugin line. Warn, Crit, Min and Max are strings so that absent
// fields render as empty slots between semicolons; fields are never
// omitted, only left blank.
type Metric struct {
	Name  string
	Value float64
	Units string
	Warn  string
	Crit  string
	Min   string
	Max   string
}

// PerfData accumulates formatted metric records in call order for the
// lifetime of a run. Records are append-only and never deduplicated.
type PerfData struct {
	records []string
}

// NewPerfData returns an empty recorder.
func NewPerfData() *PerfData {
	return &PerfData{}
}

// Add formats m using the established perfdata convention
// ('label'=value[units];warn;crit;min;max;) and appends it.
func (p *PerfData) Add(m Metric) {
	p.records = append(p.records, fmt.Sprintf("'%s'=%s%s;%s;%s;%s;%s;",
		m.Name, formatValue(m.Value), m.Units, m.Warn, m.Crit, m.Min, m.Max))
}

// Records returns the formatted records in insertion order.
func (p *PerfData) Records() []string {
	return p.records
}
