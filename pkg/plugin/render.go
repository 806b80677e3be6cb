package plugin

import "strings"

// categoryOrder is the fixed rendering order of message blocks. It is
// independent of the finalized severity.
var categoryOrder = [...]Severity{Unknown, Critical, Warning, OK}

// Render combines recorded results and performance data into the single
// plugin line and its exit code. Empty categories are skipped, the OK
// block is suppressed when the result is quiet, and perfdata (if any)
// is appended after a '|'. perf may be nil.
func Render(res *Result, perf *PerfData) (string, int) {
	var blocks []string
	for _, sev := range categoryOrder {
		if res.Quiet && sev == OK {
			continue
		}
		msgs := res.groups[sev]
		if len(msgs) == 0 {
			continue
		}
		blocks = append(blocks, sev.String()+": "+strings.Join(msgs, ", "))
	}

	line := strings.Join(blocks, "; ")
	if perf != nil && len(perf.records) > 0 {
		line += "|" + strings.Join(perf.records, " ")
	}
	return line, int(res.Finalize())
}
