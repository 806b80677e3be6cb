package plugin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned by ParseThresholds, matchable with errors.Is.
var (
	ErrBlankThreshold    = errors.New("blank segment in threshold specification")
	ErrTooFewThresholds  = errors.New("too few thresholds specified, there must be at least two")
	ErrTooManyThresholds = errors.New("too many threshold specifiers")
	ErrNotNumeric        = errors.New("threshold is not numeric")
)

// Thresholds is a parsed WARN:CRIT[:UNITS] specification.
type Thresholds struct {
	Warning  int
	Critical int

	// Units is the optional third segment, kept verbatim even when it
	// looks numeric. Blank segments are rejected by ParseThresholds, so
	// an empty Units always means no units segment was given.
	Units string
}

// ParseThresholds splits a colon-separated WARN:CRIT[:UNITS] spec into
// its parts, converting the warning and critical segments to integers.
func ParseThresholds(spec string) (Thresholds, error) {
	parts := strings.Split(spec, ":")
	for _, p := range parts {
		if p == "" {
			return Thresholds{}, fmt.Errorf("%w: %q", ErrBlankThreshold, spec)
		}
	}
	if len(parts) < 2 {
		return Thresholds{}, fmt.Errorf("%w: %q", ErrTooFewThresholds, spec)
	}

	warning, err := strconv.Atoi(parts[0])
	if err != nil {
		return Thresholds{}, fmt.Errorf("%w: warning %q", ErrNotNumeric, parts[0])
	}
	critical, err := strconv.Atoi(parts[1])
	if err != nil {
		return Thresholds{}, fmt.Errorf("%w: critical %q", ErrNotNumeric, parts[1])
	}
	if len(parts) > 3 {
		return Thresholds{}, fmt.Errorf("%w: %q", ErrTooManyThresholds, spec)
	}

	t := Thresholds{Warning: warning, Critical: critical}
	if len(parts) == 3 {
		t.Units = parts[2]
	}
	return t, nil
}
