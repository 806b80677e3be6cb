// Package checks wires concrete monitoring checks to the plugin core
// and runs them under a single catch-and-abort failure policy.
package checks

import "checkplug/pkg/plugin"

// Check is one discrete evaluation that records its outcome on the
// run's Result.
type Check interface {
	// Name identifies the check in debug logs and failure handling.
	Name() string

	// Run evaluates the check and records outcomes on res. A returned
	// error means the check itself could not complete; it carries no
	// severity of its own.
	Run(res *plugin.Result) error
}

// Registry holds checks in registration order.
type Registry struct {
	checks []Check
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{
		checks: make([]Check, 0),
	}
}

// Register adds a check to the registry.
func (r *Registry) Register(c Check) {
	r.checks = append(r.checks, c)
}

// Checks returns all registered checks.
func (r *Registry) Checks() []Check {
	return r.checks
}
