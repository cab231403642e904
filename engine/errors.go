package engine

import (
	"fmt"
	"sort"
	"strings"
)

// MultiError aggregates one failure per target that Learn could not
// satisfy. Modeled on wayneeseguin/graft's MultiError shape, stripped
// of its ANSI terminal coloring and log-package
// coupling since this engine has no CLI output surface.
type MultiError struct {
	Errors []error
}

// Error renders every aggregated error, sorted for deterministic
// output.
func (e MultiError) Error() string {
	lines := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		lines = append(lines, fmt.Sprintf(" - %s", err))
	}
	sort.Strings(lines)
	return fmt.Sprintf("%d target(s) failed to synthesize:\n%s", len(e.Errors), strings.Join(lines, "\n"))
}

// Count returns the number of aggregated errors.
func (e *MultiError) Count() int { return len(e.Errors) }

// Append adds err to the aggregate, flattening a nested MultiError and
// ignoring nil.
func (e *MultiError) Append(err error) {
	if err == nil {
		return
	}
	if nested, ok := err.(MultiError); ok {
		e.Errors = append(e.Errors, nested.Errors...)
		return
	}
	e.Errors = append(e.Errors, err)
}
