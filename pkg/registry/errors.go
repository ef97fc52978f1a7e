package registry

import (
	"fmt"
	"strings"
)

// Error types for the registry package
type (
	// NotFoundError signals a lookup for an agent id that is not configured.
	// It carries the known ids so callers can report what is available.
	NotFoundError struct {
		ID    string
		Known []string
	}

	// MissingURLError signals a configured entry without a url value.
	MissingURLError struct {
		ID string
	}
)

func (e *NotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown agent %q (no agents configured)", e.ID)
	}
	return fmt.Sprintf("unknown agent %q (known agents: %s)", e.ID, strings.Join(e.Known, ", "))
}

func (e *MissingURLError) Error() string {
	return fmt.Sprintf("agent %q has no url configured", e.ID)
}
