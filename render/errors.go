package render

import "fmt"

// ErrorKind discriminates rendering failures.
type ErrorKind string

const (
	// DepthExceeded means the expression tree ran past the configured
	// recursion ceiling, usually a cyclic or pathological input.
	DepthExceeded ErrorKind = "depth_exceeded"

	// UnresolvedProperty means a restriction referenced a property with no
	// resolvable label, so no phrase could be built for it.
	UnresolvedProperty ErrorKind = "unresolved_property"
)

// Error is a typed, recoverable rendering failure. Batch callers skip the
// offending class and continue; definition composition degrades per
// restriction instead of failing the whole class.
type Error struct {
	Kind        ErrorKind
	PropertyIRI string
	Depth       int
}

func (e *Error) Error() string {
	switch e.Kind {
	case DepthExceeded:
		return fmt.Sprintf("rendering: expression depth exceeded limit %d", e.Depth)
	case UnresolvedProperty:
		return fmt.Sprintf("rendering: property %s has no resolvable label", e.PropertyIRI)
	default:
		return fmt.Sprintf("rendering: %s", e.Kind)
	}
}

// IsDepthExceeded reports whether err is a depth-ceiling failure.
func IsDepthExceeded(err error) bool {
	re, ok := err.(*Error)
	return ok && re.Kind == DepthExceeded
}

// IsUnresolvedProperty reports whether err is a missing-label failure.
func IsUnresolvedProperty(err error) bool {
	re, ok := err.(*Error)
	return ok && re.Kind == UnresolvedProperty
}
