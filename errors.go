package kairos

import (
	"errors"
	"fmt"
)

// MatchError is returned by strict construction when the supplied
// component set does not exactly describe one period at the requested
// granularity — because fields are missing, extra fields were
// supplied, or the calendar normalized the values away (February 30).
//
// The library never silently corrects the input; the error records
// which fields were expected, which were supplied, and which did not
// survive the calendar's matching.
type MatchError struct {
	Granularity Granularity
	Expected    FieldSet
	Supplied    FieldSet
	Mismatched  FieldSet
}

func (e *MatchError) Error() string {
	switch {
	case e.Mismatched != 0:
		return fmt.Sprintf("kairos: no %s matches the supplied components (fields %s were normalized away)",
			e.Granularity, e.Mismatched)
	case e.Supplied&^e.Expected != 0:
		return fmt.Sprintf("kairos: over-specified %s: supplied %s, expected at most %s",
			e.Granularity, e.Supplied, e.Expected)
	default:
		return fmt.Sprintf("kairos: under-specified %s: supplied %s, expected %s",
			e.Granularity, e.Supplied, e.Expected)
	}
}

// IsMatch checks whether an error is a MatchError and returns it.
func IsMatch(err error) (*MatchError, bool) {
	var m *MatchError
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}

// precondition panics with a module-prefixed message when cond is
// false. Used for caller misuse (reversed interval bounds, non-positive
// clock rates) — bugs to fix, not conditions to handle.
func precondition(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("github.com/blockberries/kairos: "+format, args...))
	}
}
