// errors.go defines sentinel errors for the replacement driver.
//
// Design: sentinel errors (not error types), following the
// validate/errors.go style - callers distinguish outcomes with errors.Is,
// and any extra context is added by wrapping with fmt.Errorf at the call
// site rather than by carrying fields on a custom type.
package fuzzyreplace

import "errors"

var (
	// ErrNoChange is returned when oldFragment and newFragment are identical.
	ErrNoChange = errors.New("no change: old and new fragments are identical")
	// ErrNotFound is returned when no replacer produced a locatable candidate.
	ErrNotFound = errors.New("could not find old fragment in content")
	// ErrAmbiguous is returned when every located candidate occurred more
	// than once and replaceAll was not requested.
	ErrAmbiguous = errors.New("old fragment matches multiple locations")
)
