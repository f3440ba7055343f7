package reasoning

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse marks a backend response that was present but too short
// to parse meaningfully. Fatal to the decision; never retried.
var ErrEmptyResponse = errors.New("backend returned empty or unusable response")

// ErrNoEligibleZones marks a selection attempt over an empty eligible set
// (item exceeds every zone capacity).
var ErrNoEligibleZones = errors.New("no eligible zones: item exceeds every zone capacity")

// BackendError wraps a transport, status, or protocol failure from the
// external reasoning backend. Surfaced verbatim; no automatic retry.
type BackendError struct {
	Backend string
	Kind    string // transport, status, decode
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s %s error: %v", e.Backend, e.Kind, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
