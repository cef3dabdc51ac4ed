package orrery

import "github.com/pkg/errors"

// Failure taxonomy. Callers may match with errors.Cause (or errors.Is) since
// all failures returned by this package wrap one of these sentinels.
var (
	// ErrInvalidInput flags non-finite or out-of-domain elements, times or
	// solver parameters (e.g. an eccentricity at or above 1).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNonConvergence flags a Kepler solve which exceeded its iteration cap.
	ErrNonConvergence = errors.New("kepler solver did not converge")
	// ErrDegenerateResult flags a non-finite position computed from finite inputs.
	ErrDegenerateResult = errors.New("degenerate result")
)
