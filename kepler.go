package orrery

import (
	"math"

	"github.com/gonum/floats"
	"github.com/pkg/errors"
)

const (
	// DefaultTolerance is the convergence tolerance of the Kepler solver, in radians.
	DefaultTolerance = 1e-8
	// maxKeplerIterations bounds the Newton-Raphson loop. Elliptical orbits with
	// a sane tolerance converge in under ten iterations; the cap only trips on
	// adversarial eccentricities.
	maxKeplerIterations = 50
)

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E via Newton-Raphson iteration. Mean anomaly and the returned
// eccentric anomaly are in radians. Only closed elliptical orbits are
// supported: e must be in [0, 1).
func SolveKepler(meanAnomaly, e, tolerance float64) (float64, error) {
	if math.IsNaN(meanAnomaly) || math.IsInf(meanAnomaly, 0) {
		return 0, errors.Wrap(ErrInvalidInput, "non-finite mean anomaly")
	}
	if e < 0 || e >= 1 || floats.EqualWithinAbs(e, 1, eccentricityε) {
		return 0, errors.Wrapf(ErrInvalidInput, "eccentricity %v not in [0,1)", e)
	}
	if tolerance <= 0 || math.IsNaN(tolerance) {
		return 0, errors.Wrapf(ErrInvalidInput, "tolerance %v must be positive", tolerance)
	}
	E := meanAnomaly
	for iter := 0; iter < maxKeplerIterations; iter++ {
		ΔE := (meanAnomaly - E + e*math.Sin(E)) / (1 - e*math.Cos(E))
		E += ΔE
		if math.Abs(ΔE) <= tolerance {
			return E, nil
		}
	}
	return 0, errors.Wrapf(ErrNonConvergence, "M=%v e=%v after %d iterations", meanAnomaly, e, maxKeplerIterations)
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly ν, both in
// radians. Uses the half-angle atan2 form to stay defined at E = π.
func TrueAnomaly(E, e float64) float64 {
	sE2, cE2 := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sE2, math.Sqrt(1-e)*cE2)
}
