package orrery

import (
	"math"

	"github.com/pkg/errors"
)

// origin returns a fresh origin vector.
func origin() []float64 {
	return []float64{0, 0, 0}
}

// Position computes the heliocentric position of a body at the provided
// Julian Day from its orbital elements. The result is expressed in the same
// length unit as the semi-major axis. The function is pure: identical inputs
// yield bit-identical output.
func Position(el Elements, jd float64) ([]float64, error) {
	if err := el.Validate(); err != nil {
		return nil, err
	}
	if el.AtOrigin() {
		return origin(), nil
	}
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return nil, errors.Wrap(ErrInvalidInput, "non-finite julian day")
	}
	M := Deg2rad(el.MeanAnomalyAt(jd))
	E, err := SolveKepler(M, el.Eccentricity, DefaultTolerance)
	if err != nil {
		return nil, err
	}
	r := el.SemiMajorAxis * (1 - el.Eccentricity*math.Cos(E))
	if r < 0 || math.IsNaN(r) {
		return nil, errors.Wrapf(ErrDegenerateResult, "heliocentric distance %v", r)
	}
	ν := TrueAnomaly(E, el.Eccentricity)
	sν, cν := math.Sincos(ν)
	R := PQW2Ecliptic(Deg2rad(el.Inclination), Deg2rad(el.ArgPeriapsis), Deg2rad(el.Node),
		[]float64{r * cν, r * sν, 0})
	if !finite(R) {
		return nil, errors.Wrapf(ErrDegenerateResult, "non-finite position for %s at jd=%v", el, jd)
	}
	return R, nil
}
