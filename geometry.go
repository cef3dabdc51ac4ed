package orrery

import (
	"math"

	"github.com/pkg/errors"
)

// RelativePosition returns the vector from body A to body B at the provided
// Julian Day, i.e. Position(b) - Position(a). Re-centering a view on a body
// other than the central star is a vector subtraction away.
func RelativePosition(a, b Elements, jd float64) ([]float64, error) {
	Ra, err := Position(a, jd)
	if err != nil {
		return nil, err
	}
	Rb, err := Position(b, jd)
	if err != nil {
		return nil, err
	}
	return []float64{Rb[0] - Ra[0], Rb[1] - Ra[1], Rb[2] - Ra[2]}, nil
}

// GeneratePath samples the static ellipse of an orbit into segments+1 points,
// parametrized by the in-plane angle θ over [0, 2π] rather than by time. The
// first point is repeated verbatim at the end so the polyline closes exactly.
// At least 3 segments are required. Origin bodies yield a degenerate loop of
// origin points.
func GeneratePath(el Elements, segments int) ([][]float64, error) {
	if err := el.Validate(); err != nil {
		return nil, err
	}
	if segments < 3 {
		return nil, errors.Wrapf(ErrInvalidInput, "need at least 3 segments, got %d", segments)
	}
	path := make([][]float64, segments+1)
	if el.AtOrigin() {
		for k := range path {
			path[k] = origin()
		}
		return path, nil
	}
	a, e := el.SemiMajorAxis, el.Eccentricity
	b := el.SemiMinorAxis()
	i := Deg2rad(el.Inclination)
	ω := Deg2rad(el.ArgPeriapsis)
	Ω := Deg2rad(el.Node)
	for k := 0; k < segments; k++ {
		θ := 2 * math.Pi * float64(k) / float64(segments)
		sθ, cθ := math.Sincos(θ)
		// Ellipse with the focus (the central star) at the origin: θ=0 is periapsis.
		pt := PQW2Ecliptic(i, ω, Ω, []float64{a*cθ - a*e, b * sθ, 0})
		if !finite(pt) {
			return nil, errors.Wrapf(ErrDegenerateResult, "non-finite path sample %d for %s", k, el)
		}
		path[k] = pt
	}
	path[segments] = []float64{path[0][0], path[0][1], path[0][2]}
	return path, nil
}

// Perihelion returns the point of closest approach to the central star, i.e.
// the path sample at θ=0: (a·(1-e), 0, 0) in the orbital plane, rotated into
// the ecliptic frame.
func Perihelion(el Elements) ([]float64, error) {
	if err := el.Validate(); err != nil {
		return nil, err
	}
	if el.AtOrigin() {
		return origin(), nil
	}
	pt := PQW2Ecliptic(Deg2rad(el.Inclination), Deg2rad(el.ArgPeriapsis), Deg2rad(el.Node),
		[]float64{el.Periapsis(), 0, 0})
	if !finite(pt) {
		return nil, errors.Wrapf(ErrDegenerateResult, "non-finite perihelion for %s", el)
	}
	return pt, nil
}
