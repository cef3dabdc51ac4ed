package orrery

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
	"github.com/pkg/errors"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
)

// Elements holds the classical orbital elements of one body. Angles are in
// degrees, the semi-major axis in astronomical units and the period in days.
// A zero semi-major axis pins the body at the system origin (the central
// star), regardless of the remaining fields.
type Elements struct {
	SemiMajorAxis float64 // a
	Eccentricity  float64 // e, in [0, 1)
	Inclination   float64 // i
	Node          float64 // Ω, longitude of the ascending node
	ArgPeriapsis  float64 // ω
	MeanAnomaly   float64 // M0 at the J2000.0 epoch
	Period        float64 // orbital period in days
}

// AtOrigin returns whether this body is pinned at the system origin.
func (el Elements) AtOrigin() bool {
	return el.SemiMajorAxis == 0
}

// Periapsis returns the distance of closest approach a·(1-e).
func (el Elements) Periapsis() float64 {
	return el.SemiMajorAxis * (1 - el.Eccentricity)
}

// Apoapsis returns the farthest distance a·(1+e).
func (el Elements) Apoapsis() float64 {
	return el.SemiMajorAxis * (1 + el.Eccentricity)
}

// SemiMinorAxis returns b = a·sqrt(1-e²).
func (el Elements) SemiMinorAxis() float64 {
	return el.SemiMajorAxis * math.Sqrt(1-el.Eccentricity*el.Eccentricity)
}

// MeanAnomalyAt returns the mean anomaly in degrees at the provided Julian
// Day, normalized to [0, 360). The normalization only helps numerical
// conditioning: the trigonometry downstream is periodic anyway.
func (el Elements) MeanAnomalyAt(jd float64) float64 {
	return normalizeDeg(el.MeanAnomaly + 360*(jd-J2000)/el.Period)
}

// Validate returns ErrInvalidInput if any field is non-finite or out of
// domain. Origin bodies (a == 0) are valid whatever their other fields hold.
func (el Elements) Validate() error {
	if el.AtOrigin() {
		// Pinned at the origin: the remaining fields are never read.
		return nil
	}
	for _, f := range []float64{el.SemiMajorAxis, el.Eccentricity, el.Inclination, el.Node, el.ArgPeriapsis, el.MeanAnomaly, el.Period} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.Wrapf(ErrInvalidInput, "non-finite element in %s", el)
		}
	}
	if el.SemiMajorAxis < 0 {
		return errors.Wrapf(ErrInvalidInput, "negative semi-major axis %v", el.SemiMajorAxis)
	}
	if el.Eccentricity < 0 || el.Eccentricity >= 1 || floats.EqualWithinAbs(el.Eccentricity, 1, eccentricityε) {
		// Parabolic and hyperbolic orbits are rejected outright, never clamped.
		return errors.Wrapf(ErrInvalidInput, "eccentricity %v not in [0,1)", el.Eccentricity)
	}
	if el.Period <= 0 {
		return errors.Wrapf(ErrInvalidInput, "non-positive period %v", el.Period)
	}
	return nil
}

// String implements the Stringer interface.
func (el Elements) String() string {
	return fmt.Sprintf("a=%.4f e=%.5f i=%.3f Ω=%.3f ω=%.3f M0=%.3f P=%.2f",
		el.SemiMajorAxis, el.Eccentricity, el.Inclination, el.Node, el.ArgPeriapsis, el.MeanAnomaly, el.Period)
}
