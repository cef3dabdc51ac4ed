package orrery

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// PQW2Ecliptic rotates a vector expressed in the orbital (perifocal) plane into
// the heliocentric ecliptic frame via the classical 3-1-3 sequence
// R3(-Ω)·R1(-i)·R3(-ω). Angles in radians.
func PQW2Ecliptic(i, ω, Ω float64, v []float64) []float64 {
	var r1r3, dcm mat64.Dense
	r1r3.Mul(R1(-i), R3(-ω))
	dcm.Mul(R3(-Ω), &r1r3)
	return MxV33(&dcm, v)
}
