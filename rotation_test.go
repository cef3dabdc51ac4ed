package orrery

import (
	"math"
	"testing"
)

func TestR1R2R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r2 := R2(x)
	r3 := R3(x)
	// Test items equal to 1.
	if r1.At(0, 0) != r2.At(1, 1) || r1.At(0, 0) != r3.At(2, 2) || r3.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R2.At(1, 1) = R3.At(2, 2) = 1\n")
	}
	// Test items equal to 0.
	if r1.At(0, 1) != r1.At(0, 2) || r1.At(1, 0) != r1.At(2, 0) || r1.At(0, 1) != 0 {
		t.Fatal("misplaced zeros in R1\n")
	}
	if r2.At(0, 1) != r2.At(1, 2) || r2.At(1, 0) != r2.At(1, 2) || r2.At(1, 2) != 0 {
		t.Fatal("misplaced zeros in R2\n")
	}
	if r3.At(2, 0) != r3.At(2, 1) || r3.At(0, 2) != r3.At(1, 2) || r3.At(1, 2) != 0 {
		t.Fatal("misplaced zeros in R3\n")
	}
	// Test R1.
	if r1.At(1, 1) != r1.At(2, 2) || r1.At(2, 2) != c {
		t.Fatal("expected R1 cosines misplaced\n")
	}
	if r1.At(2, 1) != -r1.At(1, 2) || r1.At(1, 2) != s {
		t.Fatal("expected R1 sines misplaced\n")
	}
	// Test R2.
	if r2.At(0, 0) != r2.At(2, 2) || r2.At(2, 2) != c {
		t.Fatal("expected R2 cosines misplaced\n")
	}
	if r2.At(2, 0) != -r2.At(0, 2) || r2.At(2, 0) != s {
		t.Fatal("expected R2 sines misplaced\n")
	}
	// Test R3.
	if r3.At(1, 1) != r3.At(0, 0) || r3.At(0, 0) != c {
		t.Fatal("expected R3 cosines misplaced\n")
	}
	if r3.At(0, 1) != -r3.At(1, 0) || r3.At(0, 1) != s {
		t.Fatal("expected R3 sines misplaced\n")
	}
}

func TestPQW2EclipticIdentity(t *testing.T) {
	v := []float64{1.5, -2.25, 3}
	if out := PQW2Ecliptic(0, 0, 0, v); !vectorsEqual(v, out) {
		t.Fatalf("identity rotation moved the vector: %+v", out)
	}
}

func TestPQW2EclipticNormPreserved(t *testing.T) {
	v := []float64{0.3, 1.7, 0}
	for _, angles := range [][3]float64{
		{Deg2rad(87.87), Deg2rad(53.38), Deg2rad(227.89)},
		{Deg2rad(7.005), Deg2rad(29.124), Deg2rad(48.331)},
		{Deg2rad(0.00005), Deg2rad(114.208), Deg2rad(348.739)},
	} {
		out := PQW2Ecliptic(angles[0], angles[1], angles[2], v)
		if math.Abs(Norm(out)-Norm(v)) > 1e-12 {
			t.Fatalf("rotation changed the norm: %f vs %f", Norm(out), Norm(v))
		}
	}
}

func TestPQW2EclipticPlanarOrbit(t *testing.T) {
	// Zero inclination keeps the orbit in the ecliptic plane and reduces the
	// sequence to a single in-plane rotation by ω+Ω.
	ω, Ω := Deg2rad(40), Deg2rad(30)
	out := PQW2Ecliptic(0, ω, Ω, []float64{1, 0, 0})
	s, c := math.Sincos(ω + Ω)
	if !vectorsEqual([]float64{c, s, 0}, out) {
		t.Fatalf("planar rotation wrong: %+v", out)
	}
}
