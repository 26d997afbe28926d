package biquad

import (
	"math/cmplx"
	"testing"
)

func TestPoles_SecondOrder(t *testing.T) {
	p1 := complex(0.72, 0.19)
	p2 := cmplx.Conj(p1)

	c := Coefficients{
		B0: 2.3,
		B1: -1.1,
		B2: 0.4,
		A1: -real(p1 + p2),
		A2: real(p1 * p2),
	}

	if got := c.Poles(); !unorderedRootsClose(got, p1, p2, 1e-12) {
		t.Fatalf("unexpected poles: got=%v want={%v,%v}", got, p1, p2)
	}
}

func TestPoles_FirstOrder(t *testing.T) {
	c := Coefficients{B0: 1.0, B1: -0.3, A1: -0.8}

	if got := c.Poles(); !unorderedRootsClose(got, complex(0.8, 0), 0, 1e-12) {
		t.Fatalf("unexpected first-order poles: %v", got)
	}
}

func TestStable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{"identity", Identity, true},
		{"lowpassish", lowpassish, true},
		{"pole on unit circle", Coefficients{B0: 1, A2: 1}, false},
		{"pole outside", Coefficients{B0: 1, A1: -2.1, A2: 1.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Stable(); got != tt.want {
				t.Fatalf("Stable()=%v, want %v (poles %v)", got, tt.want, tt.c.Poles())
			}
		})
	}
}

func unorderedRootsClose(got [2]complex128, want1, want2 complex128, tol float64) bool {
	return (rootsClose(got[0], want1, tol) && rootsClose(got[1], want2, tol)) ||
		(rootsClose(got[0], want2, tol) && rootsClose(got[1], want1, tol))
}

func rootsClose(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}
