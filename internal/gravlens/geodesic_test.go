package gravlens

import (
	"math"
	"testing"
)

func TestRHSRadial(t *testing.T) {
	// Pure radial motion: both angular accelerations vanish exactly,
	// and the radial one reduces to (rs/2r^2) dr^2 (1/f - 1).
	ray := newRay(Vec3{X: 10}, Vec3{X: -1}, 1)
	d := geodesicRHS(rayState{ray.R, ray.Theta, ray.Dr, ray.Dtheta, ray.Dphi}, ray.E, 1)

	if d.d2theta != 0 || d.d2phi != 0 {
		t.Fatalf("angular acceleration nonzero: d2theta=%g d2phi=%g", d.d2theta, d.d2phi)
	}
	want := 1.0/180 - 1.0/200
	if !nearly(d.d2r, want, 1e-15) {
		t.Fatalf("d2r = %.15g, want %.15g", d.d2r, want)
	}
}

func TestRHSEquatorial(t *testing.T) {
	// In the equatorial plane with dtheta=0 the theta equation stays
	// quiet and phi sees only the Coriolis-like -2 dr dphi / r term.
	s := rayState{r: 10, theta: math.Pi / 2, dr: -0.5, dtheta: 0, dphi: 0.05}
	d := geodesicRHS(s, 0.9, 1)

	if !nearly(d.d2theta, 0, 1e-15) {
		t.Fatalf("d2theta = %g, want ~0", d.d2theta)
	}
	if !nearly(d.d2phi, -2*(-0.5)*0.05/10, 1e-15) {
		t.Fatalf("d2phi = %g", d.d2phi)
	}
}

func TestRHSPoleClamp(t *testing.T) {
	// Right on the pole sin(theta) is zero; the clamp must keep the
	// cot(theta) term in the phi equation finite.
	for _, theta := range []Real{0, 1e-9, math.Pi, math.Pi - 1e-9} {
		s := rayState{r: 10, theta: theta, dr: -0.5, dtheta: 0.03, dphi: 0.02}
		d := geodesicRHS(s, 0.9, 1)
		if !isFinite(d.d2r) || !isFinite(d.d2theta) || !isFinite(d.d2phi) {
			t.Fatalf("theta=%g: non-finite derivative %+v", theta, d)
		}
	}
}

func TestAdvance(t *testing.T) {
	s := rayState{r: 10, theta: 1, dr: -1, dtheta: 0.1, dphi: 0.2}
	d := deriv{dr: -1, dtheta: 0.1, dphi: 0.2, d2r: 2, d2theta: 3, d2phi: 4}
	got := s.advance(d, 0.5)

	want := rayState{r: 9.5, theta: 1.05, dr: 0, dtheta: 1.6, dphi: 2.2}
	for _, c := range [][2]Real{
		{got.r, want.r}, {got.theta, want.theta}, {got.dr, want.dr},
		{got.dtheta, want.dtheta}, {got.dphi, want.dphi},
	} {
		if !nearly(c[0], c[1], 1e-15) {
			t.Fatalf("advance = %+v, want %+v", got, want)
		}
	}
}
