package gravlens

import "math"

// rayState is the subset of Ray the geodesic equations read. phi is
// cyclic and does not appear on the right-hand side.
type rayState struct {
	r, theta         Real
	dr, dtheta, dphi Real
}

// deriv is one right-hand-side evaluation of the geodesic ODE: the
// first derivatives restated plus the second derivatives.
type deriv struct {
	dr, dtheta, dphi    Real
	d2r, d2theta, d2phi Real
}

// geodesicRHS evaluates the Schwarzschild null-geodesic equations at s.
// It is a pure function and the single physics kernel shared by all
// four RK4 stages. dt/dlambda is recovered from the conserved energy as
// E/f. sin(theta) is clamped to sinThetaMin in magnitude before the
// division in the phi equation; without the clamp a ray passing a pole
// would emit Inf/NaN.
func geodesicRHS(s rayState, e, rs Real) deriv {
	f := 1 - rs/s.r
	dtdl := e / f

	st, ct := math.Sincos(s.theta)
	ss := st
	if ss > -sinThetaMin && ss < sinThetaMin {
		if ss < 0 {
			ss = -sinThetaMin
		} else {
			ss = sinThetaMin
		}
	}

	r2 := s.r * s.r
	d := deriv{dr: s.dr, dtheta: s.dtheta, dphi: s.dphi}
	d.d2r = -(rs/(2*r2))*f*dtdl*dtdl +
		(rs/(2*r2*f))*s.dr*s.dr +
		s.r*(s.dtheta*s.dtheta+st*st*s.dphi*s.dphi)
	d.d2theta = -2*s.dr*s.dtheta/s.r + st*ct*s.dphi*s.dphi
	d.d2phi = -2*s.dr*s.dphi/s.r - 2*(ct/ss)*s.dtheta*s.dphi
	return d
}

// advance offsets a state along a derivative, used to build the RK4
// midpoint and endpoint stages.
func (s rayState) advance(d deriv, h Real) rayState {
	return rayState{
		r:      s.r + d.dr*h,
		theta:  s.theta + d.dtheta*h,
		dr:     s.dr + d.d2r*h,
		dtheta: s.dtheta + d.d2theta*h,
		dphi:   s.dphi + d.d2phi*h,
	}
}
