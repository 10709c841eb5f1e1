package gravlens

import "math"

// Ray is one light ray's instantaneous state on its null geodesic.
// The polar axis is Y: theta is measured from +y, phi runs in the x/z
// plane, so the accretion disk lives at y=0. The Cartesian mirror is
// kept in sync with the spherical coordinates after every step for the
// geometric termination tests.
//
// E and L are fixed at initialization; under exact integration they
// never change, so their drift is the main numerical-error signal.
type Ray struct {
	X, Y, Z Real // Cartesian mirror

	R, Theta, Phi    Real // spherical position
	Dr, Dtheta, Dphi Real // derivatives w.r.t. the affine parameter

	E, L Real // conserved energy and angular momentum

	// Last k1 second derivatives, kept for diagnostics only.
	D2r, D2phi Real
}

// newRay builds a ray state from a camera position and a unit
// direction, fixing the conserved quantities via the null constraint.
// A start at or inside the horizon yields a state the classifier
// reports as captured on its first check.
func newRay(pos, dir Vec3, rs Real) Ray {
	r := pos.Len()
	ray := Ray{X: pos.X, Y: pos.Y, Z: pos.Z, R: r}
	if r <= rs || r == 0 {
		return ray
	}

	ray.Theta = math.Acos(clamp(pos.Y/r, -1, 1))
	ray.Phi = math.Atan2(pos.Z, pos.X)

	st, ct := math.Sincos(ray.Theta)
	sp, cp := math.Sincos(ray.Phi)

	// Local spherical basis at pos.
	er := Vec3{st * cp, ct, st * sp}
	et := Vec3{ct * cp, -st, ct * sp}
	ep := Vec3{-sp, 0, cp}

	ss := st
	if ss < sinThetaMin {
		ss = sinThetaMin
	}

	ray.Dr = dir.Dot(er)
	ray.Dtheta = dir.Dot(et) / r
	ray.Dphi = dir.Dot(ep) / (r * ss)

	ray.L = r * r * st * ray.Dphi
	f := 1 - rs/r
	dtdl := math.Sqrt(ray.Dr*ray.Dr/f + r*r*(ray.Dtheta*ray.Dtheta+st*st*ray.Dphi*ray.Dphi))
	ray.E = f * dtdl
	return ray
}

// cart returns the Cartesian mirror as a vector.
func (ray *Ray) cart() Vec3 { return Vec3{ray.X, ray.Y, ray.Z} }

// syncCartesian recomputes the Cartesian mirror from the spherical
// state.
func (ray *Ray) syncCartesian() {
	st, ct := math.Sincos(ray.Theta)
	sp, cp := math.Sincos(ray.Phi)
	ray.X = ray.R * st * cp
	ray.Y = ray.R * ct
	ray.Z = ray.R * st * sp
}

// dirCart converts the coordinate derivatives into a unit Cartesian
// propagation direction, used when shading the background.
func (ray *Ray) dirCart() Vec3 {
	st, ct := math.Sincos(ray.Theta)
	sp, cp := math.Sincos(ray.Phi)
	r := ray.R
	v := Vec3{
		st*cp*ray.Dr + ct*cp*r*ray.Dtheta - sp*r*st*ray.Dphi,
		ct*ray.Dr - st*r*ray.Dtheta,
		st*sp*ray.Dr + ct*sp*r*ray.Dtheta + cp*r*st*ray.Dphi,
	}
	return v.Norm()
}
