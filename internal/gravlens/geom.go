package gravlens

import "math"

type Real = float64

// Vec3 represents a direction or a position in 3D space.
type Vec3 struct {
	X, Y, Z Real
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vec3) Mul(s Real) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two vectors.
func (a Vec3) Dot(b Vec3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vec3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// RGB is a linear color triple used while shading.
type RGB struct {
	R, G, B Real
}

func (a RGB) Add(b RGB) RGB  { return RGB{a.R + b.R, a.G + b.G, a.B + b.B} }
func (c RGB) Mul(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }

// RGBA is one output pixel (linear, alpha always 1 after sanitizing).
type RGBA struct {
	R, G, B, A Real
}

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func clamp(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// smoothstep is the usual cubic Hermite ramp from 0 at e0 to 1 at e1.
func smoothstep(e0, e1, x Real) Real {
	t := clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}
