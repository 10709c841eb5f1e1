package gravlens

import "math"

// Camera is an immutable per-frame pinhole camera: position, an
// orthonormal basis, the half-field-of-view tangent and the output
// raster size. Moving selects the reduced step budget for interactive
// responsiveness.
type Camera struct {
	Position Vec3
	Right    Vec3
	Up       Vec3
	Forward  Vec3

	TanHalfFov Real
	Aspect     Real

	Width, Height int
	Moving        bool
}

// NewCamera builds a camera looking from pos at target with a vertical
// world up, falling back to the x axis when the view is (nearly)
// parallel to the pole.
func NewCamera(pos, target Vec3, fovDeg Real, width, height int, moving bool) Camera {
	forward := target.Sub(pos).Norm()
	worldUp := Vec3{0, 1, 0}
	right := forward.Cross(worldUp)
	if right.Len() < 1e-9 {
		right = Vec3{1, 0, 0}
	}
	right = right.Norm()
	up := right.Cross(forward).Norm()
	return Camera{
		Position:   pos,
		Right:      right,
		Up:         up,
		Forward:    forward,
		TanHalfFov: math.Tan(fovDeg * math.Pi / 360),
		Aspect:     Real(width) / Real(height),
		Width:      width,
		Height:     height,
		Moving:     moving,
	}
}

// rayDir returns the unit view direction through pixel (px, py),
// sampled at the pixel center. Row 0 is the top of the image.
func (c Camera) rayDir(px, py int) Vec3 {
	u := (2*(Real(px)+0.5)/Real(c.Width) - 1) * c.TanHalfFov * c.Aspect
	v := (1 - 2*(Real(py)+0.5)/Real(c.Height)) * c.TanHalfFov
	return c.Forward.Add(c.Right.Mul(u)).Add(c.Up.Mul(v)).Norm()
}

// Orbit is a target-centered orbiting camera rig: radius, azimuth and
// elevation around the hole, with the view presets from the stock
// setup.
type Orbit struct {
	Target    Vec3
	Radius    Real
	Azimuth   Real // radians
	Elevation Real // radians, clamped away from the poles
	MinRadius Real
	MaxRadius Real
}

// Orbit presets.
const (
	PresetEquatorial = iota
	PresetPolar
	PresetCloseUp
	presetCount
)

func PresetName(p int) string {
	switch p {
	case PresetEquatorial:
		return "equatorial"
	case PresetPolar:
		return "polar"
	case PresetCloseUp:
		return "close-up"
	}
	return "unknown"
}

// DefaultOrbit is the stock equatorial view of Sagittarius A*.
func DefaultOrbit() Orbit {
	o := Orbit{MinRadius: 1e10, MaxRadius: 1e12}
	o.Preset(PresetEquatorial)
	return o
}

// Preset snaps the rig to one of the canonical views.
func (o *Orbit) Preset(p int) {
	switch p % presetCount {
	case PresetPolar:
		o.Radius, o.Azimuth, o.Elevation = 8.0e10, 0, 0.3
	case PresetCloseUp:
		o.Radius, o.Azimuth, o.Elevation = 3.0e10, math.Pi/4, math.Pi/3
	default:
		o.Radius, o.Azimuth, o.Elevation = DefaultCamRadius, 0, math.Pi/2
	}
}

// Drag rotates the rig by screen-space deltas.
func (o *Orbit) Drag(dx, dy Real) {
	o.Azimuth += dx
	o.Elevation -= dy
	o.Elevation = clamp(o.Elevation, 0.01, math.Pi-0.01)
}

// Zoom moves the rig along its radius, clamped to the configured range.
func (o *Orbit) Zoom(delta Real) {
	o.Radius = clamp(o.Radius-delta, o.MinRadius, o.MaxRadius)
}

// Position converts the orbit angles to a Cartesian eye point.
func (o Orbit) Position() Vec3 {
	el := clamp(o.Elevation, 0.01, math.Pi-0.01)
	se, ce := math.Sincos(el)
	sa, ca := math.Sincos(o.Azimuth)
	return o.Target.Add(Vec3{
		o.Radius * se * ca,
		o.Radius * ce,
		o.Radius * se * sa,
	})
}

// Camera builds the per-frame camera for this rig.
func (o Orbit) Camera(fovDeg Real, width, height int, moving bool) Camera {
	return NewCamera(o.Position(), o.Target, fovDeg, width, height, moving)
}
