package gravlens

import (
	"fmt"
	"math"
)

// Disk is the accretion disk: an emissive annulus in the equatorial
// (y=0) plane, graded by a thin-disk temperature profile.
type Disk struct {
	InnerR      Real // m, must exceed the horizon
	OuterR      Real // m
	Thickness   Real // m, half-extent above/below the plane
	Temperature Real // K, base temperature scale T0
}

// NewDisk validates the disk geometry against the hole it orbits.
func NewDisk(inner, outer, thickness, temperature, rs Real) (Disk, error) {
	if rs <= 0 {
		return Disk{}, fmt.Errorf("schwarzschild radius must be positive, got %g", rs)
	}
	if inner <= rs {
		return Disk{}, fmt.Errorf("disk inner radius %g must lie outside the horizon %g", inner, rs)
	}
	if outer <= inner {
		return Disk{}, fmt.Errorf("disk outer radius %g must exceed inner radius %g", outer, inner)
	}
	if thickness < 0 {
		return Disk{}, fmt.Errorf("disk thickness must be non-negative, got %g", thickness)
	}
	if temperature <= 0 {
		return Disk{}, fmt.Errorf("disk temperature must be positive, got %g", temperature)
	}
	return Disk{InnerR: inner, OuterR: outer, Thickness: thickness, Temperature: temperature}, nil
}

// DefaultDisk mirrors the stock Sagittarius A* setup: annulus from 3rs
// to 20rs, 50000 K base temperature.
func DefaultDisk(rs Real) Disk {
	return Disk{
		InnerR:      3 * rs,
		OuterR:      20 * rs,
		Thickness:   0.1 * rs,
		Temperature: 50000,
	}
}

// TemperatureAt evaluates the thin-disk power law T = T0*(rs/r)^0.75,
// clamped to a plausible emission range.
func (d Disk) TemperatureAt(r, rs Real) Real {
	if r <= 0 {
		return tempMin
	}
	t := d.Temperature * math.Pow(rs/r, 0.75)
	return clamp(t, tempMin, tempMax)
}
