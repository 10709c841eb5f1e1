package gravlens

import "math"

// Status is where a marching ray ended up.
type Status int

const (
	StatusAlive Status = iota
	StatusCaptured
	StatusDiskHit
	StatusEscaped
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusCaptured:
		return "captured"
	case StatusDiskHit:
		return "disk_hit"
	case StatusEscaped:
		return "escaped"
	case StatusExhausted:
		return "exhausted"
	}
	return "unknown"
}

// classify runs the per-step termination tests in priority order:
// horizon capture first (a ray past the horizon cannot also hit the
// disk), then the equatorial-plane crossing, then escape. prev is the
// Cartesian position before the last step. For a disk hit the second
// return value is the crossing point in the y=0 plane.
func classify(ray *Ray, prev Vec3, rs, escapeR Real, disk Disk) (Status, Vec3) {
	if ray.R <= rs {
		return StatusCaptured, Vec3{}
	}
	if hit, ok := diskCrossing(prev, ray.cart(), disk); ok {
		return StatusDiskHit, hit
	}
	if ray.R > escapeR {
		return StatusEscaped, Vec3{}
	}
	return StatusAlive, Vec3{}
}

// diskCrossing tests whether the segment prev->cur crosses the
// equatorial plane inside the disk annulus, returning the interpolated
// crossing point when it does.
func diskCrossing(prev, cur Vec3, disk Disk) (Vec3, bool) {
	if (prev.Y > 0) == (cur.Y > 0) {
		return Vec3{}, false
	}
	dy := prev.Y - cur.Y
	if dy == 0 {
		return Vec3{}, false
	}
	t := prev.Y / dy
	hit := Vec3{
		X: prev.X + (cur.X-prev.X)*t,
		Z: prev.Z + (cur.Z-prev.Z)*t,
	}
	rd := math.Sqrt(hit.X*hit.X + hit.Z*hit.Z)
	if rd < disk.InnerR || rd > disk.OuterR {
		return Vec3{}, false
	}
	return hit, true
}
