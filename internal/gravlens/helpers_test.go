package gravlens

import "math"

func nearly(a, b, tol Real) bool { return math.Abs(a-b) <= tol }

// testScene builds a unit-scale frame (rs = 1) so tolerances are easy
// to reason about.
func testScene(width, height int) *Scene {
	hole := BlackHole{Mass: 1, Rs: 1}
	disk := Disk{InnerR: 3, OuterR: 20, Thickness: 0.1, Temperature: 50000}
	params := Params{DLambda: 0.01, EscapeR: 100, MaxSteps: 20000, MaxStepsMoving: 400}
	cam := NewCamera(Vec3{X: 10, Y: 1}, Vec3{}, 60, width, height, false)
	return NewScene(cam, hole, disk, params, 0)
}

// launchEquatorial builds a ray starting on the +x axis at radius r0 in
// the equatorial plane, aimed so its impact parameter L/E equals b.
func launchEquatorial(r0, b, rs Real) Ray {
	f := 1 - rs/r0
	s := math.Sqrt(b * b * f / (r0*r0 - b*b*f*f + b*b*f))
	c := math.Sqrt(1 - s*s)
	return newRay(Vec3{X: r0}, Vec3{X: -c, Z: s}, rs)
}
