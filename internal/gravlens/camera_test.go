package gravlens

import (
	"math"
	"testing"
)

func TestNewCameraBasis(t *testing.T) {
	cam := NewCamera(Vec3{X: 10, Y: 3, Z: -2}, Vec3{}, 60, 640, 480, false)

	for name, v := range map[string]Vec3{
		"right": cam.Right, "up": cam.Up, "forward": cam.Forward,
	} {
		if !nearly(v.Len(), 1, 1e-12) {
			t.Fatalf("%s not unit length: %g", name, v.Len())
		}
	}
	if !nearly(cam.Right.Dot(cam.Up), 0, 1e-12) ||
		!nearly(cam.Right.Dot(cam.Forward), 0, 1e-12) ||
		!nearly(cam.Up.Dot(cam.Forward), 0, 1e-12) {
		t.Fatal("basis not orthogonal")
	}
	want := Vec3{X: -10, Y: -3, Z: 2}.Norm()
	if cam.Forward.Sub(want).Len() > 1e-12 {
		t.Fatalf("forward = %v, want %v", cam.Forward, want)
	}
}

func TestNewCameraPoleFallback(t *testing.T) {
	// Looking straight down the world up axis: the right vector falls
	// back to x.
	cam := NewCamera(Vec3{Y: 10}, Vec3{}, 60, 100, 100, false)
	if cam.Right.Sub(Vec3{X: 1}).Len() > 1e-12 {
		t.Fatalf("right = %v, want +x", cam.Right)
	}
	if !nearly(cam.Up.Len(), 1, 1e-12) || !nearly(cam.Up.Dot(cam.Forward), 0, 1e-12) {
		t.Fatal("up not rebuilt orthonormal")
	}
}

func TestRayDirCenterAndCorners(t *testing.T) {
	cam := NewCamera(Vec3{X: 10}, Vec3{}, 60, 101, 101, false)

	// Odd raster: the middle pixel's center is exactly on axis.
	center := cam.rayDir(50, 50)
	if center.Sub(cam.Forward).Len() > 1e-12 {
		t.Fatalf("center ray %v, want forward %v", center, cam.Forward)
	}

	// Top-left leans toward -right (u<0) and +up (v>0).
	tl := cam.rayDir(0, 0)
	if tl.Dot(cam.Right) >= 0 || tl.Dot(cam.Up) <= 0 {
		t.Fatalf("top-left ray leans wrong: u=%g v=%g", tl.Dot(cam.Right), tl.Dot(cam.Up))
	}
	// Bottom-right is the mirror image.
	br := cam.rayDir(100, 100)
	if br.Dot(cam.Right) <= 0 || br.Dot(cam.Up) >= 0 {
		t.Fatalf("bottom-right ray leans wrong: u=%g v=%g", br.Dot(cam.Right), br.Dot(cam.Up))
	}
	// The two are symmetric about the axis.
	if !nearly(tl.Dot(cam.Right), -br.Dot(cam.Right), 1e-12) {
		t.Fatal("corner rays not symmetric")
	}
}

func TestOrbitPresets(t *testing.T) {
	o := DefaultOrbit()
	if !nearly(o.Radius, DefaultCamRadius, 1) || !nearly(o.Elevation, math.Pi/2, 1e-12) {
		t.Fatalf("default orbit %+v", o)
	}

	o.Preset(PresetPolar)
	if o.Radius != 8.0e10 || !nearly(o.Elevation, 0.3, 1e-12) {
		t.Fatalf("polar preset %+v", o)
	}

	o.Preset(PresetCloseUp)
	if o.Radius != 3.0e10 || !nearly(o.Azimuth, math.Pi/4, 1e-12) {
		t.Fatalf("close-up preset %+v", o)
	}

	// Preset wraps: presetCount maps back to equatorial.
	o.Preset(presetCount)
	if !nearly(o.Radius, DefaultCamRadius, 1) {
		t.Fatalf("wrapped preset %+v", o)
	}
}

func TestOrbitDragClampsElevation(t *testing.T) {
	o := DefaultOrbit()
	o.Drag(0, 100)
	if o.Elevation != 0.01 {
		t.Fatalf("elevation = %g, want clamped to 0.01", o.Elevation)
	}
	o.Drag(0, -200)
	if !nearly(o.Elevation, math.Pi-0.01, 1e-12) {
		t.Fatalf("elevation = %g, want clamped to pi-0.01", o.Elevation)
	}
	o.Drag(0.5, 0)
	if !nearly(o.Azimuth, 0.5, 1e-12) {
		t.Fatalf("azimuth = %g", o.Azimuth)
	}
}

func TestOrbitZoomClampsRadius(t *testing.T) {
	o := DefaultOrbit()
	o.Zoom(1e13)
	if o.Radius != o.MinRadius {
		t.Fatalf("radius = %g, want min %g", o.Radius, o.MinRadius)
	}
	o.Zoom(-1e13)
	if o.Radius != o.MaxRadius {
		t.Fatalf("radius = %g, want max %g", o.Radius, o.MaxRadius)
	}
}

func TestOrbitPosition(t *testing.T) {
	o := Orbit{Radius: 10, Azimuth: 0, Elevation: math.Pi / 2, MinRadius: 1, MaxRadius: 100}
	p := o.Position()
	if !nearly(p.X, 10, 1e-9) || !nearly(p.Y, 0, 1e-9) || !nearly(p.Z, 0, 1e-9) {
		t.Fatalf("equatorial position %v, want (10,0,0)", p)
	}

	o.Elevation = 0.02
	p = o.Position()
	if p.Y < 9.9 {
		t.Fatalf("near-pole position %v, want y close to radius", p)
	}
	if !nearly(p.Len(), 10, 1e-9) {
		t.Fatalf("|position| = %g, want 10", p.Len())
	}
}
