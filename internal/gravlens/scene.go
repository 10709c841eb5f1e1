package gravlens

// Scene bundles the read-only inputs of one frame with its output
// buffers. The parameter blocks must not be mutated while a render is
// in flight; the buffers are partitioned by pixel index so concurrent
// writes never collide.
type Scene struct {
	Camera Camera
	Hole   BlackHole
	Disk   Disk
	Params Params
	Time   Real // animation time scalar, drives turbulence and beam pulsing

	// RecordStates keeps the terminal Ray of every pixel in States,
	// indexed like the color buffer. Diagnostics only.
	RecordStates bool

	Buf    []Real // RGBA, row-major: (y*Width+x)*4 + channel
	States []Ray
}

// NewScene allocates the output buffer for one frame. Each frame owns
// its own scene; abandoning a frame is just dropping it.
func NewScene(cam Camera, hole BlackHole, disk Disk, p Params, time Real) *Scene {
	return &Scene{
		Camera: cam,
		Hole:   hole,
		Disk:   disk,
		Params: p,
		Time:   time,
		Buf:    make([]Real, cam.Width*cam.Height*4),
	}
}

// idx returns the flat buffer offset of pixel (x, y).
func (sc *Scene) idx(x, y int) int {
	return (y*sc.Camera.Width + x) * 4
}

// At reads back one pixel.
func (sc *Scene) At(x, y int) RGBA {
	i := sc.idx(x, y)
	return RGBA{sc.Buf[i+ChR], sc.Buf[i+ChG], sc.Buf[i+ChB], sc.Buf[i+ChA]}
}

// maxSteps is the marching budget for this frame.
func (sc *Scene) maxSteps() int {
	if sc.Camera.Moving {
		return sc.Params.MaxStepsMoving
	}
	return sc.Params.MaxSteps
}
