package gravlens

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// traceResult is everything the march learned about one ray.
type traceResult struct {
	status   Status
	steps    int
	pathLen  Real // Euclidean distance traveled, for the glow falloff
	closestR Real // closest approach, for the background redshift
	hit      Vec3 // disk crossing point, valid for StatusDiskHit
	beam     RGB  // accumulated near-horizon beam energy
}

// traceRay marches a ray until a terminal state or the step budget
// runs out. Non-finite coordinates fold into the captured branch: they
// only arise from the metric singularity just above the horizon.
func traceRay(ray *Ray, sc *Scene) traceResult {
	res := traceResult{status: StatusAlive, closestR: ray.R}
	rs := sc.Hole.Rs
	p := sc.Params

	if st, hit := classify(ray, ray.cart(), rs, p.EscapeR, sc.Disk); st != StatusAlive {
		res.status = st
		res.hit = hit
		return res
	}

	budget := sc.maxSteps()
	beamR := beamRadiusRs * rs
	for i := 0; i < budget; i++ {
		prev := ray.cart()
		ray.step(p.DLambda, rs)
		res.steps++
		res.pathLen += ray.cart().Sub(prev).Len()

		if !isFinite(ray.R) || !isFinite(ray.Theta) || !isFinite(ray.Dr) {
			res.status = StatusCaptured
			return res
		}
		if ray.R < res.closestR {
			res.closestR = ray.R
		}

		st, hit := classify(ray, prev, rs, p.EscapeR, sc.Disk)
		if st != StatusAlive {
			res.status = st
			res.hit = hit
			return res
		}

		if ray.R < beamR {
			res.beam = clampBeam(res.beam.Add(beamSample(ray, rs, sc.Time)))
		}
	}
	res.status = StatusExhausted
	return res
}

// tracePixel runs the full pipeline for one pixel: build the view
// direction, initialize the ray, march, shade.
func tracePixel(sc *Scene, x, y int) (RGBA, Ray, traceResult) {
	dir := sc.Camera.rayDir(x, y)
	ray := newRay(sc.Camera.Position, dir, sc.Hole.Rs)
	res := traceRay(&ray, sc)
	return shade(&ray, res, sc), ray, res
}

// Dispatcher schedules the per-pixel work of a frame. Implementations
// must call fn exactly once per pixel; pixels are independent, so any
// order and any degree of concurrency is legal.
type Dispatcher interface {
	Dispatch(width, height int, fn func(x, y int))
}

// SerialDispatcher runs every pixel on the calling goroutine. Useful
// for tests and determinism checks.
type SerialDispatcher struct{}

func (SerialDispatcher) Dispatch(width, height int, fn func(x, y int)) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fn(x, y)
		}
	}
}

// ParallelDispatcher stripes rows across a fixed worker pool.
// Workers <= 0 means one worker per CPU.
type ParallelDispatcher struct {
	Workers int
}

func (d ParallelDispatcher) Dispatch(width, height int, fn func(x, y int)) {
	workers := d.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		SerialDispatcher{}.Dispatch(width, height, fn)
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		wid := w
		go func() {
			defer wg.Done()
			for y := wid; y < height; y += workers {
				for x := 0; x < width; x++ {
					fn(x, y)
				}
			}
		}()
	}
	wg.Wait()
}

// FrameStats summarizes one rendered frame.
type FrameStats struct {
	Rays      int64
	Steps     int64
	Captured  int64
	DiskHits  int64
	Escaped   int64
	Exhausted int64
	Elapsed   time.Duration
}

// RenderFrame traces every pixel of the scene through d and fills the
// scene's output buffer. A nil dispatcher renders in parallel on all
// CPUs.
func RenderFrame(sc *Scene, d Dispatcher) FrameStats {
	if d == nil {
		d = ParallelDispatcher{}
	}
	w, h := sc.Camera.Width, sc.Camera.Height
	if sc.RecordStates && len(sc.States) != w*h {
		sc.States = make([]Ray, w*h)
	}

	var steps, captured, diskHits, escaped, exhausted int64
	var done int64
	printEvery := int64(0)
	if Progress && w*h >= 100 {
		printEvery = int64(w * h / 100)
	}

	start := time.Now()
	d.Dispatch(w, h, func(x, y int) {
		color, ray, res := tracePixel(sc, x, y)
		i := sc.idx(x, y)
		sc.Buf[i+ChR] = color.R
		sc.Buf[i+ChG] = color.G
		sc.Buf[i+ChB] = color.B
		sc.Buf[i+ChA] = color.A
		if sc.RecordStates {
			sc.States[y*w+x] = ray
		}

		atomic.AddInt64(&steps, int64(res.steps))
		switch res.status {
		case StatusCaptured:
			atomic.AddInt64(&captured, 1)
		case StatusDiskHit:
			atomic.AddInt64(&diskHits, 1)
		case StatusEscaped:
			atomic.AddInt64(&escaped, 1)
		case StatusExhausted:
			atomic.AddInt64(&exhausted, 1)
		}
		if printEvery > 0 {
			if n := atomic.AddInt64(&done, 1); n%printEvery == 0 {
				fmt.Printf("[PROGRESS] %.2f%%\n", math.Min(100, Real(n)*100/Real(w*h)))
			}
		}
	})

	return FrameStats{
		Rays:      int64(w * h),
		Steps:     steps,
		Captured:  captured,
		DiskHits:  diskHits,
		Escaped:   escaped,
		Exhausted: exhausted,
		Elapsed:   time.Since(start),
	}
}
