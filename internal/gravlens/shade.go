package gravlens

import "math"

// Shading calibration. These are tuned for visual plausibility, not
// derived from radiative transfer; the qualitative behavior (monotonic
// radial falloff, redshift darkening near the horizon) is what matters.
const (
	tempMin = 1000.0
	tempMax = 100000.0

	// Reference temperatures for the per-channel blackbody saturation.
	tempRefR = 3500.0
	tempRefG = 6500.0
	tempRefB = 11000.0

	diskBrightness  = 1.6
	dopplerStrength = 0.6
	turbBase        = 0.7
	turbAmp         = 0.6
	turbScale       = 4.0  // noise cycles across the disk span
	turbSpeed       = 0.05 // disk-time units per noise unit

	hawkingGlow = 0.02
	glowScaleRs = 8.0 // e-folding distance of the glow, in rs
	glowTintG   = 0.35
	glowTintB   = 0.12

	bgR = 0.004
	bgG = 0.005
	bgB = 0.009

	starFreq      = 37.0
	starThreshold = 0.74
	starBright    = 2.5
	tintFreq      = 11.0

	// Light-beam accumulation near the horizon.
	beamRadiusRs = 3.0
	beamGain     = 6e-4
	beamFalloff  = 2.5
	beamAmpFloor = 0.05
	beamPulse    = 0.8 // pulses per disk-time unit
	beamSwirl    = 2.0
	beamMax      = 0.35
	beamTintG    = 0.55
	beamTintB    = 0.30

	maxChannel = 4.0
)

// blackbodyRGB maps a temperature to linear RGB via monotonic
// saturation curves: each channel rises toward 1 with an exponential
// falloff at its reference temperature, so cool emission skews red and
// hot emission whitens.
func blackbodyRGB(t Real) RGB {
	return RGB{
		R: 1 - math.Exp(-t/tempRefR),
		G: 1 - math.Exp(-t/tempRefG),
		B: 1 - math.Exp(-t/tempRefB),
	}
}

// gravRedshift is the darkening factor for light climbing out from
// radius r, guarded just above the horizon.
func gravRedshift(r, rs Real) Real {
	return math.Sqrt(math.Max(redshiftEps, 1-rs/r))
}

// shade converts a terminal march result into the pixel color,
// blending in whatever beam energy the march accumulated. Every output
// channel is sanitized: the pole and horizon singularities upstream
// may leak a NaN/Inf into an accumulation, and that must degrade to a
// safe value, never reach the buffer.
func shade(ray *Ray, res traceResult, sc *Scene) RGBA {
	var c RGB
	switch res.status {
	case StatusDiskHit:
		c = diskColor(ray, res, sc)
	case StatusCaptured:
		c = capturedColor(res, sc)
	default: // escaped, or budget exhausted and treated as escape
		c = backgroundColor(ray, res, sc)
	}
	c = c.Add(res.beam)
	return sanitize(c)
}

// diskColor shades an accretion-disk crossing: blackbody emission at
// the local thin-disk temperature, darkened by gravitational redshift,
// shifted by the Keplerian Doppler term, modulated by turbulence and
// faded out toward the outer edge.
func diskColor(ray *Ray, res traceResult, sc *Scene) RGB {
	rs := sc.Hole.Rs
	hit := res.hit
	rd := math.Sqrt(hit.X*hit.X + hit.Z*hit.Z)
	if rd <= 0 {
		return RGB{}
	}

	c := blackbodyRGB(sc.Disk.TemperatureAt(rd, rs))

	// Keplerian flow runs along +phi; emission dims on the receding
	// side and brightens on the approaching side.
	beta := math.Sqrt(rs / rd)
	flow := Vec3{-hit.Z / rd, 0, hit.X / rd}
	vlos := beta * flow.Dot(ray.dirCart())
	doppler := clamp(1-dopplerStrength*vlos, 0.4, 1.6)

	u := turbScale * hit.X / sc.Disk.OuterR
	v := turbScale * hit.Z / sc.Disk.OuterR
	turb := turbulence(u, v, sc.Time*turbSpeed)

	falloff := 1 - smoothstep(sc.Disk.InnerR, sc.Disk.OuterR, rd)

	scale := diskBrightness * gravRedshift(rd, rs) * doppler * turb * falloff
	return c.Mul(scale)
}

// capturedColor is near-black with a faint glow that decays
// exponentially with the distance the ray traveled before crossing the
// horizon. An artistic proxy, not literal Hawking radiation.
func capturedColor(res traceResult, sc *Scene) RGB {
	g := hawkingGlow * math.Exp(-res.pathLen/(glowScaleRs*sc.Hole.Rs))
	return RGB{g, g * glowTintG, g * glowTintB}
}

// backgroundColor shades escaped (and budget-exhausted) rays: the
// cosmic-background base plus the procedural starfield, the whole
// thing attenuated by the redshift of the ray's closest approach.
func backgroundColor(ray *Ray, res traceResult, sc *Scene) RGB {
	dir := ray.dirCart()
	c := RGB{bgR, bgG, bgB}
	if s := starIntensity(dir); s > 0 {
		warm := 0.5 + 0.5*starTint(dir)
		c = c.Add(RGB{
			starBright * s * (0.75 + 0.25*warm),
			starBright * s * 0.85,
			starBright * s * (1.0 - 0.25*warm),
		})
	}
	return c.Mul(gravRedshift(res.closestR, sc.Hole.Rs))
}

// beamSample is one marching iteration's light-beam contribution while
// the ray is within beamRadiusRs of the horizon: attenuated by height
// above the horizon, amplified by lensing proximity, pulsed by the
// disk time.
func beamSample(ray *Ray, rs, time Real) RGB {
	x := ray.R/rs - 1
	if x < 0 {
		x = 0
	}
	atten := math.Exp(-x * beamFalloff)
	amp := 1 / math.Max(beamAmpFloor, x)
	pulse := 0.75 + 0.25*math.Sin(2*math.Pi*beamPulse*time+beamSwirl*ray.Phi)
	g := beamGain * atten * amp * pulse
	return RGB{g, g * beamTintG, g * beamTintB}
}

// clampBeam caps accumulated beam energy so long orbits near the
// photon sphere cannot blow the exposure.
func clampBeam(b RGB) RGB {
	return RGB{
		math.Min(b.R, beamMax),
		math.Min(b.G, beamMax),
		math.Min(b.B, beamMax),
	}
}

// sanitize clamps every channel into [0, maxChannel], mapping NaN/Inf
// to black, and pins alpha to 1.
func sanitize(c RGB) RGBA {
	fix := func(x Real) Real {
		if !isFinite(x) {
			return 0
		}
		return clamp(x, 0, maxChannel)
	}
	return RGBA{fix(c.R), fix(c.G), fix(c.B), 1}
}
