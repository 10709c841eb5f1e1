package gravlens

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Deterministic noise sources. Seeds are fixed constants so identical
// frame inputs always shade identically.
var (
	turbNoise = opensimplex.NewNormalized(1337)
	starNoise = opensimplex.NewNormalized(9001)
	tintNoise = opensimplex.NewNormalized(4242)
)

// octaveNoise layers n with halving amplitude and doubling frequency
// per octave, renormalized back to [0,1].
func octaveNoise(n opensimplex.Noise, x, y, z Real, octaves int, persistence Real) Real {
	total := 0.0
	freq := 1.0
	amp := 1.0
	maxAmp := 0.0
	for i := 0; i < octaves; i++ {
		total += n.Eval3(x*freq, y*freq, z*freq) * amp
		maxAmp += amp
		amp *= persistence
		freq *= 2
	}
	return total / maxAmp
}

// turbulence returns a slow, time-animated brightness modulation for a
// point in the disk plane. Coordinates are pre-scaled by the caller so
// the pattern is independent of the hole's physical size.
func turbulence(u, v, t Real) Real {
	n := octaveNoise(turbNoise, u, v, t, 3, 0.5)
	return turbBase + turbAmp*n
}

// starIntensity thresholds multi-octave noise over the celestial
// sphere into sparse bright points. Zero for most directions.
func starIntensity(dir Vec3) Real {
	n := octaveNoise(starNoise, dir.X*starFreq, dir.Y*starFreq, dir.Z*starFreq, 4, 0.55)
	if n <= starThreshold {
		return 0
	}
	t := (n - starThreshold) / (1 - starThreshold)
	return t * t * t * t // sharpen to pinpoints
}

// starTint shifts a star between warm and cool white.
func starTint(dir Vec3) Real {
	return tintNoise.Eval3(dir.X*tintFreq, dir.Y*tintFreq, dir.Z*tintFreq)
}
