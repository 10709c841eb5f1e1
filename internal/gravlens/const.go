package gravlens

import "math"

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2
	ChA = 3
)

// Physical constants (SI).
const (
	GravConst    = 6.67430e-11
	SpeedOfLight = 2.99792458e8

	// Sagittarius A*, the default subject.
	SagittariusAMass = 8.54e36    // kg
	SagittariusARs   = 1.269e10   // m
	DefaultCamRadius = 6.34194e10 // m, ~5 Schwarzschild radii
)

// Default integration constants, in meters / affine units.
const (
	DefaultDLambda        = 1e7
	DefaultEscapeR        = 1e12
	DefaultMaxSteps       = 100_000
	DefaultMaxStepsMoving = 15_000
)

const degToRad = math.Pi / 180

// hot-loop guards
const (
	sinThetaMin = 1e-6 // pole clamp before dividing by sin(theta)
	redshiftEps = 1e-9 // keeps sqrt(1-rs/r) real just above the horizon
)
