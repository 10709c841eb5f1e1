package gravlens

// BlackHole describes a non-rotating (Schwarzschild) black hole pinned
// at the coordinate origin.
type BlackHole struct {
	Position Vec3 // always the origin; kept for clarity in geometry code
	Mass     Real // kg
	Rs       Real // Schwarzschild radius, m
}

// NewBlackHole derives the Schwarzschild radius from the mass.
func NewBlackHole(mass Real) BlackHole {
	return BlackHole{Mass: mass, Rs: SchwarzschildRadius(mass)}
}

// SchwarzschildRadius returns rs = 2GM/c^2.
func SchwarzschildRadius(mass Real) Real {
	return 2 * GravConst * mass / (SpeedOfLight * SpeedOfLight)
}

// Params are the fixed integration constants for one frame. They are
// built once and passed explicitly; nothing in the marching loop reads
// package-level state.
type Params struct {
	DLambda        Real // fixed affine step
	EscapeR        Real // radius treated as infinity
	MaxSteps       int  // budget for still renders
	MaxStepsMoving int  // reduced budget while the camera moves
}

func DefaultParams() Params {
	return Params{
		DLambda:        DefaultDLambda,
		EscapeR:        DefaultEscapeR,
		MaxSteps:       DefaultMaxSteps,
		MaxStepsMoving: DefaultMaxStepsMoving,
	}
}
