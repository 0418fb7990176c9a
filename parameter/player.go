package parameter

// Hovership handling defaults
const (
	Acceleration           = 30.0  // m/s²
	MaxSpeed               = 20.0  // m/s
	RotationalAcceleration = 720.0 // deg/s²
	MaxRotationSpeed       = 150.0 // deg/s
	JumpStrength           = 50.0  // m/s² while ascending
	MinJumpTime            = 0.2   // s
	MaxJumpTime            = 0.45  // s
	HoverHeight            = 1.0   // m

	// Collider half-extents the probe factors are scaled by
	BodyHalfWidth  = 1.6
	BodyHalfLength = 2.2

	// TiltFactor converts yaw rate (deg/s) into visual bank angle (deg)
	TiltFactor = 0.1
)

// Probe factors are fractions of the body half-extents: {x (right), z (forward)}

// HovershipGroundProbes cover the fuselage: centre plus four points per side
var HovershipGroundProbes = [][2]float64{
	{0, 0},        // centre
	{-0.3, -0.5},  // fuselage left rear
	{-0.3, -0.3},  // fuselage left rear quarter
	{-0.25, 0.5},  // fuselage left front quarter
	{-0.2, 0.7},   // fuselage left front
	{0.3, -0.5},   // fuselage right rear
	{0.3, -0.3},   // fuselage right rear quarter
	{0.25, 0.5},   // fuselage right front quarter
	{0.2, 0.7},    // fuselage right front
}

// HovershipWingTipProbes are measured against the tighter wing tip clearance
var HovershipWingTipProbes = [][2]float64{
	{0.7, -0.25},
	{0.7, -0.4},
}

// HovershipWingRootProbes are measured against the wing root clearance
var HovershipWingRootProbes = [][2]float64{
	{0.5, -0.15},
	{0.35, -0.05},
	{0.4, -0.45},
}

// PlatformerBoxProbes suit a box body: centre plus the four corners
var PlatformerBoxProbes = [][2]float64{
	{0, 0},
	{-0.9, -0.9},
	{-0.9, 0.9},
	{0.9, -0.9},
	{0.9, 0.9},
}
