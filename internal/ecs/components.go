package ecs

import "github.com/yohamta/donburi"

// PositionScale is the internal position scale factor.
// 1 pixel = 256 internal units for sub-pixel precision.
// Using 256 (2^8) allows bit-shift optimization for pixel conversion.
const PositionScale = 256

// PositionShift is the bit shift amount for pixel conversion (log2(256) = 8)
const PositionShift = 8

// Position represents an entity's top-left corner (256x scaled)
type Position struct {
	X, Y int
}

// PixelX returns the pixel X coordinate
func (p Position) PixelX() int { return p.X >> PositionShift }

// PixelY returns the pixel Y coordinate
func (p Position) PixelY() int { return p.Y >> PositionShift }

// Velocity represents movement in internal units per tick.
// All values are integers for deterministic simulation.
type Velocity struct {
	X, Y int
}

// Size is an entity's bounding box in pixels
type Size struct {
	W, H int
}

// Label is text drawn next to an entity
type Label struct {
	Text string
}

var (
	PositionComponent = donburi.NewComponentType[Position]()
	VelocityComponent = donburi.NewComponentType[Velocity]()
	SizeComponent     = donburi.NewComponentType[Size]()
	LabelComponent    = donburi.NewComponentType[Label]()

	// ControlledTag marks entities that follow the input axes
	ControlledTag = donburi.NewTag()
)

// ToIU converts pixels to internal units
func ToIU(pixels float64) int {
	return int(pixels * PositionScale)
}
