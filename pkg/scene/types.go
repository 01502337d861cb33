// Package scene defines the core scene data structures for Brickyard.
package scene

import "fmt"

// Vec3 represents a 3D vector in grid units. Y is the vertical axis.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Rotation is a quarter-turn count about the vertical axis.
// Only the values 0..3 are meaningful; Normalize maps any integer into
// that range. Rotation never changes a brick's vertical extent.
type Rotation int

// Normalize maps the rotation into the canonical range 0..3.
func (r Rotation) Normalize() Rotation {
	n := int(r) % 4
	if n < 0 {
		n += 4
	}
	return Rotation(n)
}

// Odd reports whether the rotation is a 90 or 270 degree turn, which
// swaps a brick's horizontal footprint axes.
func (r Rotation) Odd() bool {
	return r.Normalize()%2 == 1
}

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", int(r.Normalize())*90)
}

// BrickInstance is a single placed brick. Instances are value types and
// are only ever replaced wholesale, never field-mutated in a committed
// scene; editing produces a new Scene snapshot.
type BrickInstance struct {
	ID         string   `json:"id"`
	TypeID     string   `json:"typeId"`
	Position   Vec3     `json:"position"` // grid-space reference corner (center of the first unit cell)
	Rotation   Rotation `json:"rotation"`
	Color      string   `json:"color"`
	TextureRef *string  `json:"textureRef,omitempty"`
}
