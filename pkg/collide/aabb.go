// Package collide implements placement validation for brick scenes.
// Every check is a pure function over a candidate pose and a scene
// snapshot; the package holds no mutable state and is safe to call on
// every pointer-move event.
package collide

import (
	"fmt"

	"github.com/kherm/brickyard/pkg/catalog"
	"github.com/kherm/brickyard/pkg/scene"
)

// Epsilon is the contact tolerance in grid units. Two bricks sharing a
// face (flush contact) must not register as overlapping, so each axis
// test allows interpenetration up to Epsilon before reporting a hit.
const Epsilon = 1e-3

// AABB is an axis-aligned bounding box, the sole collision
// representation for bricks of any shape.
type AABB struct {
	Min scene.Vec3 `json:"min"`
	Max scene.Vec3 `json:"max"`
}

func (b AABB) String() string {
	return fmt.Sprintf("[%s – %s]", b.Min, b.Max)
}

// Overlaps reports whether two boxes interpenetrate by more than
// Epsilon. Overlap requires intersection on all three axes; flush
// contact on any axis separates the boxes.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X < o.Max.X-Epsilon && b.Max.X > o.Min.X+Epsilon &&
		b.Min.Y < o.Max.Y-Epsilon && b.Max.Y > o.Min.Y+Epsilon &&
		b.Min.Z < o.Max.Z-Epsilon && b.Max.Z > o.Min.Z+Epsilon
}

// BoundsFor computes the bounding box for a brick type at the given
// pose. The position is the center of the type's first unit cell, so
// the box minimum sits half a unit below it on every axis and extends
// by the rotation-effective footprint:
//
//	min = position - (0.5, 0.5, 0.5)
//	max = min + (effectiveWidth, height, effectiveDepth)
//
// An odd rotation (90 or 270 degrees) swaps width and depth. A unit
// brick at the origin occupies [-0.5,-0.5,-0.5] to [0.5,0.5,0.5].
func BoundsFor(pos scene.Vec3, rot scene.Rotation, t catalog.BrickType) AABB {
	w, d := float64(t.Width), float64(t.Depth)
	if rot.Odd() {
		w, d = d, w
	}
	min := pos.Add(scene.Vec3{X: -0.5, Y: -0.5, Z: -0.5})
	return AABB{
		Min: min,
		Max: min.Add(scene.Vec3{X: w, Y: float64(t.Height), Z: d}),
	}
}
