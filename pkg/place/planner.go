// Package place converts raw pointer hits on scene surfaces into
// candidate brick placements. The planner holds no state across calls;
// a preview that is never confirmed is simply discarded by the caller.
package place

import (
	"math"

	"github.com/kherm/brickyard/pkg/catalog"
	"github.com/kherm/brickyard/pkg/collide"
	"github.com/kherm/brickyard/pkg/scene"
)

// PreviewID is the reserved exclude sentinel used when validating a
// ghost placement, so a live preview never collides with itself.
const PreviewID = "__preview__"

// SurfaceHit is a raw contact reported by the picking layer: the struck
// point and the unit normal of the struck face.
type SurfaceHit struct {
	Point  scene.Vec3 `json:"point"`
	Normal scene.Vec3 `json:"normal"`
}

// SnapPolicy selects between grid-aligned and free placement.
type SnapPolicy int

const (
	// SnapGrid rounds each axis to the nearest integer grid coordinate.
	SnapGrid SnapPolicy = iota
	// SnapFree passes horizontal axes through unrounded. The vertical
	// axis is still clamped to the ground plane.
	SnapFree
)

func (p SnapPolicy) String() string {
	switch p {
	case SnapGrid:
		return "grid"
	case SnapFree:
		return "free"
	default:
		return "unknown"
	}
}

// Planner turns surface hits into candidate positions and previews
// their validity. Catalog and validator are injected; the planner
// performs no mutation.
type Planner struct {
	cat *catalog.Catalog
	val *collide.Validator
}

// NewPlanner creates a planner over the given catalog and validator.
func NewPlanner(cat *catalog.Catalog, val *collide.Validator) *Planner {
	return &Planner{cat: cat, val: val}
}

// PlanFromSurfaceHit computes the candidate position for a brick placed
// against a struck face. The ideal target sits half a unit along the
// face normal, which puts the new brick's reference cell adjacent to
// the face rather than embedded in it; the snap policy then rounds or
// passes the axes through. The vertical axis is clamped to the ground
// plane regardless of policy, since validation independently rejects
// sub-floor positions.
func (p *Planner) PlanFromSurfaceHit(hit SurfaceHit, policy SnapPolicy) scene.Vec3 {
	target := hit.Point.Add(hit.Normal.Scale(0.5))
	return applyPolicy(target, policy)
}

// PlanFromGroundPlane computes the candidate position for a brick
// placed directly on the ground plane. No normal offset is applied and
// the vertical coordinate is fixed to zero.
func (p *Planner) PlanFromGroundPlane(point scene.Vec3, policy SnapPolicy) scene.Vec3 {
	target := scene.Vec3{X: point.X, Y: 0, Z: point.Z}
	return applyPolicy(target, policy)
}

// PreviewValidity reports whether a ghost at the candidate pose would
// be legal right now. The exclude sentinel keeps the ghost from
// colliding with itself; this runs on every pointer move and must stay
// cheap and side-effect-free.
func (p *Planner) PreviewValidity(c collide.Candidate, s scene.Scene) bool {
	c.ExcludeID = PreviewID
	return p.val.IsPlacementValid(c, s)
}

// applyPolicy snaps or passes through each axis and clamps the vertical
// axis to the ground plane. Snapping is idempotent: an already-integer
// coordinate is unchanged.
func applyPolicy(target scene.Vec3, policy SnapPolicy) scene.Vec3 {
	if policy == SnapGrid {
		target = scene.Vec3{
			X: math.Round(target.X),
			Y: math.Max(0, math.Round(target.Y)),
			Z: math.Round(target.Z),
		}
	}
	// Final safety clamp, independent of policy.
	target.Y = math.Max(0, target.Y)
	return target
}
