package collide

import (
	"github.com/kherm/brickyard/pkg/catalog"
	"github.com/kherm/brickyard/pkg/scene"
)

// Candidate is a placement to validate: a pose, the brick type it would
// instantiate, and optionally an instance to ignore during the pairwise
// test (used when re-posing an existing brick, which must not collide
// with itself).
type Candidate struct {
	Position  scene.Vec3     `json:"position"`
	Rotation  scene.Rotation `json:"rotation"`
	TypeID    string         `json:"typeId"`
	ExcludeID string         `json:"excludeId,omitempty"`
}

// Validator answers whether candidate placements are legal against a
// scene snapshot. It holds only the injected catalog and is stateless
// otherwise.
type Validator struct {
	cat *catalog.Catalog
}

// NewValidator creates a validator over the given catalog.
func NewValidator(cat *catalog.Catalog) *Validator {
	return &Validator{cat: cat}
}

// IsPlacementValid reports whether the candidate may be placed into the
// scene. The checks run in a fixed order:
//
//  1. A typeId that does not resolve in the catalog is treated as
//     non-colliding and the candidate is accepted. The editor references
//     missing types transiently while the palette selection changes, so
//     this fallback is deliberate and must stay permissive.
//  2. A raw position below the ground plane (Position.Y < 0) is rejected
//     outright, before any box math.
//  3. Otherwise the candidate's box is tested against every instance in
//     the scene except the one named by ExcludeID. Instances whose own
//     type no longer resolves are skipped the same way as in rule 1.
func (v *Validator) IsPlacementValid(c Candidate, s scene.Scene) bool {
	t, ok := v.cat.Lookup(c.TypeID)
	if !ok {
		return true
	}

	if c.Position.Y < 0 {
		return false
	}

	box := BoundsFor(c.Position, c.Rotation, t)
	for i := range s.Bricks {
		b := &s.Bricks[i]
		if b.ID == c.ExcludeID {
			continue
		}
		bt, ok := v.cat.Lookup(b.TypeID)
		if !ok {
			continue
		}
		if box.Overlaps(BoundsFor(b.Position, b.Rotation, bt)) {
			return false
		}
	}
	return true
}
