// Package render walks a scene snapshot and produces triangle meshes
// using a geometry kernel. One mesh is produced per placed brick.
package render

import (
	"fmt"

	"github.com/kherm/brickyard/pkg/catalog"
	"github.com/kherm/brickyard/pkg/collide"
	"github.com/kherm/brickyard/pkg/kernel"
	"github.com/kherm/brickyard/pkg/scene"
)

// Meshes renders every brick in the scene. The renderer is read-only
// and never mutates the scene. Instances whose type no longer resolves
// in the catalog are skipped, mirroring the validator's permissive
// treatment of unknown types.
//
// Each solid is built with its rotation-effective footprint and placed
// at its collision bounding-box minimum, so the rendered geometry and
// the validated volume agree exactly. All four brick shapes are
// symmetric under quarter turns once the footprint swap is applied, so
// no actual rotation of the solid is needed.
func Meshes(s scene.Scene, cat *catalog.Catalog, k kernel.Kernel) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh

	for i := range s.Bricks {
		b := &s.Bricks[i]
		t, ok := cat.Lookup(b.TypeID)
		if !ok {
			continue
		}

		solid, off, err := buildSolid(k, t, b.Rotation)
		if err != nil {
			return nil, fmt.Errorf("render: brick %s: %w", b.ID, err)
		}

		box := collide.BoundsFor(b.Position, b.Rotation, t)
		solid = k.Translate(solid, box.Min.X+off.X, box.Min.Y, box.Min.Z+off.Z)

		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, fmt.Errorf("render: ToMesh failed for brick %s: %w", b.ID, err)
		}
		mesh.BrickID = b.ID
		mesh.Color = b.Color
		meshes = append(meshes, mesh)
	}

	return meshes, nil
}

// buildSolid creates the min-corner-anchored solid for a brick type at
// the given rotation. The returned offset centers round shapes (which
// are inscribed in the footprint) within the full bounding volume.
func buildSolid(k kernel.Kernel, t catalog.BrickType, rot scene.Rotation) (kernel.Solid, scene.Vec3, error) {
	w, d := float64(t.Width), float64(t.Depth)
	if rot.Odd() {
		w, d = d, w
	}
	h := float64(t.Height)

	switch t.Shape {
	case catalog.ShapeCuboid:
		return k.Box(w, h, d), scene.Vec3{}, nil
	case catalog.ShapeCylinder:
		r := min(w, d) / 2
		return k.Cylinder(h, r), scene.Vec3{X: w/2 - r, Z: d/2 - r}, nil
	case catalog.ShapePyramid:
		return k.Pyramid(w, h, d), scene.Vec3{}, nil
	case catalog.ShapeCone:
		r := min(w, d) / 2
		return k.Cone(h, r), scene.Vec3{X: w/2 - r, Z: d/2 - r}, nil
	default:
		return nil, scene.Vec3{}, fmt.Errorf("unknown shape %v for type %q", t.Shape, t.ID)
	}
}
