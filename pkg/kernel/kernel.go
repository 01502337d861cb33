// Package kernel defines the abstract geometry kernel interface used to
// turn brick shapes into render meshes. Implementations (sdfx, manifold)
// provide the solid modeling behind this interface, so backends can be
// swapped without touching the renderer.
//
// All primitives use the editor's conventions: Y is up, dimensions are
// in grid units, and every solid is anchored with its bounding-box
// minimum at the origin so a plain translation places it in the scene.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives, one per renderable brick shape.
	Box(w, h, d float64) Solid
	Cylinder(height, radius float64) Solid
	Pyramid(w, h, d float64) Solid
	Cone(height, radius float64) Solid

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates a solid into a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
