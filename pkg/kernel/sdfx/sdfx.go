// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/kherm/brickyard/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
// Bricks are small, boxy solids, so a modest grid keeps render latency
// low when a scene holds hundreds of them.
const defaultMeshCells = 64

// pyramidTipScale is the footprint ratio of a pyramid's top face to its
// base. The loft cannot collapse to a true point, so the tip is a tiny
// quad instead.
const pyramidTipScale = 1e-3

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// anchor shifts a solid so its bounding-box minimum sits at the origin.
// sdfx primitives center themselves on the origin (and build along Z),
// so every primitive is normalized through here to satisfy the kernel's
// min-corner convention independent of sdfx's own centering rules.
func anchor(s sdf.SDF3) kernel.Solid {
	bb := s.BoundingBox()
	m := sdf.Translate3d(v3.Vec{X: -bb.Min.X, Y: -bb.Min.Y, Z: -bb.Min.Z})
	return &sdfxSolid{s: sdf.Transform3D(s, m)}
}

// zUpToYUp rotates a Z-axis-aligned sdfx solid so its axis runs along
// the editor's vertical (Y) axis.
func zUpToYUp(s sdf.SDF3) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.RotateX(-math.Pi/2))
}

// Box creates a w×h×d box with its minimum corner at the origin.
func (k *SdfxKernel) Box(w, h, d float64) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: w, Y: h, Z: d}, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	return anchor(s)
}

// Cylinder creates an upright cylinder of the given height and radius.
func (k *SdfxKernel) Cylinder(height, radius float64) kernel.Solid {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}
	return anchor(zUpToYUp(s))
}

// Pyramid creates a four-sided pyramid over a w×d base, lofted from the
// base footprint to a near-point tip at the given height.
func (k *SdfxKernel) Pyramid(w, h, d float64) kernel.Solid {
	base := sdf.Box2D(v2.Vec{X: w, Y: d}, 0)
	tip := sdf.Box2D(v2.Vec{X: w * pyramidTipScale, Y: d * pyramidTipScale}, 0)
	s, err := sdf.Loft3D(base, tip, h, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Loft3D: %v", err))
	}
	return anchor(zUpToYUp(s))
}

// Cone creates an upright cone with the given height and base radius.
func (k *SdfxKernel) Cone(height, radius float64) kernel.Solid {
	s, err := sdf.Cone3D(height, radius, 0, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cone3D: %v", err))
	}
	return anchor(zUpToYUp(s))
}

// Translate moves a solid by (x, y, z).
func (k *SdfxKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return &sdfxSolid{s: sdf.Transform3D(unwrap(s), m)}
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(defaultMeshCells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
