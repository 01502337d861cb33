// Package catalog holds the read-only registry of brick types. The
// catalog is loaded once at startup and injected into the components
// that need dimensions; it is never mutated during an editing session.
package catalog

import "fmt"

// Shape enumerates the renderable brick shapes. Shape only selects the
// display geometry; collision always uses the type's bounding box.
type Shape int

const (
	ShapeCuboid Shape = iota
	ShapeCylinder
	ShapePyramid
	ShapeCone
)

func (s Shape) String() string {
	switch s {
	case ShapeCuboid:
		return "cuboid"
	case ShapeCylinder:
		return "cylinder"
	case ShapePyramid:
		return "pyramid"
	case ShapeCone:
		return "cone"
	default:
		return "unknown"
	}
}

// ParseShape converts a shape name to a Shape.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "cuboid", "":
		return ShapeCuboid, nil
	case "cylinder":
		return ShapeCylinder, nil
	case "pyramid":
		return ShapePyramid, nil
	case "cone":
		return ShapeCone, nil
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// BrickType describes one catalog entry. Dimensions are in whole grid
// units and must be positive. BrickType values are immutable after load.
type BrickType struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`  // X extent at rotation 0
	Depth  int    `json:"depth"`  // Z extent at rotation 0
	Height int    `json:"height"` // Y extent, unaffected by rotation
	Shape  Shape  `json:"shape"`
}

// Catalog is an injected read-only brick type registry.
type Catalog struct {
	types map[string]BrickType
	order []string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{types: make(map[string]BrickType)}
}

// Add registers a type. Re-adding an existing id is an error; the
// catalog never changes under an open session.
func (c *Catalog) Add(t BrickType) error {
	if t.ID == "" {
		return fmt.Errorf("catalog: brick type has empty id")
	}
	if t.Width <= 0 || t.Depth <= 0 || t.Height <= 0 {
		return fmt.Errorf("catalog: brick type %q has non-positive dimensions %dx%dx%d", t.ID, t.Width, t.Depth, t.Height)
	}
	if _, exists := c.types[t.ID]; exists {
		return fmt.Errorf("catalog: brick type %q already defined", t.ID)
	}
	c.types[t.ID] = t
	c.order = append(c.order, t.ID)
	return nil
}

// Lookup returns the type for the given id. The second return reports
// whether the id resolves; callers decide how to treat a miss (the
// spatial validator deliberately treats unknown types as non-colliding).
func (c *Catalog) Lookup(id string) (BrickType, bool) {
	t, ok := c.types[id]
	return t, ok
}

// Types returns all registered types in insertion order.
func (c *Catalog) Types() []BrickType {
	out := make([]BrickType, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.types[id])
	}
	return out
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	return len(c.types)
}

// Default returns the built-in brick set shipped with the editor.
func Default() *Catalog {
	c := New()
	for _, t := range []BrickType{
		{ID: "1x1", Width: 1, Depth: 1, Height: 1, Shape: ShapeCuboid},
		{ID: "2x1", Width: 2, Depth: 1, Height: 1, Shape: ShapeCuboid},
		{ID: "2x2", Width: 2, Depth: 2, Height: 1, Shape: ShapeCuboid},
		{ID: "4x1", Width: 4, Depth: 1, Height: 1, Shape: ShapeCuboid},
		{ID: "4x2", Width: 4, Depth: 2, Height: 1, Shape: ShapeCuboid},
		{ID: "1x1-tall", Width: 1, Depth: 1, Height: 3, Shape: ShapeCuboid},
		{ID: "cylinder-1x1", Width: 1, Depth: 1, Height: 1, Shape: ShapeCylinder},
		{ID: "pyramid-1x1", Width: 1, Depth: 1, Height: 1, Shape: ShapePyramid},
		{ID: "pyramid-2x2", Width: 2, Depth: 2, Height: 1, Shape: ShapePyramid},
		{ID: "cone-1x1", Width: 1, Depth: 1, Height: 1, Shape: ShapeCone},
	} {
		if err := c.Add(t); err != nil {
			// The built-in set is under our control; a duplicate here is
			// a programming error.
			panic(err)
		}
	}
	return c
}
