package scene

// Scene is an ordered sequence of placed bricks. Order affects draw
// precedence only; two scenes holding the same set of instances in a
// different order are spatially equivalent.
//
// Scenes are treated as immutable snapshots once handed to the history
// store, so all editing helpers return a fresh Scene and never alias the
// receiver's backing array.
type Scene struct {
	Bricks []BrickInstance `json:"bricks"`
}

// New returns an empty scene.
func New() Scene {
	return Scene{}
}

// Len returns the number of placed bricks.
func (s Scene) Len() int {
	return len(s.Bricks)
}

// Clone returns a deep copy of the scene.
func (s Scene) Clone() Scene {
	if len(s.Bricks) == 0 {
		return Scene{}
	}
	out := make([]BrickInstance, len(s.Bricks))
	copy(out, s.Bricks)
	return Scene{Bricks: out}
}

// Find returns the instance with the given id, or nil.
func (s Scene) Find(id string) *BrickInstance {
	for i := range s.Bricks {
		if s.Bricks[i].ID == id {
			return &s.Bricks[i]
		}
	}
	return nil
}

// WithBrick returns a copy of the scene with the instance appended.
func (s Scene) WithBrick(b BrickInstance) Scene {
	out := make([]BrickInstance, len(s.Bricks), len(s.Bricks)+1)
	copy(out, s.Bricks)
	out = append(out, b)
	return Scene{Bricks: out}
}

// WithoutBrick returns a copy of the scene with the identified instance
// removed. If no instance matches, the copy is identical to the receiver.
func (s Scene) WithoutBrick(id string) Scene {
	out := make([]BrickInstance, 0, len(s.Bricks))
	for _, b := range s.Bricks {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return Scene{Bricks: out}
}

// WithReplaced returns a copy of the scene where the instance sharing
// b's ID has been replaced wholesale by b. Draw order is preserved.
// If no instance matches, the copy is identical to the receiver.
func (s Scene) WithReplaced(b BrickInstance) Scene {
	out := make([]BrickInstance, len(s.Bricks))
	copy(out, s.Bricks)
	for i := range out {
		if out[i].ID == b.ID {
			out[i] = b
			break
		}
	}
	return Scene{Bricks: out}
}
