package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/kherm/brickyard/pkg/catalog"
	"github.com/kherm/brickyard/pkg/collide"
	"github.com/kherm/brickyard/pkg/scene"
)

// defaultBrickColor is used when a script places a brick without :color.
const defaultBrickColor = "#4A90D9"

// builder accumulates the scene produced by one evaluation. Every
// placement goes through the validator against the scene built so far,
// so a script can never produce an interpenetrating scene.
type builder struct {
	cat   *catalog.Catalog
	val   *collide.Validator
	scn   scene.Scene
	count int
}

// nextID returns a deterministic instance id so repeated runs of the
// same script produce identical scenes.
func (b *builder) nextID() string {
	b.count++
	return fmt.Sprintf("brick-%d", b.count)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a scene.Vec3.
type sexpVec3 struct {
	vec scene.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpBrickRef wraps a placed instance id so scripts can refer back to
// bricks they created.
type sexpBrickRef struct {
	id string
}

func (r *sexpBrickRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(brickref %q)", r.id)
}
func (r *sexpBrickRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 extracts a Vec3 from a sexpVec3.
func toVec3(s zygo.Sexp) (scene.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return scene.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the Brickyard DSL builtins into a zygomys
// environment. The builtins populate the builder's scene during
// evaluation.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable
// string literals.
func registerBuiltins(env *zygo.Zlisp, b *builder) {

	// -----------------------------------------------------------------------
	// (vec3 1 0 2)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}

		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}

		return &sexpVec3{vec: scene.Vec3{X: x, Y: y, Z: z}}, nil
	})

	// -----------------------------------------------------------------------
	// (brick "2x1" :at (vec3 1 0 0) :rot 1 :color "#E67E22" :texture "wood")
	// -----------------------------------------------------------------------
	env.AddFunction("brick", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("brick requires a type id as first argument")
		}
		typeID, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("brick: type: %w", err)
		}
		// Scripts are strict about types: unlike interactive previews,
		// which tolerate transient unknown ids, a script naming a type
		// that is not in the catalog is a bug in the script.
		if _, ok := b.cat.Lookup(typeID); !ok {
			return zygo.SexpNull, fmt.Errorf("brick: unknown type %q", typeID)
		}

		inst := scene.BrickInstance{
			ID:     b.nextID(),
			TypeID: typeID,
			Color:  defaultBrickColor,
		}

		if v, ok := pa.kw["at"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("brick: at: %w", err)
			}
			inst.Position = vec
		}
		if v, ok := pa.kw["rot"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("brick: rot: %w", err)
			}
			inst.Rotation = scene.Rotation(n).Normalize()
		}
		if v, ok := pa.kw["color"]; ok {
			c, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("brick: color: %w", err)
			}
			inst.Color = c
		}
		if v, ok := pa.kw["texture"]; ok {
			tex, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("brick: texture: %w", err)
			}
			inst.TextureRef = &tex
		}

		cand := collide.Candidate{
			Position: inst.Position,
			Rotation: inst.Rotation,
			TypeID:   inst.TypeID,
		}
		if !b.val.IsPlacementValid(cand, b.scn) {
			return zygo.SexpNull, fmt.Errorf("brick: placement of %q at %s is blocked", typeID, inst.Position)
		}

		b.scn = b.scn.WithBrick(inst)
		return &sexpBrickRef{id: inst.ID}, nil
	})

	// -----------------------------------------------------------------------
	// (brick-count)
	// -----------------------------------------------------------------------
	env.AddFunction("brick_count", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpInt{Val: int64(b.scn.Len())}, nil
	})
}
