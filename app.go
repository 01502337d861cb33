package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kherm/brickyard/pkg/catalog"
	"github.com/kherm/brickyard/pkg/collide"
	"github.com/kherm/brickyard/pkg/engine"
	"github.com/kherm/brickyard/pkg/history"
	"github.com/kherm/brickyard/pkg/kernel"
	"github.com/kherm/brickyard/pkg/kernel/sdfx"
	"github.com/kherm/brickyard/pkg/place"
	"github.com/kherm/brickyard/pkg/render"
	"github.com/kherm/brickyard/pkg/scene"
	"github.com/kherm/brickyard/pkg/sceneio"
)

// colorPalette is the default palette cycled through for bricks placed
// without an explicit color.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the Wails backend. It exposes methods to the frontend via
// bindings. All bindings run synchronously to completion; the history
// store is the single source of truth for the current scene.
type App struct {
	ctx     context.Context
	log     zerolog.Logger
	cat     *catalog.Catalog
	val     *collide.Validator
	planner *place.Planner
	engine  *engine.Engine
	kernel  kernel.Kernel
	history *history.Store
	snap    place.SnapPolicy
	placed  int // count of bricks placed this session, drives the palette
}

// NewApp creates an App over the given catalog with the sdfx kernel.
func NewApp(cat *catalog.Catalog, log zerolog.Logger) *App {
	val := collide.NewValidator(cat)
	return &App{
		log:     log,
		cat:     cat,
		val:     val,
		planner: place.NewPlanner(cat, val),
		engine:  engine.NewEngine(cat),
		kernel:  sdfx.New(),
		history: history.NewStore(),
	}
}

// startup is called by Wails on app startup. The context is saved so we
// can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// ---------------------------------------------------------------------------
// Frontend DTOs
// ---------------------------------------------------------------------------

// SurfaceHitData is a raw pointer contact reported by the frontend
// picking layer.
type SurfaceHitData struct {
	Point  scene.Vec3 `json:"point"`
	Normal scene.Vec3 `json:"normal"`
	Ground bool       `json:"ground"` // true when the ground plane itself was struck
}

// PreviewRequest asks for a candidate pose and its validity, driving the
// ghost brick shown under the pointer.
type PreviewRequest struct {
	Hit      SurfaceHitData `json:"hit"`
	TypeID   string         `json:"typeId"`
	Rotation int            `json:"rotation"`
}

// PreviewResult carries the planned position and whether placing there
// is currently legal.
type PreviewResult struct {
	Position scene.Vec3 `json:"position"`
	Valid    bool       `json:"valid"`
}

// PlaceRequest confirms a placement at the pointer.
type PlaceRequest struct {
	Hit        SurfaceHitData `json:"hit"`
	TypeID     string         `json:"typeId"`
	Rotation   int            `json:"rotation"`
	Color      string         `json:"color"`
	TextureRef *string        `json:"textureRef"`
}

// SceneState is the frontend view of the current scene plus history
// affordances.
type SceneState struct {
	Bricks  []scene.BrickInstance `json:"bricks"`
	CanUndo bool                  `json:"canUndo"`
	CanRedo bool                  `json:"canRedo"`
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	BrickID  string    `json:"brickId"`
	Color    string    `json:"color"`
}

// ScriptErrorData is a JSON-serializable script error for the frontend.
type ScriptErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// ScriptResult is the outcome of running a construction script.
type ScriptResult struct {
	Errors []ScriptErrorData `json:"errors"`
	Placed int               `json:"placed"`
}

// ---------------------------------------------------------------------------
// Bindings
// ---------------------------------------------------------------------------

// ListBrickTypes returns the catalog in palette order.
func (a *App) ListBrickTypes() []catalog.BrickType {
	return a.cat.Types()
}

// SetGridSnap switches between grid-aligned and free placement.
func (a *App) SetGridSnap(enabled bool) {
	if enabled {
		a.snap = place.SnapGrid
	} else {
		a.snap = place.SnapFree
	}
	a.log.Debug().Bool("grid", enabled).Msg("snap policy changed")
}

// plan converts a surface hit into a candidate position under the
// current snap policy.
func (a *App) plan(hit SurfaceHitData) scene.Vec3 {
	if hit.Ground {
		return a.planner.PlanFromGroundPlane(hit.Point, a.snap)
	}
	return a.planner.PlanFromSurfaceHit(place.SurfaceHit{Point: hit.Point, Normal: hit.Normal}, a.snap)
}

// Preview plans a candidate pose for the ghost brick and reports
// whether it is currently placeable. Called on every pointer move.
func (a *App) Preview(req PreviewRequest) PreviewResult {
	pos := a.plan(req.Hit)
	cand := collide.Candidate{
		Position: pos,
		Rotation: scene.Rotation(req.Rotation).Normalize(),
		TypeID:   req.TypeID,
	}
	return PreviewResult{
		Position: pos,
		Valid:    a.planner.PreviewValidity(cand, a.history.Current()),
	}
}

// PlaceBrick validates and commits a new brick at the planned position.
// On rejection the scene is left untouched and the current state is
// returned unchanged.
func (a *App) PlaceBrick(req PlaceRequest) (SceneState, error) {
	pos := a.plan(req.Hit)
	rot := scene.Rotation(req.Rotation).Normalize()

	cand := collide.Candidate{Position: pos, Rotation: rot, TypeID: req.TypeID}
	cur := a.history.Current()
	if !a.val.IsPlacementValid(cand, cur) {
		a.log.Debug().Str("type", req.TypeID).Stringer("pos", pos).Msg("placement blocked")
		return a.state(), fmt.Errorf("placement of %q at %s is blocked", req.TypeID, pos)
	}

	color := req.Color
	if color == "" {
		color = colorPalette[a.placed%len(colorPalette)]
	}
	a.placed++

	inst := scene.BrickInstance{
		ID:         uuid.NewString(),
		TypeID:     req.TypeID,
		Position:   pos,
		Rotation:   rot,
		Color:      color,
		TextureRef: req.TextureRef,
	}
	a.history.Commit(cur.WithBrick(inst))
	a.log.Info().Str("type", req.TypeID).Stringer("pos", pos).Str("id", inst.ID).Msg("brick placed")
	return a.state(), nil
}

// MoveBrick re-poses an existing brick. The brick's own volume is
// excluded from the overlap test, so an unchanged pose always validates.
func (a *App) MoveBrick(id string, pos scene.Vec3, rotation int) (SceneState, error) {
	cur := a.history.Current()
	existing := cur.Find(id)
	if existing == nil {
		return a.state(), fmt.Errorf("no brick with id %q", id)
	}

	rot := scene.Rotation(rotation).Normalize()
	cand := collide.Candidate{
		Position:  pos,
		Rotation:  rot,
		TypeID:    existing.TypeID,
		ExcludeID: id,
	}
	if !a.val.IsPlacementValid(cand, cur) {
		return a.state(), fmt.Errorf("move of %q to %s is blocked", id, pos)
	}

	moved := *existing
	moved.Position = pos
	moved.Rotation = rot
	a.history.Commit(cur.WithReplaced(moved))
	return a.state(), nil
}

// RemoveBrick deletes a brick from the scene.
func (a *App) RemoveBrick(id string) (SceneState, error) {
	cur := a.history.Current()
	if cur.Find(id) == nil {
		return a.state(), fmt.Errorf("no brick with id %q", id)
	}
	a.history.Commit(cur.WithoutBrick(id))
	return a.state(), nil
}

// Undo steps the history back one snapshot. Calling it at the oldest
// snapshot is a no-op.
func (a *App) Undo() SceneState {
	a.history.Undo()
	return a.state()
}

// Redo steps the history forward one snapshot. Calling it at the newest
// snapshot is a no-op.
func (a *App) Redo() SceneState {
	a.history.Redo()
	return a.state()
}

// CurrentScene returns the scene under the history cursor.
func (a *App) CurrentScene() SceneState {
	return a.state()
}

// RenderScene tessellates the current scene into per-brick meshes.
func (a *App) RenderScene() ([]MeshData, error) {
	meshes, err := render.Meshes(a.history.Current(), a.cat, a.kernel)
	if err != nil {
		a.log.Error().Err(err).Msg("render failed")
		return nil, err
	}

	out := make([]MeshData, 0, len(meshes))
	for _, m := range meshes {
		out = append(out, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			BrickID:  m.BrickID,
			Color:    m.Color,
		})
	}
	return out, nil
}

// ExportScene serializes the current scene to the exchange format.
func (a *App) ExportScene() (string, error) {
	data, err := sceneio.Encode(a.history.Current())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportScene replaces the current scene with a decoded payload. A
// malformed payload rejects atomically and leaves the history untouched.
func (a *App) ImportScene(payload string) (SceneState, error) {
	s, err := sceneio.Decode([]byte(payload))
	if err != nil {
		a.log.Warn().Err(err).Msg("import rejected")
		return a.state(), err
	}
	a.history.Commit(s)
	a.log.Info().Int("bricks", s.Len()).Msg("scene imported")
	return a.state(), nil
}

// RunScript evaluates a construction script and, on success, commits
// the scene it built. Script errors leave the history untouched.
func (a *App) RunScript(source string) (ScriptResult, error) {
	s, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout).
		a.log.Error().Err(err).Msg("script evaluation failed")
		return ScriptResult{}, err
	}

	if len(evalErrs) > 0 {
		result := ScriptResult{Errors: make([]ScriptErrorData, 0, len(evalErrs))}
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, ScriptErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result, nil
	}

	a.history.Commit(s)
	return ScriptResult{Placed: s.Len()}, nil
}

// state snapshots the current scene plus history affordances for the
// frontend.
func (a *App) state() SceneState {
	cur := a.history.Current().Clone()
	bricks := cur.Bricks
	if bricks == nil {
		bricks = []scene.BrickInstance{}
	}
	return SceneState{
		Bricks:  bricks,
		CanUndo: a.history.CanUndo(),
		CanRedo: a.history.CanRedo(),
	}
}
