// Package sceneio implements the scene exchange format used by the
// persistence and import/export collaborators. A payload is an ordered
// JSON array of brick records; import either accepts the whole payload
// or rejects it, never producing a partial scene.
package sceneio

import (
	"encoding/json"
	"fmt"

	"github.com/kherm/brickyard/pkg/scene"
)

// record is the wire form of one placed brick. Position is a pointer so
// that a missing field is distinguishable from the origin.
type record struct {
	ID         string         `json:"id"`
	TypeID     string         `json:"typeId"`
	Position   *scene.Vec3    `json:"position"`
	Rotation   scene.Rotation `json:"rotation"`
	Color      string         `json:"color"`
	TextureRef *string        `json:"textureRef"`
}

// Encode serializes a scene to the exchange format.
func Encode(s scene.Scene) ([]byte, error) {
	records := make([]record, 0, len(s.Bricks))
	for i := range s.Bricks {
		b := &s.Bricks[i]
		pos := b.Position
		records = append(records, record{
			ID:         b.ID,
			TypeID:     b.TypeID,
			Position:   &pos,
			Rotation:   b.Rotation.Normalize(),
			Color:      b.Color,
			TextureRef: b.TextureRef,
		})
	}
	return json.MarshalIndent(records, "", "  ")
}

// Decode parses an exchange payload into a scene. The payload must be a
// JSON array and every element must carry a non-empty id, a non-empty
// typeId and a position; the first violation rejects the entire payload.
func Decode(data []byte) (scene.Scene, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return scene.Scene{}, fmt.Errorf("sceneio: payload is not a brick array: %w", err)
	}

	bricks := make([]scene.BrickInstance, 0, len(records))
	for i, r := range records {
		if r.ID == "" {
			return scene.Scene{}, fmt.Errorf("sceneio: record %d has no id", i)
		}
		if r.TypeID == "" {
			return scene.Scene{}, fmt.Errorf("sceneio: record %d (%s) has no typeId", i, r.ID)
		}
		if r.Position == nil {
			return scene.Scene{}, fmt.Errorf("sceneio: record %d (%s) has no position", i, r.ID)
		}
		bricks = append(bricks, scene.BrickInstance{
			ID:         r.ID,
			TypeID:     r.TypeID,
			Position:   *r.Position,
			Rotation:   r.Rotation.Normalize(),
			Color:      r.Color,
			TextureRef: r.TextureRef,
		})
	}
	return scene.Scene{Bricks: bricks}, nil
}
