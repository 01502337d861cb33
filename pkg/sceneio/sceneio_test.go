package sceneio_test

import (
	"strings"
	"testing"

	"github.com/kherm/brickyard/pkg/scene"
	"github.com/kherm/brickyard/pkg/sceneio"
)

func sample() scene.Scene {
	tex := "studs.png"
	return scene.Scene{Bricks: []scene.BrickInstance{
		{ID: "a", TypeID: "1x1", Position: scene.Vec3{}, Color: "#4A90D9"},
		{ID: "b", TypeID: "2x1", Position: scene.Vec3{X: 1}, Rotation: 1, Color: "#E67E22", TextureRef: &tex},
	}}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sample()

	data, err := sceneio.Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := sceneio.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Len() != want.Len() {
		t.Fatalf("round trip: %d bricks, want %d", got.Len(), want.Len())
	}
	for i := range want.Bricks {
		w, g := want.Bricks[i], got.Bricks[i]
		if g.ID != w.ID || g.TypeID != w.TypeID || g.Position != w.Position ||
			g.Rotation != w.Rotation || g.Color != w.Color {
			t.Errorf("brick %d = %+v, want %+v", i, g, w)
		}
		switch {
		case w.TextureRef == nil && g.TextureRef != nil:
			t.Errorf("brick %d gained a texture ref", i)
		case w.TextureRef != nil && (g.TextureRef == nil || *g.TextureRef != *w.TextureRef):
			t.Errorf("brick %d texture ref = %v, want %q", i, g.TextureRef, *w.TextureRef)
		}
	}
}

func TestEncodeEmptyScene(t *testing.T) {
	data, err := sceneio.Encode(scene.New())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		t.Errorf("empty scene must encode as a JSON array, got %s", data)
	}

	got, err := sceneio.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("decoded %d bricks from an empty scene", got.Len())
	}
}

func TestEncodeNormalizesRotation(t *testing.T) {
	s := scene.Scene{Bricks: []scene.BrickInstance{
		{ID: "a", TypeID: "1x1", Rotation: 5},
	}}

	data, err := sceneio.Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := sceneio.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Bricks[0].Rotation != 1 {
		t.Errorf("rotation = %d, want 1", got.Bricks[0].Rotation)
	}
}

func TestDecodeRejectsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `this is not json`},
		{"object not array", `{"bricks": []}`},
		{"missing id", `[{"typeId": "1x1", "position": {"x": 0, "y": 0, "z": 0}}]`},
		{"missing typeId", `[{"id": "a", "position": {"x": 0, "y": 0, "z": 0}}]`},
		{"missing position", `[{"id": "a", "typeId": "1x1"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sceneio.Decode([]byte(tt.payload)); err == nil {
				t.Errorf("Decode(%s) succeeded, want error", tt.payload)
			}
		})
	}
}

func TestDecodeRejectsWholePayloadOnOneBadRecord(t *testing.T) {
	// The second record is invalid; the valid first record must not
	// survive as a partial scene.
	payload := `[
  {"id": "a", "typeId": "1x1", "position": {"x": 0, "y": 0, "z": 0}},
  {"id": "b", "typeId": "", "position": {"x": 1, "y": 0, "z": 0}}
]`
	s, err := sceneio.Decode([]byte(payload))
	if err == nil {
		t.Fatal("Decode succeeded, want error")
	}
	if s.Len() != 0 {
		t.Errorf("rejected payload produced a partial scene of %d bricks", s.Len())
	}
}

func TestDecodeKeepsUnknownTypeIDs(t *testing.T) {
	// The exchange format is catalog-agnostic: a payload may reference
	// types this install does not have. The decoder keeps them verbatim.
	payload := `[{"id": "a", "typeId": "from-another-install", "position": {"x": 0, "y": 2, "z": 0}}]`
	s, err := sceneio.Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.Bricks[0].TypeID != "from-another-install" {
		t.Errorf("typeId = %q, want preserved verbatim", s.Bricks[0].TypeID)
	}
}
