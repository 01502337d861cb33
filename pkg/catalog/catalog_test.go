package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	bt, ok := c.Lookup("1x1")
	if !ok {
		t.Fatal("default catalog is missing 1x1")
	}
	if bt.Width != 1 || bt.Depth != 1 || bt.Height != 1 || bt.Shape != ShapeCuboid {
		t.Errorf("1x1 = %+v, want 1x1x1 cuboid", bt)
	}

	if _, ok := c.Lookup("2x1"); !ok {
		t.Error("default catalog is missing 2x1")
	}

	// Palette order matches registration order.
	types := c.Types()
	if len(types) != c.Len() {
		t.Fatalf("Types() returned %d entries, want %d", len(types), c.Len())
	}
	if types[0].ID != "1x1" {
		t.Errorf("first palette entry = %q, want 1x1", types[0].ID)
	}
}

func TestAddRejectsBadTypes(t *testing.T) {
	tests := []struct {
		name string
		bt   BrickType
	}{
		{"empty id", BrickType{Width: 1, Depth: 1, Height: 1}},
		{"zero width", BrickType{ID: "w", Width: 0, Depth: 1, Height: 1}},
		{"negative depth", BrickType{ID: "d", Width: 1, Depth: -1, Height: 1}},
		{"zero height", BrickType{ID: "h", Width: 1, Depth: 1, Height: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			if err := c.Add(tt.bt); err == nil {
				t.Errorf("Add(%+v) succeeded, want error", tt.bt)
			}
		})
	}
}

func TestAddRejectsDuplicateID(t *testing.T) {
	c := New()
	bt := BrickType{ID: "1x1", Width: 1, Depth: 1, Height: 1}
	if err := c.Add(bt); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := c.Add(bt); err == nil {
		t.Error("duplicate Add succeeded, want error")
	}
	if c.Len() != 1 {
		t.Errorf("catalog has %d types after duplicate Add, want 1", c.Len())
	}
}

func TestLookupMiss(t *testing.T) {
	c := Default()
	if _, ok := c.Lookup("no-such-type"); ok {
		t.Error("Lookup of an unregistered id reported ok")
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"cuboid", ShapeCuboid, false},
		{"", ShapeCuboid, false},
		{"cylinder", ShapeCylinder, false},
		{"pyramid", ShapePyramid, false},
		{"cone", ShapeCone, false},
		{"sphere", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadMergesFileTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricks.json")
	payload := `{
  "bricks": [
    {"id": "8x2", "width": 8, "depth": 2, "height": 1, "shape": "cuboid"},
    {"id": "dome", "width": 2, "depth": 2, "height": 1, "shape": "cylinder"}
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Default()
	before := c.Len()
	if err := c.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != before+2 {
		t.Errorf("catalog has %d types after Load, want %d", c.Len(), before+2)
	}

	bt, ok := c.Lookup("dome")
	if !ok {
		t.Fatal("loaded type dome not found")
	}
	if bt.Shape != ShapeCylinder || bt.Width != 2 {
		t.Errorf("dome = %+v, want 2x2x1 cylinder", bt)
	}
}

func TestLoadRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"unknown shape", `{"bricks": [{"id": "x", "width": 1, "depth": 1, "height": 1, "shape": "sphere"}]}`},
		{"duplicate of builtin", `{"bricks": [{"id": "1x1", "width": 1, "depth": 1, "height": 1}]}`},
		{"zero dimension", `{"bricks": [{"id": "flat", "width": 1, "depth": 1, "height": 0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bricks.json")
			if err := os.WriteFile(path, []byte(tt.payload), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := Default().Load(path); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	c := Default()
	if err := c.Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load of a missing file succeeded, want error")
	}
}
