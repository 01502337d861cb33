package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// fileEntry mirrors one brick type record in a catalog config file.
type fileEntry struct {
	ID     string `mapstructure:"id"`
	Width  int    `mapstructure:"width"`
	Depth  int    `mapstructure:"depth"`
	Height int    `mapstructure:"height"`
	Shape  string `mapstructure:"shape"`
}

// Load reads additional brick types from a JSON catalog file and merges
// them into the catalog. The file holds a top-level "bricks" array:
//
//	{"bricks": [{"id": "8x2", "width": 8, "depth": 2, "height": 1, "shape": "cuboid"}]}
//
// A failure leaves the catalog unchanged only up to the first bad entry,
// so callers should treat an error as fatal at startup.
func (c *Catalog) Load(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("catalog: reading %s: %w", path, err)
	}

	var entries []fileEntry
	if err := v.UnmarshalKey("bricks", &entries); err != nil {
		return fmt.Errorf("catalog: parsing %s: %w", path, err)
	}

	for _, e := range entries {
		shape, err := ParseShape(e.Shape)
		if err != nil {
			return fmt.Errorf("catalog: entry %q: %w", e.ID, err)
		}
		if err := c.Add(BrickType{
			ID:     e.ID,
			Width:  e.Width,
			Depth:  e.Depth,
			Height: e.Height,
			Shape:  shape,
		}); err != nil {
			return err
		}
	}

	return nil
}
