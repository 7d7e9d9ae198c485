package material

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deepholm/voxelmesh/internal/grid"
)

// libraryFile mirrors the YAML material library layout.
type libraryFile struct {
	Atlas struct {
		TilesPerRow int     `yaml:"tiles_per_row"`
		Inset       float32 `yaml:"inset"`
	} `yaml:"atlas"`
	Bedrock        string         `yaml:"bedrock"`
	UnexploredTile int            `yaml:"unexplored_tile"`
	Materials      []materialFile `yaml:"materials"`
}

type materialFile struct {
	ID          uint16   `yaml:"id"`
	Name        string   `yaml:"name"`
	Transparent bool     `yaml:"transparent"`
	EmitsLight  bool     `yaml:"emits_light"`
	GroundCover bool     `yaml:"ground_cover"`
	Rampable    bool     `yaml:"rampable"`
	RampDepth   float32  `yaml:"ramp_depth"`
	Tint        [4]uint8 `yaml:"tint"`

	Tiles tileTriple `yaml:"tiles"`

	Transition      string `yaml:"transition"` // "", "horizontal", "directional"
	TransitionTiles []int  `yaml:"transition_tiles"`
	FrontBackTiles  []int  `yaml:"front_back_tiles"`
	LeftRightTiles  []int  `yaml:"left_right_tiles"`
	FringeTiles     []int  `yaml:"fringe_tiles"`
}

// tileTriple names the three atlas tiles of a plain cube material.
type tileTriple struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Side   int `yaml:"side"`
}

// LoadLibrary reads a YAML material library file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading material library %s: %w", path, err)
	}
	return ParseLibrary(data)
}

// ParseLibrary builds a library from YAML bytes.
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing material library: %w", err)
	}
	if file.Atlas.TilesPerRow <= 0 {
		return nil, fmt.Errorf("atlas tiles_per_row must be positive, got %d", file.Atlas.TilesPerRow)
	}

	atlas := Atlas{TilesPerRow: file.Atlas.TilesPerRow, Inset: file.Atlas.Inset}

	defs := make([]*Definition, 0, len(file.Materials))
	for i := range file.Materials {
		d, err := file.Materials[i].build(atlas)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return NewLibrary(atlas, defs, file.Bedrock, file.UnexploredTile)
}

func (m *materialFile) build(atlas Atlas) (*Definition, error) {
	d := &Definition{
		ID:          grid.MaterialID(m.ID),
		Name:        m.Name,
		Transparent: m.Transparent,
		EmitsLight:  m.EmitsLight,
		GroundCover: m.GroundCover,
		Rampable:    m.Rampable,
		RampDepth:   m.RampDepth,
		Tint:        m.Tint,
	}
	if d.Tint == ([4]uint8{}) {
		d.Tint = [4]uint8{255, 255, 255, 255}
	}

	top := atlas.TileRect(m.Tiles.Top)
	bottom := atlas.TileRect(m.Tiles.Bottom)
	side := atlas.TileRect(m.Tiles.Side)
	d.FaceUVs = [grid.FaceCount]UVRect{
		grid.FaceTop:    top,
		grid.FaceBottom: bottom,
		grid.FaceFront:  side,
		grid.FaceBack:   side,
		grid.FaceLeft:   side,
		grid.FaceRight:  side,
	}

	switch m.Transition {
	case "":
		d.Transition = TransitionNone
	case "horizontal":
		d.Transition = TransitionHorizontal
		if err := fillTiles(&d.TransitionTiles, m.TransitionTiles, atlas, m.Name, "transition_tiles"); err != nil {
			return nil, err
		}
	case "directional":
		d.Transition = TransitionDirectional
		if err := fillTiles(&d.FrontBackTiles, m.FrontBackTiles, atlas, m.Name, "front_back_tiles"); err != nil {
			return nil, err
		}
		if err := fillTiles(&d.LeftRightTiles, m.LeftRightTiles, atlas, m.Name, "left_right_tiles"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("material %q: unknown transition mode %q", m.Name, m.Transition)
	}

	if m.GroundCover {
		if len(m.FringeTiles) != 8 {
			return nil, fmt.Errorf("material %q: ground cover needs 8 fringe_tiles, got %d", m.Name, len(m.FringeTiles))
		}
		for i, tile := range m.FringeTiles {
			d.FringeTiles[i] = atlas.TileRect(tile)
		}
	}

	return d, nil
}

func fillTiles(dst *[16]UVRect, src []int, atlas Atlas, name, field string) error {
	if len(src) != 16 {
		return fmt.Errorf("material %q: %s needs 16 entries, got %d", name, field, len(src))
	}
	for i, tile := range src {
		dst[i] = atlas.TileRect(tile)
	}
	return nil
}
