// Package material holds the per-material appearance rules the mesh builder
// consumes: face templates, texture-atlas UV rectangles, ramp depth,
// transparency and light emission flags, ground-cover identity, and the
// transition-texture tables used for autotiling.
package material

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/deepholm/voxelmesh/internal/grid"
)

// UVRect bounds one atlas tile. Min/Max double as the per-vertex UV clamp
// rectangle preventing atlas bleed.
type UVRect struct {
	Min, Max mgl32.Vec2
}

// Corner returns one of the rectangle's corners by index: 0 = (min,min),
// 1 = (max,min), 2 = (max,max), 3 = (min,max).
func (r UVRect) Corner(i int) mgl32.Vec2 {
	switch i {
	case 0:
		return r.Min
	case 1:
		return mgl32.Vec2{r.Max[0], r.Min[1]}
	case 2:
		return r.Max
	default:
		return mgl32.Vec2{r.Min[0], r.Max[1]}
	}
}

// Atlas describes the texture-atlas layout. Only UV arithmetic lives here;
// the pixel data never reaches this module.
type Atlas struct {
	TilesPerRow int
	// Inset shrinks every tile rect by a fraction of a tile on each edge to
	// keep samples off tile boundaries.
	Inset float32
}

// TileRect returns the UV rectangle of the tile at the given linear index.
func (a Atlas) TileRect(index int) UVRect {
	size := float32(1) / float32(a.TilesPerRow)
	col := index % a.TilesPerRow
	row := index / a.TilesPerRow
	inset := a.Inset * size
	return UVRect{
		Min: mgl32.Vec2{float32(col)*size + inset, float32(row)*size + inset},
		Max: mgl32.Vec2{float32(col+1)*size - inset, float32(row+1)*size - inset},
	}
}

// TransitionMode selects how a material autotiles against its neighbors.
type TransitionMode uint8

const (
	// TransitionNone uses the static per-face UV set.
	TransitionNone TransitionMode = iota
	// TransitionHorizontal picks one 0-15 transition tile for the top face
	// from the four orthogonal neighbors.
	TransitionHorizontal
	// TransitionDirectional computes independent 0-15 indices for the
	// front/back and left/right face pairs.
	TransitionDirectional
)

// Definition is one material's full appearance record.
type Definition struct {
	ID          grid.MaterialID
	Name        string
	Transparent bool
	EmitsLight  bool
	GroundCover bool
	Rampable    bool
	RampDepth   float32
	Tint        [4]uint8

	FaceUVs [grid.FaceCount]UVRect

	Transition      TransitionMode
	TransitionTiles [16]UVRect // horizontal mode, top face
	FrontBackTiles  [16]UVRect // directional mode
	LeftRightTiles  [16]UVRect

	// FringeTiles are the ground-cover edge tiles, indexed by the fixed
	// 8-direction enumeration (4 orthogonal then 4 diagonal).
	FringeTiles [8]UVRect
}

// Library resolves material IDs to definitions. A missing definition for an
// explored cell is a fail-fast invariant violation; unexplored cells fall
// back to the bedrock appearance so hidden terrain stays uniform.
type Library struct {
	atlas      Atlas
	defs       map[grid.MaterialID]*Definition
	byName     map[string]*Definition
	bedrock    *Definition
	unexplored UVRect
}

// NewLibrary builds a library from definitions. bedrockName selects the
// fallback appearance for unexplored terrain; unexploredTile is the reserved
// atlas tile marking fully obscured cells.
func NewLibrary(atlas Atlas, defs []*Definition, bedrockName string, unexploredTile int) (*Library, error) {
	l := &Library{
		atlas:      atlas,
		defs:       make(map[grid.MaterialID]*Definition, len(defs)),
		byName:     make(map[string]*Definition, len(defs)),
		unexplored: atlas.TileRect(unexploredTile),
	}
	for _, d := range defs {
		if d.ID == grid.MaterialNone {
			return nil, fmt.Errorf("material %q uses reserved id 0", d.Name)
		}
		if _, dup := l.defs[d.ID]; dup {
			return nil, fmt.Errorf("duplicate material id %d", d.ID)
		}
		if _, dup := l.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate material name %q", d.Name)
		}
		l.defs[d.ID] = d
		l.byName[d.Name] = d
	}
	bedrock, ok := l.byName[bedrockName]
	if !ok {
		return nil, fmt.Errorf("bedrock material %q not defined", bedrockName)
	}
	l.bedrock = bedrock
	return l, nil
}

// Atlas returns the atlas layout the library was built against.
func (l *Library) Atlas() Atlas { return l.atlas }

// Get looks up a definition by ID.
func (l *Library) Get(id grid.MaterialID) (*Definition, bool) {
	d, ok := l.defs[id]
	return d, ok
}

// ByName looks up a definition by name.
func (l *Library) ByName(name string) (*Definition, bool) {
	d, ok := l.byName[name]
	return d, ok
}

// Bedrock returns the fallback definition for unexplored terrain.
func (l *Library) Bedrock() *Definition { return l.bedrock }

// UnexploredTile returns the reserved placeholder tile rect.
func (l *Library) UnexploredTile() UVRect { return l.unexplored }

// Resolve maps a cell's material to its definition. An explored cell with an
// unknown material means the type data upstream is corrupt; there is no
// recovery. Unexplored cells deliberately obscure as bedrock.
func (l *Library) Resolve(id grid.MaterialID, explored bool) *Definition {
	if d, ok := l.defs[id]; ok {
		return d
	}
	if explored {
		panic(fmt.Sprintf("material: no definition for explored material %d", id))
	}
	return l.bedrock
}
