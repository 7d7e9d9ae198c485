// Package grid stores the voxel world as per-chunk cell arenas and provides
// revalidatable handles into it. Chunks tile the X/Z plane and span the full
// vertical range; a horizontal slice (fixed Y) is the unit of incremental
// mesh caching.
package grid

// Coord is a global cell coordinate.
type Coord struct {
	X, Y, Z int
}

// Offset returns the coordinate displaced by the given deltas.
func (c Coord) Offset(dx, dy, dz int) Coord {
	return Coord{c.X + dx, c.Y + dy, c.Z + dz}
}

// ChunkCoord identifies a chunk in the horizontal chunk lattice.
type ChunkCoord struct {
	X, Z int
}

// Dimensions holds the cell extents of a chunk.
type Dimensions struct {
	X, Y, Z int
}

// Face identifies one of the six cube faces.
type Face uint8

const (
	FaceTop Face = iota
	FaceBottom
	FaceFront // +Z
	FaceBack  // -Z
	FaceLeft  // -X
	FaceRight // +X
	FaceCount
)

// FaceDelta maps a face to the offset of the neighbor behind it.
var FaceDelta = [FaceCount]Coord{
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
	{-1, 0, 0},
	{1, 0, 0},
}

// Corner identifies one of the eight cube corners. Front is +Z, right is +X.
type Corner uint8

const (
	CornerTopFrontLeft Corner = iota
	CornerTopFrontRight
	CornerTopBackLeft
	CornerTopBackRight
	CornerBottomFrontLeft
	CornerBottomFrontRight
	CornerBottomBackLeft
	CornerBottomBackRight
	CornerCount
)

// CornerDelta maps a corner to its {0,1} offsets from the cell origin.
var CornerDelta = [CornerCount]Coord{
	{0, 1, 1},
	{1, 1, 1},
	{0, 1, 0},
	{1, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{0, 0, 0},
	{1, 0, 0},
}

// IsTop reports whether the corner is one of the four top corners.
func (c Corner) IsTop() bool {
	return c <= CornerTopBackRight
}

// Ortho4 enumerates the four horizontal neighbor offsets in the fixed order
// used by autotile weighting: front, back, left, right.
var Ortho4 = [4]Coord{
	{0, 0, 1},
	{0, 0, -1},
	{-1, 0, 0},
	{1, 0, 0},
}

// Diag4 enumerates the four diagonal horizontal neighbor offsets:
// front-left, front-right, back-left, back-right.
var Diag4 = [4]Coord{
	{-1, 0, 1},
	{1, 0, 1},
	{-1, 0, -1},
	{1, 0, -1},
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
