package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/deepholm/voxelmesh/internal/grid"
)

// FaceVertex is one template vertex of a unit-cube face: its offset from the
// cell origin, the cube corner it sits on (ramp displacement keys off this),
// and which corner of the UV rect it samples.
type FaceVertex struct {
	Offset mgl32.Vec3
	Corner grid.Corner
	UVIdx  int
}

// FaceTemplate is the canonical geometry of one cube face. Indices is the
// standard diagonal split; FlippedIndices is the alternate split used when
// the lighting quad-flip heuristic fires.
type FaceTemplate struct {
	Vertices       [4]FaceVertex
	Indices        [6]uint32
	FlippedIndices [6]uint32
}

var straight = [6]uint32{0, 1, 2, 0, 2, 3}
var flipped = [6]uint32{1, 2, 3, 1, 3, 0}

// faces holds the template for each face direction. The vertex windings are
// consistent across faces so the consumer can cull uniformly.
var faces = [grid.FaceCount]FaceTemplate{
	grid.FaceTop: {
		Vertices: [4]FaceVertex{
			{mgl32.Vec3{0, 1, 1}, grid.CornerTopFrontLeft, 0},
			{mgl32.Vec3{1, 1, 1}, grid.CornerTopFrontRight, 1},
			{mgl32.Vec3{1, 1, 0}, grid.CornerTopBackRight, 2},
			{mgl32.Vec3{0, 1, 0}, grid.CornerTopBackLeft, 3},
		},
		Indices:        straight,
		FlippedIndices: flipped,
	},
	grid.FaceBottom: {
		Vertices: [4]FaceVertex{
			{mgl32.Vec3{0, 0, 0}, grid.CornerBottomBackLeft, 0},
			{mgl32.Vec3{1, 0, 0}, grid.CornerBottomBackRight, 1},
			{mgl32.Vec3{1, 0, 1}, grid.CornerBottomFrontRight, 2},
			{mgl32.Vec3{0, 0, 1}, grid.CornerBottomFrontLeft, 3},
		},
		Indices:        straight,
		FlippedIndices: flipped,
	},
	grid.FaceFront: {
		Vertices: [4]FaceVertex{
			{mgl32.Vec3{0, 0, 1}, grid.CornerBottomFrontLeft, 0},
			{mgl32.Vec3{1, 0, 1}, grid.CornerBottomFrontRight, 1},
			{mgl32.Vec3{1, 1, 1}, grid.CornerTopFrontRight, 2},
			{mgl32.Vec3{0, 1, 1}, grid.CornerTopFrontLeft, 3},
		},
		Indices:        straight,
		FlippedIndices: flipped,
	},
	grid.FaceBack: {
		Vertices: [4]FaceVertex{
			{mgl32.Vec3{1, 0, 0}, grid.CornerBottomBackRight, 0},
			{mgl32.Vec3{0, 0, 0}, grid.CornerBottomBackLeft, 1},
			{mgl32.Vec3{0, 1, 0}, grid.CornerTopBackLeft, 2},
			{mgl32.Vec3{1, 1, 0}, grid.CornerTopBackRight, 3},
		},
		Indices:        straight,
		FlippedIndices: flipped,
	},
	grid.FaceLeft: {
		Vertices: [4]FaceVertex{
			{mgl32.Vec3{0, 0, 0}, grid.CornerBottomBackLeft, 0},
			{mgl32.Vec3{0, 0, 1}, grid.CornerBottomFrontLeft, 1},
			{mgl32.Vec3{0, 1, 1}, grid.CornerTopFrontLeft, 2},
			{mgl32.Vec3{0, 1, 0}, grid.CornerTopBackLeft, 3},
		},
		Indices:        straight,
		FlippedIndices: flipped,
	},
	grid.FaceRight: {
		Vertices: [4]FaceVertex{
			{mgl32.Vec3{1, 0, 1}, grid.CornerBottomFrontRight, 0},
			{mgl32.Vec3{1, 0, 0}, grid.CornerBottomBackRight, 1},
			{mgl32.Vec3{1, 1, 0}, grid.CornerTopBackRight, 2},
			{mgl32.Vec3{1, 1, 1}, grid.CornerTopFrontRight, 3},
		},
		Indices:        straight,
		FlippedIndices: flipped,
	},
}

// Face returns the template for a face direction.
func Face(f grid.Face) *FaceTemplate {
	return &faces[f]
}
