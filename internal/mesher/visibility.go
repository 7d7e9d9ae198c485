package mesher

import (
	"github.com/deepholm/voxelmesh/internal/grid"
)

// IsFaceVisible decides whether the face of cell h pointing at neighbor n
// contributes geometry. The checks run cheapest-first; the ramp exposure
// check only applies to side faces.
func (b *Builder) IsFaceVisible(h, n grid.Handle, face grid.Face) bool {
	// Outside the loaded world there is nothing to occlude us.
	if !n.Valid() {
		return true
	}
	if n.Explored() && n.Empty() {
		return true
	}
	if !n.Empty() {
		nd := b.lib.Resolve(n.Material(), n.Explored())
		hd := b.lib.Resolve(h.Material(), h.Explored())
		// A transparent occluder hides nothing behind it, but two
		// transparent cells still cull their shared face.
		if nd.Transparent && !hd.Transparent {
			return true
		}
	}
	if !n.Visible() {
		return true
	}
	if face != grid.FaceTop && face != grid.FaceBottom && !n.Empty() {
		nd := b.lib.Resolve(n.Material(), n.Explored())
		if nd.Rampable && n.Ramp() != grid.RampNone && ShouldDrawFace(face, h.Ramp(), n.Ramp()) {
			return true
		}
	}
	// Unexplored empty neighbors land here: fog renders on top of the
	// neighbor, so the face stays culled.
	return false
}

// cornerPair relates one of our shared-edge top corners to the neighbor's
// corner on the same world position.
type cornerPair struct {
	ours   grid.RampType
	theirs grid.RampType
}

// faceCornerPairs lists, per side face, the two top-corner pairs along the
// shared edge. Top and bottom faces have no entries.
var faceCornerPairs = [grid.FaceCount][2]cornerPair{
	grid.FaceFront: {
		{grid.RampFrontLeft, grid.RampBackLeft},
		{grid.RampFrontRight, grid.RampBackRight},
	},
	grid.FaceBack: {
		{grid.RampBackLeft, grid.RampFrontLeft},
		{grid.RampBackRight, grid.RampFrontRight},
	},
	grid.FaceLeft: {
		{grid.RampFrontLeft, grid.RampFrontRight},
		{grid.RampBackLeft, grid.RampBackRight},
	},
	grid.FaceRight: {
		{grid.RampFrontRight, grid.RampFrontLeft},
		{grid.RampBackRight, grid.RampBackLeft},
	},
}

// ShouldDrawFace reports whether a ramped neighbor exposes our side face: the
// neighbor has lowered a shared-edge corner that we have not, opening a gap
// the face must fill.
func ShouldDrawFace(face grid.Face, ours, theirs grid.RampType) bool {
	if face == grid.FaceTop || face == grid.FaceBottom {
		return false
	}
	for _, p := range faceCornerPairs[face] {
		if theirs&p.theirs != 0 && ours&p.ours == 0 {
			return true
		}
	}
	return false
}

// ShouldRamp reports whether a template corner gets the ramp displacement:
// only top corners carry ramp bits.
func ShouldRamp(corner grid.Corner, r grid.RampType) bool {
	return corner.IsTop() && r.Has(corner)
}
