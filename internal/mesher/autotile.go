package mesher

import (
	"github.com/deepholm/voxelmesh/internal/grid"
	"github.com/deepholm/voxelmesh/internal/material"
)

// transitionWeights are the per-direction bit weights of the 16-variant
// autotile index, in Ortho4 order (front, back, left, right). The atlas rows
// are authored against exactly this encoding.
var transitionWeights = [4]int{2, 8, 4, 1}

var (
	allDirs       = []int{0, 1, 2, 3}
	frontBackDirs = []int{0, 1}
	leftRightDirs = []int{2, 3}
)

// transitionIndex sums the weights of the given directions whose same-level
// neighbor holds this cell's exact material.
func (b *Builder) transitionIndex(h grid.Handle, dirs []int) int {
	idx := 0
	for _, di := range dirs {
		d := grid.Ortho4[di]
		n := h.Offset(d.X, 0, d.Z)
		if n.Valid() && n.Material() == h.Material() {
			idx += transitionWeights[di]
		}
	}
	return idx
}

// faceUV picks the UV rect for one face: the autotiled variant when the
// material transitions on that face, the plain face tile otherwise.
func (b *Builder) faceUV(h grid.Handle, def *material.Definition, face grid.Face) material.UVRect {
	switch def.Transition {
	case material.TransitionHorizontal:
		if face == grid.FaceTop {
			return def.TransitionTiles[b.transitionIndex(h, allDirs)]
		}
	case material.TransitionDirectional:
		switch face {
		case grid.FaceFront, grid.FaceBack:
			return def.FrontBackTiles[b.transitionIndex(h, frontBackDirs)]
		case grid.FaceLeft, grid.FaceRight:
			return def.LeftRightTiles[b.transitionIndex(h, leftRightDirs)]
		}
	}
	return def.FaceUVs[face]
}
