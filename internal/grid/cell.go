package grid

// MaterialID names a material in the external material library.
// MaterialNone marks an empty cell.
type MaterialID uint16

const MaterialNone MaterialID = 0

// CellFlags holds per-cell boolean state.
type CellFlags uint8

const (
	// FlagExplored marks a cell revealed to the player. Unexplored terrain
	// renders obscured.
	FlagExplored CellFlags = 1 << iota
	// FlagHidden marks a cell excluded from view; neighbors treat it like air.
	FlagHidden
)

// Cell is one arena record. Cells are value types owned by their chunk;
// the mesh builder reads them through handles and mutates only Ramp.
type Cell struct {
	Material MaterialID
	Flags    CellFlags
	Ramp     RampType
	Sun      uint8
}

// Empty reports whether the cell holds no material.
func (c Cell) Empty() bool { return c.Material == MaterialNone }

// RampType is a bitset over the four top corners marking which corners are
// pulled down to form a slope.
type RampType uint8

const (
	RampNone       RampType = 0
	RampFrontLeft  RampType = 1 << 0
	RampFrontRight RampType = 1 << 1
	RampBackLeft   RampType = 1 << 2
	RampBackRight  RampType = 1 << 3
	RampAll        RampType = 15
)

// cornerRampBit maps top corners to their ramp bit; zero for bottom corners.
var cornerRampBit = [CornerCount]RampType{
	CornerTopFrontLeft:  RampFrontLeft,
	CornerTopFrontRight: RampFrontRight,
	CornerTopBackLeft:   RampBackLeft,
	CornerTopBackRight:  RampBackRight,
}

// Has reports whether the given top corner is flagged as lowered.
func (r RampType) Has(c Corner) bool {
	return r&cornerRampBit[c] != 0
}

// CornerBit returns the ramp bit for a top corner, RampNone otherwise.
func CornerBit(c Corner) RampType {
	return cornerRampBit[c]
}
