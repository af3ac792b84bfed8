package mqrtree

import "github.com/444lessio/mqrtree/internal/geom"

// Quadrant identifies a child's slot relative to its parent node's MBR
// centroid.
type Quadrant int

const (
	NW Quadrant = iota
	NE
	SW
	SE
	Center
)

func (q Quadrant) String() string {
	switch q {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	case Center:
		return "CENTER"
	default:
		return "INVALID"
	}
}

// findInsertQuad computes the quadrant entryMBR belongs in relative to
// nodeMBR's centroid. Centroids that coincide exactly (bitwise double
// equality) route to Center; this is deliberate and must not be relaxed
// with an epsilon (doing so risks mis-routing distinct points and blowing
// up the CENTER chain). A tie on the x axis resolves east (NE/SE) and a tie
// on the y axis resolves north (NW/NE).
func findInsertQuad(entryMBR, nodeMBR geom.Envelope) Quadrant {
	ec := entryMBR.Centroid()
	nc := nodeMBR.Centroid()

	if ec.X == nc.X && ec.Y == nc.Y {
		return Center
	}

	switch {
	case ec.X < nc.X && ec.Y < nc.Y:
		return SW
	case ec.X < nc.X && ec.Y >= nc.Y:
		return NW
	case ec.X >= nc.X && ec.Y >= nc.Y:
		return NE
	default: // ec.X >= nc.X && ec.Y < nc.Y
		return SE
	}
}
