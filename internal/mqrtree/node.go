package mqrtree

import "github.com/444lessio/mqrtree/internal/geom"

// nodeType tags whether a node is holding entries by ordinary quadrant
// routing (Normal) or by centroid coincidence (Center), in which case the
// CENTER slot may chain through a sub-node to hold more than one payload.
type nodeType int

const (
	typeNormal nodeType = iota
	typeCenter
)

// node is one level of the MQR-Tree: an MBR, a type tag, and up to five
// slots (NW, NE, SW, SE, CENTER), each holding at most one entry. A node
// never holds more than five entries regardless of type.
//
// parent is a weak back-reference used only to walk upward when
// invalidating cached leaf counts; it is never used for ownership and must
// never be relied on to keep a node alive.
type node[T any] struct {
	mbr       geom.Envelope
	kind      nodeType
	slots     map[Quadrant]*entry[T]
	parent    *node[T]
	leafCount int
	countDone bool
}

func newNode[T any](parent *node[T]) *node[T] {
	return &node[T]{
		slots:  make(map[Quadrant]*entry[T], 5),
		parent: parent,
	}
}

func (n *node[T]) isEmpty() bool {
	return len(n.slots) == 0
}

// invalidateCount marks this node's cached leaf count (and every ancestor's)
// stale. Called whenever the subtree's leaf population changes.
func (n *node[T]) invalidateCount() {
	for cur := n; cur != nil; cur = cur.parent {
		cur.countDone = false
	}
}

// refreshLeafCount lazily recomputes and caches the number of leaf payloads
// in this node's subtree, refreshed on demand rather than maintained
// incrementally on every insert.
func (n *node[T]) refreshLeafCount() int {
	if n.countDone {
		return n.leafCount
	}
	count := 0
	for _, e := range n.slots {
		if e.isLeaf {
			count++
		} else {
			count += e.child.refreshLeafCount()
		}
	}
	n.leafCount = count
	n.countDone = true
	return count
}
