package mqrtree

import "github.com/444lessio/mqrtree/internal/geom"

// entry is a child record held in one of a node's five slots. It is either
// a leaf (payload + the payload's own envelope) or internal (a pointer to
// a child node + that child's current MBR). Exactly one of payload/child
// is meaningful, selected by isLeaf.
type entry[T any] struct {
	mbr     geom.Envelope
	payload T
	child   *node[T]
	isLeaf  bool
}

func newLeafEntry[T any](payload T, mbr geom.Envelope) entry[T] {
	return entry[T]{isLeaf: true, payload: payload, mbr: mbr.Clone()}
}

func newInternalEntry[T any](child *node[T]) entry[T] {
	return entry[T]{isLeaf: false, child: child, mbr: child.mbr.Clone()}
}

// refreshMBR re-reads an internal entry's MBR from its child node, keeping
// the parent slot's cached bound in step with the child's own: an internal
// entry always carries its child's current MBR, never a stale copy.
func (e *entry[T]) refreshMBR() {
	if !e.isLeaf {
		e.mbr = e.child.mbr.Clone()
	}
}
