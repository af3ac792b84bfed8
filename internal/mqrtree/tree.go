// Package mqrtree implements the MQR-Tree: an in-memory two-dimensional
// spatial index over axis-aligned bounding boxes. Every node, leaf or
// internal, has exactly five quadrant slots (NW, NE, SW, SE, CENTER) whose
// occupancy is driven by the position of a child's centroid relative to
// the parent's MBR centroid. This yields zero inter-child MBR overlap for
// point data, at the cost of a tree that is not height-balanced and that
// requires rebalancing (shift-detection and requeue) on every insertion.
//
// A Tree is not safe for concurrent use; callers must serialize access
// externally (insertion and search must not run concurrently with each
// other or themselves).
package mqrtree

import (
	"fmt"

	"github.com/444lessio/mqrtree/internal/geom"
	"github.com/samber/lo"
)

// Tree is an MQR-Tree indexing payloads of type T by their axis-aligned
// envelope. The zero value is ready to use.
type Tree[T any] struct {
	root *node[T]
	size int
}

// New returns an empty Tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Insert adds payload under env to the tree, restoring all MQR-Tree
// invariants before returning. env is defensively copied; the caller's
// copy may be mutated afterward without affecting the tree.
//
// Insert returns a caller-input error if env is malformed (max < min), or
// an *InvariantError if the insertion cascade exceeds the internal
// rebalancing-iteration cap. After an *InvariantError the tree must not be
// used again.
func (t *Tree[T]) Insert(payload T, env geom.Envelope) error {
	if env.MinX > env.MaxX || env.MinY > env.MaxY {
		return fmt.Errorf("mqrtree: malformed envelope: %+v", env)
	}

	e := newLeafEntry(payload, env)
	if t.root == nil {
		t.root = newNode[T](nil)
	}

	st := &insertState{}
	if err := insertInto(t.root, e, st); err != nil {
		return err
	}
	t.size++
	return nil
}

// Search returns every payload whose envelope intersects query. Output
// order is unspecified. Searching an empty tree returns an empty slice,
// never an error.
func (t *Tree[T]) Search(query geom.Envelope) []T {
	if t.root == nil {
		return []T{}
	}
	return search(t.root, query, make([]T, 0))
}

// KNN returns up to k payloads whose leaf-envelope centroids are closest
// to point under Euclidean distance, ordered by increasing distance. k
// must be >= 1. Querying an empty tree returns an empty slice.
func (t *Tree[T]) KNN(point geom.Point, k int) ([]T, error) {
	if k <= 0 {
		return nil, fmt.Errorf("mqrtree: k must be >= 1, got %d", k)
	}
	if t.root == nil {
		return []T{}, nil
	}
	return knnSearch(t.root, point, k), nil
}

// Len returns the number of payloads ever successfully inserted.
func (t *Tree[T]) Len() int {
	return t.size
}

// Bounds returns the envelope covering every indexed payload, and false if
// the tree is empty.
func (t *Tree[T]) Bounds() (geom.Envelope, bool) {
	if t.root == nil {
		return geom.Envelope{}, false
	}
	return t.root.mbr, true
}

// Item pairs a payload with the envelope it should be indexed under, for
// use with BulkInsert.
type Item[T any] struct {
	Payload T
	Env     geom.Envelope
}

// BulkInsert inserts items one at a time: the MQR-Tree has no dedicated
// bulk-loading algorithm, so every insertion goes through the same
// per-item routing and rebalancing as a standalone Insert call. keyFn
// identifies duplicate rectangles so a batch that
// re-submits the same (payload, envelope) pair — as a bulk JSONL load
// re-run after a partial failure might — doesn't pay for a second,
// wasted CENTER-chain insertion.
func (t *Tree[T]) BulkInsert(items []Item[T], keyFn func(Item[T]) string) error {
	for _, it := range lo.UniqBy(items, keyFn) {
		if err := t.Insert(it.Payload, it.Env); err != nil {
			return err
		}
	}
	return nil
}
