package mqrtree

import (
	"container/heap"
	"sort"

	"github.com/444lessio/mqrtree/internal/geom"
)

// knnItem is either a pending subtree (isLeaf == false) or a realized leaf
// candidate, ordered in the priority queue by squared distance from the
// query point.
type knnItem[T any] struct {
	key     float64
	isLeaf  bool
	payload T
	node    *node[T]
}

type knnQueue[T any] []knnItem[T]

func (q knnQueue[T]) Len() int            { return len(q) }
func (q knnQueue[T]) Less(i, j int) bool  { return q[i].key < q[j].key }
func (q knnQueue[T]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *knnQueue[T]) Push(x interface{}) { *q = append(*q, x.(knnItem[T])) }
func (q *knnQueue[T]) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// knnSearch returns up to k payloads closest to point, using a best-first
// traversal: a min-priority queue keyed by squared distance from point to
// the envelope (0 if point lies inside) for subtrees, and by squared
// distance from point to the leaf envelope's *centroid* — not the nearest
// boundary point — for candidates. Scoring leaves by centroid rather than
// boundary is a deliberate simplification; internal nodes still use
// nearest-boundary-point distance so subtree pruning stays sound.
func knnSearch[T any](root *node[T], point geom.Point, k int) []T {
	if root == nil || root.isEmpty() {
		return nil
	}

	if total := root.refreshLeafCount(); k > total {
		k = total
	}

	pq := &knnQueue[T]{{key: root.mbr.DistanceSquaredToPoint(point), node: root}}
	heap.Init(pq)

	var candidates []knnItem[T]

	for pq.Len() > 0 {
		if len(candidates) >= k && (*pq)[0].key >= candidates[k-1].key {
			break
		}

		top := heap.Pop(pq).(knnItem[T])
		if top.isLeaf {
			candidates = append(candidates, top)
			sort.Slice(candidates, func(i, j int) bool { return candidates[i].key < candidates[j].key })
			if len(candidates) > k {
				candidates = candidates[:k]
			}
			continue
		}

		for _, e := range top.node.slots {
			if e.isLeaf {
				centroid := e.mbr.Centroid()
				heap.Push(pq, knnItem[T]{key: geom.DistanceSquared(centroid, point), isLeaf: true, payload: e.payload})
			} else {
				heap.Push(pq, knnItem[T]{key: e.mbr.DistanceSquaredToPoint(point), node: e.child})
			}
		}
	}

	result := make([]T, len(candidates))
	for i, c := range candidates {
		result[i] = c.payload
	}
	return result
}
