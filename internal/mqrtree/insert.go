package mqrtree

import "github.com/444lessio/mqrtree/internal/geom"

// maxQueueIterations is the soft cap on the number of (quadrant, entry)
// items a single insertion cascade may process before it is treated as a
// rebalancing pathology and aborted.
const maxQueueIterations = 50000

// insertState is threaded through a whole insertion cascade (including the
// recursive descents triggered by shift-detection and slot recursion) so
// the iteration cap is enforced cascade-wide, not per node.
type insertState struct {
	iterations int
}

// queueItem is a pending (quadrant, entry) placement, as seeded by the new
// entry itself and by any children dislodged by an MBR expansion.
type queueItem[T any] struct {
	quad Quadrant
	ent  entry[T]
}

// insertInto inserts e into the subtree rooted at n, restoring all
// invariants before returning.
func insertInto[T any](n *node[T], e entry[T], st *insertState) error {
	if n.isEmpty() {
		// Sentinel state: a single-entry node is trivially "centered";
		// later insertions will reclassify it as needed.
		n.mbr = e.mbr.Clone()
		n.kind = typeCenter
		ne := e
		n.slots[Center] = &ne
		n.invalidateCount()
		return nil
	}

	origMBR := n.mbr
	n.mbr = n.mbr.Union(e.mbr)

	queue := []queueItem[T]{{quad: findInsertQuad(e.mbr, n.mbr), ent: e}}
	queue = findShiftedObjs(n, origMBR, queue)

	if err := drainQueue(n, queue, st); err != nil {
		return err
	}
	n.invalidateCount()
	return nil
}

// findShiftedObjs removes from n, and appends to queue, any child whose
// correct quadrant under n's post-expansion MBR no longer matches its slot.
// If n is CENTER-typed and its centroid moved, every child is removed and
// requeued, and n is reset to Normal.
func findShiftedObjs[T any](n *node[T], origMBR geom.Envelope, queue []queueItem[T]) []queueItem[T] {
	oldCentroid := origMBR.Centroid()
	newCentroid := n.mbr.Centroid()
	if oldCentroid.X == newCentroid.X && oldCentroid.Y == newCentroid.Y {
		return queue
	}

	if n.kind == typeCenter {
		// The entries were held together by centroid coincidence that no
		// longer holds now that the node has moved; re-evaluate all of
		// them under the new MBR.
		for quad, e := range n.slots {
			delete(n.slots, quad)
			queue = append(queue, queueItem[T]{quad: findInsertQuad(e.mbr, n.mbr), ent: *e})
		}
		n.kind = typeNormal
		return queue
	}

	type slotSnapshot[T any] struct {
		quad Quadrant
		ent  *entry[T]
	}
	snapshot := make([]slotSnapshot[T], 0, len(n.slots))
	for quad, e := range n.slots {
		snapshot = append(snapshot, slotSnapshot[T]{quad: quad, ent: e})
	}
	for _, item := range snapshot {
		correct := findInsertQuad(item.ent.mbr, n.mbr)
		if correct == item.quad {
			continue
		}
		delete(n.slots, item.quad)
		queue = append(queue, queueItem[T]{quad: correct, ent: *item.ent})
		if correct == Center {
			n.kind = typeCenter
		}
	}
	return queue
}

// drainQueue processes a node's local placement queue to a fixed point.
func drainQueue[T any](n *node[T], queue []queueItem[T], st *insertState) error {
	for len(queue) > 0 {
		st.iterations++
		if st.iterations > maxQueueIterations {
			return &InvariantError{Op: "insert", Detail: "exceeded insertion-queue iteration cap; rebalancing did not converge"}
		}

		item := queue[0]
		queue = queue[1:]
		quad, e := item.quad, item.ent

		if quad == Center {
			n.kind = typeCenter
			if err := placeAtCenter(n, e, st); err != nil {
				return err
			}
			continue
		}

		existing, occupied := n.slots[quad]
		if !occupied {
			ne := e
			n.slots[quad] = &ne
			continue
		}

		if !existing.isLeaf {
			if err := insertInto(existing.child, e, st); err != nil {
				return err
			}
			existing.refreshMBR()
			continue
		}

		splitSlot(n, quad, existing, e)
	}
	return nil
}

// placeAtCenter writes e into n's CENTER slot, chaining through a fresh
// sub-node when the slot is already occupied by a leaf, or recursing into
// the existing chain when it is already occupied by one.
func placeAtCenter[T any](n *node[T], e entry[T], st *insertState) error {
	existing, occupied := n.slots[Center]
	if !occupied {
		ne := e
		n.slots[Center] = &ne
		return nil
	}

	if !existing.isLeaf {
		if err := insertInto(existing.child, e, st); err != nil {
			return err
		}
		existing.refreshMBR()
		return nil
	}

	child := placeCollidingLeaves(existing, e, n)
	subEntry := newInternalEntry(child)
	n.slots[Center] = &subEntry
	return nil
}

// splitSlot handles a quadrant collision: quad is occupied by a leaf and a
// new entry also wants it. A fresh child node takes both. If the merged
// child's centroid coincides exactly with parent's own centroid (as when
// its two leaves span parent's entire current extent), the resulting entry would
// otherwise violate parent's own quadrant invariant, so parent is promoted
// to CENTER too, the same exemption placeAtCenter's caller already applies
// at the Center slot itself.
func splitSlot[T any](parent *node[T], quad Quadrant, existing *entry[T], newEnt entry[T]) {
	child := placeCollidingLeaves(existing, newEnt, parent)
	if findInsertQuad(child.mbr, parent.mbr) == Center {
		parent.kind = typeCenter
	}
	sub := newInternalEntry(child)
	parent.slots[quad] = &sub
}

// quadrantOrder fixes a deterministic scan order for handing a tied leaf an
// arbitrary free slot in placeCollidingLeaves.
var quadrantOrder = [5]Quadrant{NW, NE, SW, SE, Center}

// firstFreeSlot returns a Quadrant not yet occupied in n.slots. Only ever
// called on a freshly built two-entry node, so a free slot always exists.
func firstFreeSlot[T any](n *node[T]) Quadrant {
	for _, q := range quadrantOrder {
		if _, occupied := n.slots[q]; !occupied {
			return q
		}
	}
	return Center
}

// placeCollidingLeaves resolves a leaf/leaf collision by building a fresh
// child node holding both existing and newEnt, with each leaf's quadrant
// recomputed against the child's own (unioned) MBR rather than the
// parent's.
//
// When that recomputation yields two different quadrants, each leaf is
// placed directly at its own slot. When it yields the same quadrant for
// both, either because their centroids genuinely coincide (Center) or
// because the >= tie-break in findInsertQuad routes two distinct rectangles
// to the same slot against their shared union, the two can never be
// separated by recomputing the same union again: routing the second leaf
// back through insertInto would retry the identical placement forever.
// Invariant 2 exempts CENTER-typed nodes from the findInsertQuad slot
// assignment, so instead the child is marked CENTER and the second leaf
// takes any other free slot directly. A later insert with yet another
// coincident centroid recurses one level deeper through this same
// function, extending the chain by one node per collision rather than
// looping within a single call.
func placeCollidingLeaves[T any](existing *entry[T], newEnt entry[T], parent *node[T]) *node[T] {
	child := newNode[T](parent)
	child.mbr = existing.mbr.Union(newEnt.mbr)

	q1 := findInsertQuad(existing.mbr, child.mbr)
	exCopy := *existing
	child.slots[q1] = &exCopy

	q2 := findInsertQuad(newEnt.mbr, child.mbr)
	neCopy := newEnt
	if q2 != q1 {
		child.slots[q2] = &neCopy
		if q1 == Center || q2 == Center {
			child.kind = typeCenter
		}
		return child
	}

	child.kind = typeCenter
	child.slots[firstFreeSlot(child)] = &neCopy
	return child
}
