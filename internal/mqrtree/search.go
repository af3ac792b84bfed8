package mqrtree

import "github.com/444lessio/mqrtree/internal/geom"

// search appends to out every leaf payload in n's subtree whose envelope
// intersects query. Every internal entry is descended into unconditionally
// rather than pruned on the child's own MBR first; pruning is sound once
// the node-MBR invariant is held strictly, but this traversal takes the
// conservative always-descend path instead.
func search[T any](n *node[T], query geom.Envelope, out []T) []T {
	if n == nil {
		return out
	}
	for _, e := range n.slots {
		if e.isLeaf {
			if e.mbr.Intersects(query) {
				out = append(out, e.payload)
			}
			continue
		}
		out = search(e.child, query, out)
	}
	return out
}
