package mqrtree

import "fmt"

// InvariantError reports an internal invariant breach — the only kind of
// error this package considers fatal and non-recoverable. After an
// InvariantError, the tree that raised it is in an undefined state and
// must not be used again.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("mqrtree: %s: %s", e.Op, e.Detail)
}
