// Package stringify provides the shared cycle guard used by every
// container's String method: a container that (directly or through a
// chain of other containers) holds itself must not recurse forever
// when rendered.
package stringify

import "github.com/bits-and-blooms/bitset"

// Visitor tracks which container instances are currently being
// rendered on the current call stack. It is built fresh for every
// top-level String() call and threaded through nested renders.
type Visitor struct {
	ids      map[any]uint
	visiting *bitset.BitSet
	next     uint
}

// New returns an empty Visitor.
func New() *Visitor {
	return &Visitor{ids: make(map[any]uint), visiting: bitset.New(64)}
}

// Enter marks self as in-progress and reports whether it was not
// already on the current render path. A false return means self is
// reachable from itself and the caller should render a placeholder
// instead of recursing.
func (v *Visitor) Enter(self any) bool {
	id, ok := v.ids[self]
	if !ok {
		id = v.next
		v.next++
		v.ids[self] = id
	}
	if v.visiting.Test(id) {
		return false
	}
	v.visiting.Set(id)
	return true
}

// Leave unmarks self after rendering completes, so sibling branches
// that legitimately share self (but don't contain it) still render it.
func (v *Visitor) Leave(self any) {
	if id, ok := v.ids[self]; ok {
		v.visiting.Clear(id)
	}
}
