// Package hamt implements the 32-wide Hash Array Mapped Trie behind
// HashMap: sparse (popcount-compressed), full (32-slot fixed array) and
// hash-collision node variants, dispatched through a small shared
// interface for the two uniformly-addressed kinds, the same split
// gaissmai/bart draws between its bitmap-compressed "bart" node and its
// fixed-256-slot "fast" node.
package hamt

import (
	"github.com/halfling/pcol/internal/bitmap32"
)

// Entry is a single key/value pair stored as a HAMT leaf.
type Entry[K comparable, V comparable] struct {
	Key   K
	Value V
}

// Slot is the tagged contents of one virtual trie position: empty,
// a bare Entry, or a child Node. Exactly one of Entry/Child is non-nil
// for an occupied slot.
type Slot[K comparable, V comparable] struct {
	Entry *Entry[K, V]
	Child any
}

func (s Slot[K, V]) empty() bool { return s.Entry == nil && s.Child == nil }

// uniform is the common primitive set shared by sparseNode and fullNode,
// matching spec 4.3's get/set/insert/remove quartet.
type uniform[K comparable, V comparable] interface {
	getSlot(idx uint32) Slot[K, V]
	setSlot(idx uint32, s Slot[K, V]) any
	insertSlot(level int, idx uint32, e Entry[K, V]) any
	removeSlot(idx uint32) any
}

func idxAt(h uint32, level int) uint32 {
	if level >= 32 {
		return 0
	}
	return (h >> uint(level)) & 31
}

// ---- sparseNode ----

type sparseNode[K comparable, V comparable] struct {
	bitmap bitmap32.Bitmap
	slots  []Slot[K, V]
}

func newSparseSingle[K comparable, V comparable](idx uint32, s Slot[K, V]) *sparseNode[K, V] {
	return &sparseNode[K, V]{bitmap: bitmap32.Bitmap(0).Set(uint(idx)), slots: []Slot[K, V]{s}}
}

func (n *sparseNode[K, V]) getSlot(idx uint32) Slot[K, V] {
	if !n.bitmap.Test(uint(idx)) {
		return Slot[K, V]{}
	}
	return n.slots[n.bitmap.Rank0(uint(idx))]
}

func (n *sparseNode[K, V]) setSlot(idx uint32, s Slot[K, V]) any {
	rank := n.bitmap.Rank0(uint(idx))
	slots := append([]Slot[K, V](nil), n.slots...)
	slots[rank] = s
	return &sparseNode[K, V]{bitmap: n.bitmap, slots: slots}
}

func (n *sparseNode[K, V]) insertSlot(level int, idx uint32, e Entry[K, V]) any {
	if len(n.slots) >= 16 {
		return n.inflate(level, idx, e)
	}
	rank := n.bitmap.Rank0(uint(idx))
	slots := make([]Slot[K, V], 0, len(n.slots)+1)
	slots = append(slots, n.slots[:rank]...)
	slots = append(slots, Slot[K, V]{Entry: &e})
	slots = append(slots, n.slots[rank:]...)
	return &sparseNode[K, V]{bitmap: n.bitmap.Set(uint(idx)), slots: slots}
}

func (n *sparseNode[K, V]) inflate(level int, idx uint32, e Entry[K, V]) any {
	full := &fullNode[K, V]{}
	for i := range 32 {
		if n.bitmap.Test(uint(i)) {
			full.slots[i] = n.slots[n.bitmap.Rank0(uint(i))]
			full.count++
		}
	}
	full.slots[idx] = Slot[K, V]{Entry: &e}
	full.count++
	return full
}

func (n *sparseNode[K, V]) removeSlot(idx uint32) any {
	if len(n.slots) == 1 {
		return nil
	}
	rank := n.bitmap.Rank0(uint(idx))
	slots := make([]Slot[K, V], 0, len(n.slots)-1)
	slots = append(slots, n.slots[:rank]...)
	slots = append(slots, n.slots[rank+1:]...)
	return &sparseNode[K, V]{bitmap: n.bitmap.Clear(uint(idx)), slots: slots}
}

// ---- fullNode ----

type fullNode[K comparable, V comparable] struct {
	slots [32]Slot[K, V]
	count int
}

func (n *fullNode[K, V]) getSlot(idx uint32) Slot[K, V] {
	return n.slots[idx]
}

func (n *fullNode[K, V]) setSlot(idx uint32, s Slot[K, V]) any {
	clone := *n
	clone.slots[idx] = s
	return &clone
}

func (n *fullNode[K, V]) insertSlot(level int, idx uint32, e Entry[K, V]) any {
	clone := *n
	clone.slots[idx] = Slot[K, V]{Entry: &e}
	clone.count++
	return &clone
}

func (n *fullNode[K, V]) removeSlot(idx uint32) any {
	if n.count-1 <= 8 {
		return n.deflate(idx)
	}
	clone := *n
	clone.slots[idx] = Slot[K, V]{}
	clone.count--
	return &clone
}

func (n *fullNode[K, V]) deflate(skip uint32) any {
	sparse := &sparseNode[K, V]{}
	for i := range 32 {
		if uint32(i) == skip || n.slots[i].empty() {
			continue
		}
		sparse.bitmap = sparse.bitmap.Set(uint(i))
		sparse.slots = append(sparse.slots, n.slots[i])
	}
	return sparse
}

// ---- collisionNode ----

type collisionNode[K comparable, V comparable] struct {
	hash    uint32
	entries []Entry[K, V]
}

func collisionGet[K comparable, V comparable](n *collisionNode[K, V], h uint32, key K) (V, bool) {
	var zero V
	if n.hash != h {
		return zero, false
	}
	for _, e := range n.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return zero, false
}

func collisionPut[K comparable, V comparable](n *collisionNode[K, V], level int, h uint32, key K, val V, hashFn func(K) uint32) (any, bool) {
	if n.hash != h {
		idx := idxAt(n.hash, level)
		wrapped := newSparseSingle[K, V](idx, Slot[K, V]{Child: n})
		return put(wrapped, level, h, key, val, hashFn)
	}
	for i, e := range n.entries {
		if e.Key == key {
			if e.Value == val {
				return n, false
			}
			entries := append([]Entry[K, V](nil), n.entries...)
			entries[i] = Entry[K, V]{Key: key, Value: val}
			return &collisionNode[K, V]{hash: n.hash, entries: entries}, false
		}
	}
	entries := append(append([]Entry[K, V](nil), n.entries...), Entry[K, V]{Key: key, Value: val})
	return &collisionNode[K, V]{hash: n.hash, entries: entries}, true
}

func collisionRemove[K comparable, V comparable](n *collisionNode[K, V], h uint32, key K) (any, bool) {
	if n.hash != h {
		return n, false
	}
	for i, e := range n.entries {
		if e.Key != key {
			continue
		}
		if len(n.entries) == 2 {
			rem := n.entries[1-i]
			return &rem, true
		}
		entries := make([]Entry[K, V], 0, len(n.entries)-1)
		entries = append(entries, n.entries[:i]...)
		entries = append(entries, n.entries[i+1:]...)
		return &collisionNode[K, V]{hash: n.hash, entries: entries}, true
	}
	return n, false
}

// createNode builds the node that replaces a single Entry slot once a
// second, distinct key maps to it: a HashCollisionNode if the two keys'
// hashes are equal, otherwise a freshly grown Sparse chain deep enough
// to separate them.
func createNode[K comparable, V comparable](level int, old Entry[K, V], newHash uint32, newEntry Entry[K, V], hashFn func(K) uint32) any {
	oldHash := hashFn(old.Key)
	if oldHash == newHash {
		return &collisionNode[K, V]{hash: newHash, entries: []Entry[K, V]{old, newEntry}}
	}
	var n any = &sparseNode[K, V]{}
	n, _ = put(n, level, oldHash, old.Key, old.Value, hashFn)
	n, _ = put(n, level, newHash, newEntry.Key, newEntry.Value, hashFn)
	return n
}

// ---- dispatch: get/put/remove expressed uniformly over Sparse/Full ----

// Get looks up key under the hash-slice starting at level.
func Get[K comparable, V comparable](root any, level int, h uint32, key K) (V, bool) {
	var zero V
	switch n := root.(type) {
	case nil:
		return zero, false
	case *collisionNode[K, V]:
		return collisionGet(n, h, key)
	case uniform[K, V]:
		idx := idxAt(h, level)
		s := n.getSlot(idx)
		if s.empty() {
			return zero, false
		}
		if s.Entry != nil {
			if s.Entry.Key == key {
				return s.Entry.Value, true
			}
			return zero, false
		}
		return Get[K, V](s.Child, level+5, h, key)
	}
	panic("hamt: logic error, wrong node type")
}

// Put inserts or overwrites key/val, returning the new root and whether
// the key was newly added (as opposed to an overwrite of an existing
// one). If the stored entry is unchanged (same key, == value), the
// original root is returned unchanged by reference.
func Put[K comparable, V comparable](root any, h uint32, key K, val V, hashFn func(K) uint32) (any, bool) {
	return put[K, V](root, 0, h, key, val, hashFn)
}

func put[K comparable, V comparable](root any, level int, h uint32, key K, val V, hashFn func(K) uint32) (any, bool) {
	switch n := root.(type) {
	case nil:
		idx := idxAt(h, level)
		return newSparseSingle[K, V](idx, Slot[K, V]{Entry: &Entry[K, V]{Key: key, Value: val}}), true
	case *collisionNode[K, V]:
		return collisionPut(n, level, h, key, val, hashFn)
	case uniform[K, V]:
		idx := idxAt(h, level)
		s := n.getSlot(idx)
		if s.empty() {
			return n.insertSlot(level, idx, Entry[K, V]{Key: key, Value: val}), true
		}
		if s.Entry != nil {
			old := s.Entry
			if old.Key == key {
				if old.Value == val {
					return n, false
				}
				return n.setSlot(idx, Slot[K, V]{Entry: &Entry[K, V]{Key: key, Value: val}}), false
			}
			combined := createNode(level+5, *old, h, Entry[K, V]{Key: key, Value: val}, hashFn)
			return n.setSlot(idx, Slot[K, V]{Child: combined}), true
		}
		newChild, added := put[K, V](s.Child, level+5, h, key, val, hashFn)
		if sameAny(newChild, s.Child) {
			return n, false
		}
		return n.setSlot(idx, Slot[K, V]{Child: newChild}), added
	}
	panic("hamt: logic error, wrong node type")
}

// Remove deletes key if present, returning the new root (nil if the map
// became empty) and whether anything was removed.
func Remove[K comparable, V comparable](root any, h uint32, key K) (any, bool) {
	return remove[K, V](root, 0, h, key)
}

func remove[K comparable, V comparable](root any, level int, h uint32, key K) (any, bool) {
	switch n := root.(type) {
	case nil:
		return nil, false
	case *collisionNode[K, V]:
		return collisionRemove(n, h, key)
	case uniform[K, V]:
		idx := idxAt(h, level)
		s := n.getSlot(idx)
		if s.empty() {
			return n, false
		}
		if s.Entry != nil {
			if s.Entry.Key != key {
				return n, false
			}
			return n.removeSlot(idx), true
		}
		newChild, removed := remove[K, V](s.Child, level+5, h, key)
		if !removed {
			return n, false
		}
		if newChild == nil {
			return n.removeSlot(idx), true
		}
		if bare, ok := newChild.(*Entry[K, V]); ok {
			return n.setSlot(idx, Slot[K, V]{Entry: bare}), true
		}
		return n.setSlot(idx, Slot[K, V]{Child: newChild}), true
	}
	panic("hamt: logic error, wrong node type")
}

func sameAny(a, b any) bool {
	return a == b
}

// All walks the trie depth-first over non-empty slots, yielding every
// stored entry. Iteration order tracks the current HAMT shape and is
// not a stable contract across versions, per spec section 5.
func All[K comparable, V comparable](root any, yield func(K, V) bool) bool {
	switch n := root.(type) {
	case nil:
		return true
	case *collisionNode[K, V]:
		for _, e := range n.entries {
			if !yield(e.Key, e.Value) {
				return false
			}
		}
		return true
	case *sparseNode[K, V]:
		for _, s := range n.slots {
			if !yieldSlot[K, V](s, yield) {
				return false
			}
		}
		return true
	case *fullNode[K, V]:
		for _, s := range n.slots {
			if s.empty() {
				continue
			}
			if !yieldSlot[K, V](s, yield) {
				return false
			}
		}
		return true
	}
	panic("hamt: logic error, wrong node type")
}

func yieldSlot[K comparable, V comparable](s Slot[K, V], yield func(K, V) bool) bool {
	if s.Entry != nil {
		return yield(s.Entry.Key, s.Entry.Value)
	}
	return All[K, V](s.Child, yield)
}

// compile-time interface satisfaction checks, mirroring gaissmai/bart's
// noderiface.go.
var (
	_ uniform[int, int] = (*sparseNode[int, int])(nil)
	_ uniform[int, int] = (*fullNode[int, int])(nil)
)
