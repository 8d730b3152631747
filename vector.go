// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pcol

import (
	"iter"
	"strings"

	"github.com/halfling/pcol/internal/vecnode"
)

// Vector is a persistent, indexed sequence backed by a 32-ary radix
// tree with an editable tail, the same shape gaissmai/bart uses for its
// prefix trie: every mutator clones only the nodes on the path it
// touches, sharing every other subtree with the version it was derived
// from.
//
// The backing structure is the quadruple (offset, totalSize, root,
// depth, tail): offset counts logical positions whose slots have been
// nulled out by a left-prune (LastN) that couldn't safely reindex the
// tree, and totalSize is the size of that backing structure, so the
// user-visible Size is totalSize-offset. Every index in [0, offset) is
// unreachable from the public API.
type Vector[E comparable] struct {
	offset    int
	totalSize int
	depth     int // multiple of 5; 0 means root is a leaf or root is nil
	root      *vecnode.Node[E]
	tail      []E
}

// EmptyVector returns a zero-length Vector.
func EmptyVector[E comparable]() *Vector[E] {
	return &Vector[E]{}
}

// VectorOf builds a Vector containing vals in order.
func VectorOf[E comparable](vals ...E) *Vector[E] {
	v := EmptyVector[E]()
	for _, e := range vals {
		v = v.Add(e)
	}
	return v
}

func treeSize(n int) int {
	if n <= 32 {
		return 0
	}
	return (n - 1) &^ 31
}

// Size returns the number of elements.
func (v *Vector[E]) Size() int { return v.totalSize - v.offset }

// IsEmpty reports whether the vector has no elements.
func (v *Vector[E]) IsEmpty() bool { return v.Size() == 0 }

// Get returns the element at index, panicking with *OutOfRangeError if
// index is outside [0, Size()).
func (v *Vector[E]) Get(index int) E {
	size := v.Size()
	if index < 0 || index >= size {
		outOfRange(index, size)
	}
	real := index + v.offset
	ts := treeSize(v.totalSize)
	if real >= ts {
		return v.tail[real-ts]
	}
	return vecnode.Get(v.root, v.depth, real)
}

// Add appends val, returning the new version. Amortized O(1). Panics
// with *CapacityExhaustedError if the append would overflow the
// representable 32-bit size.
func (v *Vector[E]) Add(val E) *Vector[E] {
	if v.totalSize == 1<<31-1 {
		panic(&CapacityExhaustedError{})
	}
	if len(v.tail) < 32 {
		tail := append(append([]E(nil), v.tail...), val)
		return &Vector[E]{offset: v.offset, totalSize: v.totalSize + 1, depth: v.depth, root: v.root, tail: tail}
	}
	newRoot, newDepth := vecnode.PushTail(v.root, v.totalSize, v.depth, v.tail)
	return &Vector[E]{offset: v.offset, totalSize: v.totalSize + 1, depth: newDepth, root: newRoot, tail: []E{val}}
}

// Set replaces the element at index, panicking with *OutOfRangeError if
// index is outside [0, Size()]. index == Size() is an alias for Add.
// Setting a value == to the value already stored returns the receiver
// unchanged, per the identity shortcut in spec section 8.
func (v *Vector[E]) Set(index int, val E) *Vector[E] {
	size := v.Size()
	if index < 0 || index > size {
		outOfRange(index, size)
	}
	if index == size {
		return v.Add(val)
	}
	if v.Get(index) == val {
		return v
	}
	real := index + v.offset
	ts := treeSize(v.totalSize)
	if real >= ts {
		tail := append([]E(nil), v.tail...)
		tail[real-ts] = val
		return &Vector[E]{offset: v.offset, totalSize: v.totalSize, depth: v.depth, root: v.root, tail: tail}
	}
	newRoot := vecnode.SetClone(v.root, v.depth, real, val)
	return &Vector[E]{offset: v.offset, totalSize: v.totalSize, depth: v.depth, root: newRoot, tail: v.tail}
}

// First returns the element at index 0, panicking with
// *OutOfRangeError if the vector is empty.
func (v *Vector[E]) First() E { return v.Get(0) }

// Last returns the element at index Size()-1, panicking with
// *OutOfRangeError if the vector is empty.
func (v *Vector[E]) Last() E { return v.Get(v.Size() - 1) }

// FirstN returns a Vector holding the first n elements, panicking with
// *OutOfRangeError if n is outside [0, Size()]. Preserves offset.
func (v *Vector[E]) FirstN(n int) *Vector[E] {
	size := v.Size()
	if n < 0 || n > size {
		outOfRange(n, size)
	}
	if n == size {
		return v
	}
	if n == 0 {
		return EmptyVector[E]()
	}
	ts := treeSize(v.totalSize)
	realCut := n - 1 + v.offset
	if realCut >= ts {
		tail := append([]E(nil), v.tail[:realCut-ts+1]...)
		return &Vector[E]{offset: v.offset, totalSize: realCut + 1, depth: v.depth, root: v.root, tail: tail}
	}
	newRoot, newDepth, tail := vecnode.PruneRight(v.root, v.depth, realCut)
	return &Vector[E]{offset: v.offset, totalSize: realCut + 1, depth: newDepth, root: newRoot, tail: tail}
}

// LastN returns a Vector holding the final n elements, panicking with
// *OutOfRangeError if n is outside [0, Size()]. When the cut falls
// inside the tree and the tree can't be safely reindexed without
// disturbing an untouched right subtree, the result carries a non-zero
// offset recording how many of its leading tree slots are nulled-out
// placeholders, per spec section 3.1.
func (v *Vector[E]) LastN(n int) *Vector[E] {
	size := v.Size()
	if n < 0 || n > size {
		outOfRange(n, size)
	}
	if n == size {
		return v
	}
	if n == 0 {
		return EmptyVector[E]()
	}
	targetOffset := v.offset + (size - n)
	ts := treeSize(v.totalSize)
	if targetOffset >= ts {
		tail := append([]E(nil), v.tail[targetOffset-ts:]...)
		return &Vector[E]{totalSize: n, tail: tail}
	}
	newRoot, newDepth, accOffset := vecnode.PruneLeft(v.root, v.depth, targetOffset)
	return &Vector[E]{offset: accOffset, totalSize: accOffset + n, depth: newDepth, root: newRoot, tail: v.tail}
}

// Remove dequeues the front element, returning the remaining
// Size()-1 elements: Vector doubles as the Queue described in spec
// section 6, where Add appends at the tail and Remove takes from the
// head. Panics with *OutOfRangeError if the vector is empty.
func (v *Vector[E]) Remove() *Vector[E] {
	return v.LastN(v.Size() - 1)
}

// RemoveN dequeues the front k elements, equivalent to LastN(Size()-k).
func (v *Vector[E]) RemoveN(k int) *Vector[E] {
	return v.LastN(v.Size() - k)
}

// IndexOf returns the first index at which val appears, or -1.
func (v *Vector[E]) IndexOf(val E) int {
	i := 0
	for e := range v.All() {
		if e == val {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the last index at which val appears, or -1.
func (v *Vector[E]) LastIndexOf(val E) int {
	found := -1
	i := 0
	for e := range v.All() {
		if e == val {
			found = i
		}
		i++
	}
	return found
}

// Contains reports whether val appears anywhere in the vector.
func (v *Vector[E]) Contains(val E) bool {
	return v.IndexOf(val) >= 0
}

// ContainsAll reports whether every element of other appears in v.
func (v *Vector[E]) ContainsAll(other *Vector[E]) bool {
	for e := range other.All() {
		if !v.Contains(e) {
			return false
		}
	}
	return true
}

// All iterates every element in order: a logical index advances from
// offset to totalSize, fetching a whole leaf or tail array each time it
// crosses a 32-slot boundary, per spec section 3.1.
func (v *Vector[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		ts := treeSize(v.totalSize)
		i := v.offset
		for i < ts {
			base := i &^ 31
			block := vecnode.LeafBlock(v.root, v.depth, i)
			end := base + 32
			for ; i < end; i++ {
				if !yield(block[i-base]) {
					return
				}
			}
		}
		for ; i < v.totalSize; i++ {
			if !yield(v.tail[i-ts]) {
				return
			}
		}
	}
}

// Equal reports whether v and other hold the same elements in the same
// order.
func (v *Vector[E]) Equal(other *Vector[E]) bool {
	if v == other {
		return true
	}
	if v.Size() != other.Size() {
		return false
	}
	next, stop := iter.Pull(other.All())
	defer stop()
	for e := range v.All() {
		o, _ := next()
		if e != o {
			return false
		}
	}
	return true
}

// Hash folds 31*h + hash(e) over every element, starting at 1, per
// spec section 4.3's "Equality and hashing" law for Lists.
func (v *Vector[E]) Hash() uint32 {
	h := uint32(1)
	for e := range v.All() {
		h = 31*h + elemHash(e)
	}
	return h
}

// String renders the vector as "[e0 e1 e2]".
func (v *Vector[E]) String() string {
	var b strings.Builder
	writeElemVisited(stringifyNew(), &b, v)
	return b.String()
}

func (v *Vector[E]) selfLabel() string { return "(this list)" }

func (v *Vector[E]) renderInto(vis *stringifyVisitor, b *strings.Builder) {
	b.WriteByte('[')
	first := true
	for e := range v.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		writeElemVisited(vis, b, e)
	}
	b.WriteByte(']')
}
