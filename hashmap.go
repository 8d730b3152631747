// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pcol

import (
	"fmt"
	"iter"
	"strings"

	"github.com/halfling/pcol/internal/hamt"
)

// HashMap is a persistent, unordered key/value map backed by a Hash
// Array Mapped Trie: a 32-wide popcount-compressed trie of Sparse
// nodes that inflate to fixed 32-slot Full nodes past 16 live entries
// (and deflate back at 8), falling back to a HashCollisionNode for
// keys whose hashes happen to coincide. The node split mirrors
// gaissmai/bart's bitmap-compressed vs. fixed-array node pair.
type HashMap[K comparable, V comparable] struct {
	size int
	root any
}

// EmptyHashMap returns a zero-entry HashMap.
func EmptyHashMap[K comparable, V comparable]() *HashMap[K, V] {
	return &HashMap[K, V]{}
}

// Size returns the number of key/value pairs.
func (m *HashMap[K, V]) Size() int { return m.size }

// IsEmpty reports whether the map has no entries.
func (m *HashMap[K, V]) IsEmpty() bool { return m.size == 0 }

func (m *HashMap[K, V]) checkKey(key K) {
	if isNull(key) {
		panic(&NullKeyError{})
	}
}

// Get returns the value stored for key and whether it was present.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	m.checkKey(key)
	return hamt.Get[K, V](m.root, 0, hash32(key), key)
}

// GetOrDefault returns the value stored for key, or def if absent.
func (m *HashMap[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// ContainsKey reports whether key has a mapping.
func (m *HashMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put inserts or overwrites the mapping for key, returning the new
// version. Storing a value == to the one already present for key
// returns the receiver unchanged, per the identity shortcut in spec
// section 8.
func (m *HashMap[K, V]) Put(key K, val V) *HashMap[K, V] {
	m.checkKey(key)
	h := hash32(key)
	newRoot, added := hamt.Put[K, V](m.root, h, key, val, hash32[K])
	if newRoot == m.root {
		return m
	}
	size := m.size
	if added {
		size++
	}
	return &HashMap[K, V]{size: size, root: newRoot}
}

// Remove deletes the mapping for key if present, returning the new
// version. Removing an absent key returns the receiver unchanged.
func (m *HashMap[K, V]) Remove(key K) *HashMap[K, V] {
	m.checkKey(key)
	newRoot, removed := hamt.Remove[K, V](m.root, hash32(key), key)
	if !removed {
		return m
	}
	return &HashMap[K, V]{size: m.size - 1, root: newRoot}
}

// PutAll inserts every mapping of other into m, overwriting on key
// collision, and returns the new version.
func (m *HashMap[K, V]) PutAll(other *HashMap[K, V]) *HashMap[K, V] {
	result := m
	for k, v := range other.All() {
		result = result.Put(k, v)
	}
	return result
}

// All iterates every key/value pair. Order tracks the current trie
// shape and is not a stable contract across versions.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		hamt.All[K, V](m.root, yield)
	}
}

// Keys iterates every key.
func (m *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		hamt.All[K, V](m.root, func(k K, _ V) bool { return yield(k) })
	}
}

// Values iterates every value.
func (m *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		hamt.All[K, V](m.root, func(_ K, v V) bool { return yield(v) })
	}
}

// Equal reports whether m and other hold the same key/value pairs,
// independent of trie shape or insertion order.
func (m *HashMap[K, V]) Equal(other *HashMap[K, V]) bool {
	if m == other {
		return true
	}
	if m.size != other.size {
		return false
	}
	for k, v := range m.All() {
		ov, ok := other.Get(k)
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Hash sums hash(key) XOR hash(value) over every entry, per spec
// section 4.3's "Equality and hashing" law for Map: order-independent
// so it agrees across trie shapes that Equal considers equal.
func (m *HashMap[K, V]) Hash() uint32 {
	var h uint32
	for k, v := range m.All() {
		h += elemHash(k) ^ elemHash(v)
	}
	return h
}

// String renders the map as "{k1: v1, k2: v2}".
func (m *HashMap[K, V]) String() string {
	var b strings.Builder
	writeElemVisited(stringifyNew(), &b, m)
	return b.String()
}

func (m *HashMap[K, V]) selfLabel() string { return "(this map)" }

func (m *HashMap[K, V]) renderInto(vis *stringifyVisitor, b *strings.Builder) {
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(b, "%v: ", k)
		writeElemVisited(vis, b, v)
	}
	b.WriteByte('}')
}
