// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pcol

import "iter"

// ReadOnlyList wraps a Vector so it can be handed to code that must not
// mutate it: every read delegates to the wrapped Vector, and every
// operation that would produce a new version panics with
// *UnsupportedOperationError instead.
type ReadOnlyList[E comparable] struct {
	v *Vector[E]
}

// AsReadOnly adapts v into a ReadOnlyList view.
func (v *Vector[E]) AsReadOnly() *ReadOnlyList[E] {
	return &ReadOnlyList[E]{v: v}
}

func (r *ReadOnlyList[E]) Size() int                         { return r.v.Size() }
func (r *ReadOnlyList[E]) IsEmpty() bool                     { return r.v.IsEmpty() }
func (r *ReadOnlyList[E]) Get(index int) E                   { return r.v.Get(index) }
func (r *ReadOnlyList[E]) First() E                          { return r.v.First() }
func (r *ReadOnlyList[E]) Last() E                           { return r.v.Last() }
func (r *ReadOnlyList[E]) IndexOf(val E) int                 { return r.v.IndexOf(val) }
func (r *ReadOnlyList[E]) LastIndexOf(val E) int             { return r.v.LastIndexOf(val) }
func (r *ReadOnlyList[E]) Contains(val E) bool               { return r.v.Contains(val) }
func (r *ReadOnlyList[E]) ContainsAll(other *Vector[E]) bool { return r.v.ContainsAll(other) }
func (r *ReadOnlyList[E]) All() iter.Seq[E]                  { return r.v.All() }
func (r *ReadOnlyList[E]) Hash() uint32                      { return r.v.Hash() }
func (r *ReadOnlyList[E]) String() string                    { return r.v.String() }

// Add always panics: a ReadOnlyList has no mutating operations.
func (r *ReadOnlyList[E]) Add(E) *Vector[E] {
	panic(&UnsupportedOperationError{Op: "Add"})
}

// Set always panics: a ReadOnlyList has no mutating operations.
func (r *ReadOnlyList[E]) Set(int, E) *Vector[E] {
	panic(&UnsupportedOperationError{Op: "Set"})
}

// ReadOnlyMap wraps a HashMap so it can be handed to code that must
// not mutate it, the same way ReadOnlyList wraps a Vector.
type ReadOnlyMap[K comparable, V comparable] struct {
	m *HashMap[K, V]
}

// AsReadOnly adapts m into a ReadOnlyMap view.
func (m *HashMap[K, V]) AsReadOnly() *ReadOnlyMap[K, V] {
	return &ReadOnlyMap[K, V]{m: m}
}

func (r *ReadOnlyMap[K, V]) Size() int                       { return r.m.Size() }
func (r *ReadOnlyMap[K, V]) IsEmpty() bool                   { return r.m.IsEmpty() }
func (r *ReadOnlyMap[K, V]) Get(key K) (V, bool)             { return r.m.Get(key) }
func (r *ReadOnlyMap[K, V]) GetOrDefault(key K, def V) V     { return r.m.GetOrDefault(key, def) }
func (r *ReadOnlyMap[K, V]) ContainsKey(key K) bool          { return r.m.ContainsKey(key) }
func (r *ReadOnlyMap[K, V]) All() iter.Seq2[K, V]            { return r.m.All() }
func (r *ReadOnlyMap[K, V]) Keys() iter.Seq[K]               { return r.m.Keys() }
func (r *ReadOnlyMap[K, V]) Values() iter.Seq[V]             { return r.m.Values() }
func (r *ReadOnlyMap[K, V]) Hash() uint32                    { return r.m.Hash() }
func (r *ReadOnlyMap[K, V]) String() string                  { return r.m.String() }

// Put always panics: a ReadOnlyMap has no mutating operations.
func (r *ReadOnlyMap[K, V]) Put(K, V) *HashMap[K, V] {
	panic(&UnsupportedOperationError{Op: "Put"})
}

// PutAll always panics: a ReadOnlyMap has no mutating operations.
func (r *ReadOnlyMap[K, V]) PutAll(*HashMap[K, V]) *HashMap[K, V] {
	panic(&UnsupportedOperationError{Op: "PutAll"})
}

// Remove always panics: a ReadOnlyMap has no mutating operations.
func (r *ReadOnlyMap[K, V]) Remove(K) *HashMap[K, V] {
	panic(&UnsupportedOperationError{Op: "Remove"})
}
