// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pcol

import (
	"reflect"

	"github.com/dolthub/maphash"
)

// Equaler is a generic interface for types that can decide their own
// structural equality instead of the default comparable (==) check.
// Mirrors gaissmai/bart's Equaler[V] override hook.
type Equaler[T any] interface {
	Equal(other T) bool
}

// seed is process-wide so that hashes of equal values are stable within
// a process, matching the "hash is a pure function of the value" law in
// spec section 8, without leaking a predictable fixed seed across
// process restarts (maphash.NewSeed is randomized once at init).
var seed = maphash.NewSeed()

// hash32 returns a 32-bit hash of v, built by folding the 64-bit
// runtime maphash down. The HAMT only ever slices 5 bits at a time from
// at most 7 levels (35 bits), so 32 bits of entropy is enough depth.
func hash32[T comparable](v T) uint32 {
	h := maphash.Hash(seed, v)
	return uint32(h) ^ uint32(h>>32)
}

// isNull reports whether v is a nil pointer, nil channel, or a nil
// interface value — the only "null" a comparable type parameter can
// hold. An ordinary zero value (0, "", a zero-valued struct) is a
// legitimate value, not null, per spec section 7.
func isNull[T comparable](v T) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true // e.g. T = any holding no concrete value
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// elemHash computes the per-element fold hash used by List.Hash:
// hash(e) for a null element is 0, matching "null-safe" element
// comparisons elsewhere in the core.
func elemHash[T comparable](v T) uint32 {
	if isNull(v) {
		return 0
	}
	return hash32(v)
}
