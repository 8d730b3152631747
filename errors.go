// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pcol

import "fmt"

// Operations on these cores are pure: there is nothing to roll back, and
// every failure is surfaced immediately to the caller by panicking with
// one of the typed errors below, leaving the receiver unchanged. Recover
// and errors.As to distinguish them, the same way a slice's own
// out-of-range index panics are typically handled.

// OutOfRangeError is panicked by a List/Vector/Stack index or slice
// count outside its valid range.
type OutOfRangeError struct {
	Index, Size int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("pcol: index %d out of range [0:%d]", e.Index, e.Size)
}

// NullKeyError is panicked by a HashMap operation given an absent key.
type NullKeyError struct{}

func (e *NullKeyError) Error() string {
	return "pcol: map key must not be nil"
}

// CapacityExhaustedError is panicked by Vector.Add when the append would
// overflow the 32-bit size representation.
type CapacityExhaustedError struct{}

func (e *CapacityExhaustedError) Error() string {
	return "pcol: vector capacity exhausted"
}

// UnsupportedOperationError is panicked by a mutating call on a
// read-only adapter view.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("pcol: unsupported operation: %s", e.Op)
}

func outOfRange(index, size int) {
	panic(&OutOfRangeError{Index: index, Size: size})
}
