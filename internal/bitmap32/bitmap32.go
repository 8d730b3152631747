// Package bitmap32 implements a fixed 32-bit popcount-compressed bitmap,
// the occupancy index used by the HAMT sparse node.
//
// Studied github.com/bits-and-blooms/bitset inside out and rewrote the
// single-word, fixed-width slice needed here from scratch.
package bitmap32

import "math/bits"

// Bitmap marks which of the 32 virtual slots of a trie level are occupied.
type Bitmap uint32

// Test reports whether bit i is set. i must be in [0, 32).
func (b Bitmap) Test(i uint) bool {
	return b&(1<<i) != 0
}

// Set returns a bitmap with bit i set.
func (b Bitmap) Set(i uint) Bitmap {
	return b | (1 << i)
}

// Clear returns a bitmap with bit i cleared.
func (b Bitmap) Clear(i uint) Bitmap {
	return b &^ (1 << i)
}

// Rank0 returns the number of set bits strictly below i, which is also the
// packed-array slot a set bit i occupies.
func (b Bitmap) Rank0(i uint) int {
	return bits.OnesCount32(uint32(b) & ((1 << i) - 1))
}

// Popcount returns the number of set bits.
func (b Bitmap) Popcount() int {
	return bits.OnesCount32(uint32(b))
}
