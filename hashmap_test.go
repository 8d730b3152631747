// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashMapEmpty(t *testing.T) {
	t.Parallel()
	m := EmptyHashMap[string, int]()
	assert.Equal(t, 0, m.Size())
	assert.True(t, m.IsEmpty())

	_, ok := m.Get("x")
	assert.False(t, ok)
}

func TestHashMapBulkInsert(t *testing.T) {
	t.Parallel()
	const n = 10_000

	m := EmptyHashMap[int, int]()
	for i := range n {
		m = m.Put(i, i*i)
	}
	require.Equal(t, n, m.Size())

	for i := range n {
		v, ok := m.Get(i)
		require.True(t, ok, "key %d missing", i)
		assert.Equal(t, i*i, v)
	}
}

func TestHashMapOverwrite(t *testing.T) {
	t.Parallel()
	m := EmptyHashMap[string, int]()
	m = m.Put("a", 1)
	m2 := m.Put("a", 2)

	assert.Equal(t, 1, m2.Size())
	v, ok := m2.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	// original version is untouched
	v, ok = m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestHashMapPutSameValueIsIdentity(t *testing.T) {
	t.Parallel()
	m := EmptyHashMap[string, int]().Put("a", 1)
	if got := m.Put("a", 1); got != m {
		t.Error("Put with unchanged value, expected the same instance back")
	}
}

func TestHashMapNullKeyPanics(t *testing.T) {
	t.Parallel()
	m := EmptyHashMap[*int, int]()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(*NullKeyError)
		assert.True(t, ok, "expected *NullKeyError, got %T", r)
	}()
	m.Put(nil, 1)
}

func TestHashMapZeroValueKeyIsNotNull(t *testing.T) {
	t.Parallel()
	// "" and 0 are ordinary, legitimate keys, not the Java-null
	// NullKey models; only a nil pointer/channel/interface is null.
	strMap := EmptyHashMap[string, int]().Put("", 1)
	v, ok := strMap.Get("")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	intMap := EmptyHashMap[int, int]().Put(0, 2)
	v, ok = intMap.Get(0)
	require.True(t, ok)
	assert.Equal(t, 2, v)

	x := 5
	ptrMap := EmptyHashMap[*int, int]().Put(&x, 3)
	v, ok = ptrMap.Get(&x)
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestHashMapRemove(t *testing.T) {
	t.Parallel()
	m := EmptyHashMap[int, int]()
	for i := range 100 {
		m = m.Put(i, i)
	}

	for i := range 50 {
		m = m.Remove(i * 2)
	}
	assert.Equal(t, 50, m.Size())

	for i := range 100 {
		_, ok := m.Get(i)
		if i%2 == 0 {
			assert.False(t, ok, "key %d should have been removed", i)
		} else {
			assert.True(t, ok, "key %d should still be present", i)
		}
	}
}

func TestHashMapRemoveAbsentIsIdentity(t *testing.T) {
	t.Parallel()
	m := EmptyHashMap[string, int]().Put("a", 1)
	if got := m.Remove("nope"); got != m {
		t.Error("Remove of an absent key, expected the same instance back")
	}
}

func TestHashMapEqual(t *testing.T) {
	t.Parallel()
	a := EmptyHashMap[string, int]().Put("x", 1).Put("y", 2)
	b := EmptyHashMap[string, int]().Put("y", 2).Put("x", 1)
	c := EmptyHashMap[string, int]().Put("x", 1)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b), "insertion order should not affect equality")
	assert.False(t, a.Equal(c))
}

func TestHashMapPutAll(t *testing.T) {
	t.Parallel()
	a := EmptyHashMap[string, int]().Put("x", 1).Put("y", 2)
	b := EmptyHashMap[string, int]().Put("y", 20).Put("z", 3)

	merged := a.PutAll(b)
	require.Equal(t, 3, merged.Size())

	v, ok := merged.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = merged.Get("y")
	require.True(t, ok)
	assert.Equal(t, 20, v, "PutAll should overwrite on key collision")

	v, ok = merged.Get("z")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	// original versions untouched
	assert.Equal(t, 2, a.Size())
	assert.Equal(t, 2, b.Size())
}

func TestHashMapHashMatchesEqualLaw(t *testing.T) {
	t.Parallel()
	a := EmptyHashMap[string, int]().Put("x", 1).Put("y", 2)
	b := EmptyHashMap[string, int]().Put("y", 2).Put("x", 1)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash(), "equal maps must hash equal regardless of insertion order")
}

func TestHashMapIterationCoversEverything(t *testing.T) {
	t.Parallel()
	const n = 5000

	m := EmptyHashMap[int, int]()
	for i := range n {
		m = m.Put(i, i)
	}

	seen := make(map[int]bool, n)
	for k, v := range m.All() {
		require.Equal(t, k, v)
		seen[k] = true
	}
	assert.Len(t, seen, n)
}
