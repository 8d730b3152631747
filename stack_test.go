// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pcol

import "testing"

func TestStackEmpty(t *testing.T) {
	t.Parallel()
	s := EmptyStack[int]()
	if s.Size() != 0 || !s.IsEmpty() {
		t.Error("EmptyStack, expected size 0")
	}
}

func TestStackPushPeekPop(t *testing.T) {
	t.Parallel()
	s := EmptyStack[int]()
	s = s.Push(1).Push(2).Push(3)

	if s.Size() != 3 {
		t.Fatalf("Size, expected 3, got %d", s.Size())
	}
	if s.Peek() != 3 {
		t.Errorf("Peek, expected 3, got %d", s.Peek())
	}

	s = s.Pop()
	if s.Peek() != 2 {
		t.Errorf("Peek after Pop, expected 2, got %d", s.Peek())
	}
	if s.Size() != 2 {
		t.Errorf("Size after Pop, expected 2, got %d", s.Size())
	}
}

func TestStackIsPersistent(t *testing.T) {
	t.Parallel()
	s0 := EmptyStack[int]().Push(1).Push(2)
	s1 := s0.Push(3)
	s2 := s0.Pop()

	if s0.Size() != 2 || s0.Peek() != 2 {
		t.Error("s0 was mutated by a derived Stack's Push/Pop")
	}
	if s1.Size() != 3 || s1.Peek() != 3 {
		t.Error("s1, unexpected shape")
	}
	if s2.Size() != 1 || s2.Peek() != 1 {
		t.Error("s2, unexpected shape")
	}
}

func TestStackPopEmptyPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Pop on empty Stack, expected panic")
		} else if _, ok := r.(*OutOfRangeError); !ok {
			t.Errorf("expected *OutOfRangeError, got %T", r)
		}
	}()
	EmptyStack[int]().Pop()
}

func TestStackPeekEmptyPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Peek on empty Stack, expected panic")
		}
	}()
	EmptyStack[int]().Peek()
}

func TestStackAllOrder(t *testing.T) {
	t.Parallel()
	s := EmptyStack[int]().Push(1).Push(2).Push(3)

	var got []int
	for e := range s.All() {
		got = append(got, e)
	}
	want := []int{3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("All, expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All, expected %v, got %v", want, got)
		}
	}
}

func TestStackEqual(t *testing.T) {
	t.Parallel()
	a := EmptyStack[int]().Push(1).Push(2)
	b := EmptyStack[int]().Push(1).Push(2)
	c := EmptyStack[int]().Push(1).Push(3)

	if !a.Equal(a) || !a.Equal(b) {
		t.Error("Equal, expected equal stacks to compare equal")
	}
	if a.Equal(c) {
		t.Error("Equal, expected differing stacks to compare unequal")
	}
}

func TestStackString(t *testing.T) {
	t.Parallel()
	s := EmptyStack[int]().Push(1).Push(2).Push(3)
	if got, want := s.String(), "[3 2 1]"; got != want {
		t.Errorf("String, expected %q, got %q", want, got)
	}
}

func TestStackGet(t *testing.T) {
	t.Parallel()
	s := StackOf(1, 2, 3) // pushed in order, so top-to-bottom is [3 2 1]
	if s.Get(0) != 3 || s.Get(1) != 2 || s.Get(2) != 1 {
		t.Errorf("Get, unexpected values: %d %d %d", s.Get(0), s.Get(1), s.Get(2))
	}

	for _, idx := range []int{-1, 3, 100} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Get(%d), expected panic", idx)
				} else if _, ok := r.(*OutOfRangeError); !ok {
					t.Errorf("Get(%d), expected *OutOfRangeError, got %T", idx, r)
				}
			}()
			s.Get(idx)
		}()
	}
}

func TestStackSet(t *testing.T) {
	t.Parallel()
	s := StackOf(1, 2, 3) // top-to-bottom: [3 2 1]

	s2 := s.Set(1, 9)
	if s2.Get(0) != 3 || s2.Get(1) != 9 || s2.Get(2) != 1 {
		t.Errorf("Set(1, 9), unexpected: %d %d %d", s2.Get(0), s2.Get(1), s2.Get(2))
	}
	if s.Get(1) != 2 {
		t.Error("Set, expected the receiver to stay unchanged")
	}

	if got := s.Set(0, 3); got != s {
		t.Error("Set with unchanged value, expected the same instance back")
	}

	appended := s.Set(s.Size(), 4)
	if appended.Size() != 4 || appended.Get(3) != 4 {
		t.Errorf("Set(size, v), expected an append, got size %d", appended.Size())
	}
}

func TestStackFirstLastN(t *testing.T) {
	t.Parallel()
	s := StackOf(1, 2, 3, 4, 5) // top-to-bottom: [5 4 3 2 1]

	first := s.FirstN(2)
	if first.Size() != 2 || first.Get(0) != 5 || first.Get(1) != 4 {
		t.Errorf("FirstN(2), expected [5 4], got size %d", first.Size())
	}

	last := s.LastN(2)
	if last.Size() != 2 || last.Get(0) != 2 || last.Get(1) != 1 {
		t.Errorf("LastN(2), expected [2 1], got size %d", last.Size())
	}

	for _, n := range []int{-1, 6} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("FirstN(%d), expected panic", n)
				}
			}()
			s.FirstN(n)
		}()
	}
}

func TestStackAddAllPreservesOrder(t *testing.T) {
	t.Parallel()
	s := EmptyStack[int]().Push(0)
	s = s.AddAll(VectorOf(1, 2, 3).All())

	var got []int
	for e := range s.All() {
		got = append(got, e)
	}
	want := []int{1, 2, 3, 0}
	if len(got) != len(want) {
		t.Fatalf("AddAll, expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AddAll, expected %v, got %v", want, got)
		}
	}
}

func TestStackIndexOfAndContains(t *testing.T) {
	t.Parallel()
	s := StackOf(5, 3, 5) // top-to-bottom: [5 3 5]

	if got := s.IndexOf(5); got != 0 {
		t.Errorf("IndexOf, expected 0, got %d", got)
	}
	if got := s.LastIndexOf(5); got != 2 {
		t.Errorf("LastIndexOf, expected 2, got %d", got)
	}
	if got := s.IndexOf(9); got != -1 {
		t.Errorf("IndexOf(absent), expected -1, got %d", got)
	}
	if !s.Contains(3) || s.Contains(9) {
		t.Error("Contains, unexpected result")
	}
}

func TestStackContainsAll(t *testing.T) {
	t.Parallel()
	s := StackOf(1, 2, 3, 4, 5)
	if !s.ContainsAll(StackOf(2, 4)) {
		t.Error("ContainsAll, expected true for a subset")
	}
	if s.ContainsAll(StackOf(2, 9)) {
		t.Error("ContainsAll, expected false when an element is missing")
	}
}

func TestStackHashMatchesEqualLaw(t *testing.T) {
	t.Parallel()
	a := StackOf(1, 2, 3)
	b := StackOf(1, 2, 3)
	if a.Equal(b) && a.Hash() != b.Hash() {
		t.Error("Hash, expected equal stacks to hash equal")
	}
}

func TestStackRandomizedAgainstSlice(t *testing.T) {
	t.Parallel()

	// model holds elements top-to-bottom, same order as Stack.All.
	var model []int
	s := EmptyStack[int]()

	for round := range 5000 {
		switch round % 4 {
		case 0:
			val := round
			model = append([]int{val}, model...)
			s = s.Push(val)
		case 1:
			if len(model) == 0 {
				continue
			}
			model = model[1:]
			s = s.Pop()
		case 2:
			if len(model) == 0 {
				continue
			}
			idx := round % len(model)
			val := -round
			model[idx] = val
			s = s.Set(idx, val)
		default:
			if len(model) == 0 {
				continue
			}
			n := round % (len(model) + 1)
			if round%2 == 0 {
				model = append([]int(nil), model[:n]...)
				s = s.FirstN(n)
			} else {
				model = append([]int(nil), model[len(model)-n:]...)
				s = s.LastN(n)
			}
		}
	}

	if s.Size() != len(model) {
		t.Fatalf("Size, expected %d, got %d", len(model), s.Size())
	}
	for i, want := range model {
		if got := s.Get(i); got != want {
			t.Fatalf("Get(%d), expected %d, got %d", i, want, got)
		}
	}
}
