package stringify

import "testing"

func TestEnterLeaveTracksCurrentPath(t *testing.T) {
	t.Parallel()

	v := New()
	a, b := new(int), new(int)

	if !v.Enter(a) {
		t.Fatal("Enter, expected true for a not-yet-visited object")
	}
	if v.Enter(a) {
		t.Fatal("Enter, expected false while a is still on the render path")
	}
	if !v.Enter(b) {
		t.Fatal("Enter, expected true for a distinct object")
	}

	v.Leave(a)
	if !v.Enter(a) {
		t.Fatal("Enter, expected true again after Leave")
	}
}

func TestLeaveAllowsSiblingsToShareWithoutContaining(t *testing.T) {
	t.Parallel()

	v := New()
	shared := new(int)

	if !v.Enter(shared) {
		t.Fatal("Enter, expected true")
	}
	v.Leave(shared)

	// a sibling branch that merely shares `shared` (not contains it on
	// the current path) must still be able to render it.
	if !v.Enter(shared) {
		t.Fatal("Enter, expected true for a sibling reference after Leave")
	}
}
