package input

import "testing"

func TestVirtualCursorAccumulates(t *testing.T) {
	in := New()
	in.Move(10, -4)
	in.Move(-3, 1.5)

	x, y, moved := in.Cursor()
	if x != 7 || y != -2.5 {
		t.Errorf("cursor = (%v, %v), want (7, -2.5)", x, y)
	}
	if !moved {
		t.Error("expected moved after Move")
	}
}

func TestKeyStateWithoutUpdate(t *testing.T) {
	in := New()
	if in.KeyDown(26) {
		t.Error("no key should be held before the first Update")
	}
	if in.KeyPressed(26) {
		t.Error("no key should be pressed before the first Update")
	}
	if in.KeyDown(-1) {
		t.Error("negative scancode should never be down")
	}
}
