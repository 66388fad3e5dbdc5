package tin

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{KeyA, "A"},
		{KeyZ, "Z"},
		{Key0, "0"},
		{Key9, "9"},
		{KeySpace, "Space"},
		{KeyDown, "Down"},
		{KeyUnknown, "Unknown"},
		{keyCount + 3, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'a', KeyA},
		{'Q', KeyQ},
		{'7', Key7},
		{' ', KeySpace},
		{'!', KeyUnknown},
	}
	for _, tt := range tests {
		if got := KeyFromRune(tt.r); got != tt.want {
			t.Errorf("KeyFromRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestEventKinds(t *testing.T) {
	if EventKeyDown.IsMouse() || EventKeyUp.IsMouse() {
		t.Error("key events reported as mouse events")
	}
	for _, k := range []EventKind{EventMouseMoved, EventMouseDown, EventRightMouseUp, EventOtherMouseUp} {
		if !k.IsMouse() {
			t.Errorf("%v.IsMouse() = false", k)
		}
	}
	if got := EventRightMouseDown.String(); got != "RightMouseDown" {
		t.Errorf("String() = %q", got)
	}

	e := MouseEvent(EventMouseDown, Pt(3, 4))
	if e.Kind != EventMouseDown || e.Point != Pt(3, 4) {
		t.Errorf("MouseEvent() = %+v", e)
	}
	if e := KeyEvent(EventKeyUp, KeyEscape); e.Key != KeyEscape {
		t.Errorf("KeyEvent() = %+v", e)
	}
}
