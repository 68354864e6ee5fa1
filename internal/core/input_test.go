package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionSelect)
	if !f.Has(ActionSelect) {
		t.Error("Has(ActionSelect) should be true after Set")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) should be false")
	}

	f.Clear()
	if f.Has(ActionSelect) || !f.Empty() {
		t.Error("Clear should reset actions")
	}
}

func TestInputFramePickAndClick(t *testing.T) {
	f := NewInputFrame()

	f.SetPick(0) // ignored
	if _, ok := f.Pick(); ok {
		t.Error("SetPick(0) should not register a pick")
	}

	f.SetPick(3)
	idx, ok := f.Pick()
	if !ok || idx != 2 {
		t.Errorf("Pick() = (%d, %v), expected (2, true)", idx, ok)
	}

	f.SetClick(7, 4)
	x, y, ok := f.Click()
	if !ok || x != 7 || y != 4 {
		t.Errorf("Click() = (%d, %d, %v), expected (7, 4, true)", x, y, ok)
	}

	clone := f.Clone()
	f.Clear()
	if _, ok := f.Pick(); ok {
		t.Error("Clear should reset pick")
	}
	if _, _, ok := f.Click(); ok {
		t.Error("Clear should reset click")
	}
	if _, ok := clone.Pick(); !ok {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionNextLevel.String() != "NextLevel" {
		t.Errorf("ActionNextLevel.String() = %q", ActionNextLevel.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
