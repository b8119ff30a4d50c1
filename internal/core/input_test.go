package core

import (
	"reflect"
	"testing"
)

func TestKeySetAddRemove(t *testing.T) {
	var s KeySet

	if s.Has(37) {
		t.Error("empty set should not hold any key")
	}
	if !s.Add(37) {
		t.Error("Add on a nil set should report a new key")
	}
	if s.Add(37) {
		t.Error("adding a held key twice should report false")
	}
	s.Add(39)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}

	s.Remove(37)
	s.Remove(99)
	if s.Has(37) || !s.Has(39) {
		t.Errorf("after Remove(37): codes = %v", s.Codes())
	}
}

func TestKeySetClone(t *testing.T) {
	s := NewKeySet(37, 39)
	clone := s.Clone()
	clone.Remove(37)

	if !s.Has(37) {
		t.Error("Clone should not share storage with the original")
	}
	if got := s.Codes(); !reflect.DeepEqual(got, []KeyCode{37, 39}) {
		t.Errorf("Codes() = %v, expected [37 39]", got)
	}
}

func TestKeyTrackerHoldsUntilTimeout(t *testing.T) {
	tr := NewKeyTracker(3, 3)

	if !tr.Press(39) {
		t.Error("first press should report a new key")
	}

	// Held for two ticks without repeats
	for i := 0; i < 2; i++ {
		if released := tr.Advance(); len(released) != 0 {
			t.Fatalf("tick %d: released %v too early", i, released)
		}
	}

	released := tr.Advance()
	if !reflect.DeepEqual(released, []KeyCode{39}) {
		t.Errorf("Advance() = %v, expected [39]", released)
	}
	if tr.Held(39) {
		t.Error("key should no longer be held")
	}
}

func TestKeyTrackerRepeatExtendsHold(t *testing.T) {
	tr := NewKeyTracker(2, 2)
	tr.Press(37)

	for i := 0; i < 5; i++ {
		tr.Advance()
		if tr.Press(37) {
			t.Fatalf("tick %d: repeat should not report a new key", i)
		}
	}
	if !tr.Held(37) {
		t.Error("repeated key should stay held")
	}
}

func TestKeyTrackerFirstPressWaitsForRepeat(t *testing.T) {
	tr := NewKeyTracker(5, 2)
	tr.Press(39)

	// A fresh press survives the terminal's initial repeat delay
	for i := 0; i < 4; i++ {
		if released := tr.Advance(); len(released) != 0 {
			t.Fatalf("tick %d: released %v before the first repeat", i, released)
		}
	}

	// Once repeating, the shorter hold applies
	tr.Press(39)
	tr.Advance()
	released := tr.Advance()
	if !reflect.DeepEqual(released, []KeyCode{39}) {
		t.Errorf("Advance() = %v, expected [39] after the repeat hold", released)
	}
}

func TestKeyTrackerFirstHoldNeverShorter(t *testing.T) {
	tr := NewKeyTracker(1, 3)
	tr.Press(37)
	tr.Advance()
	tr.Advance()
	if !tr.Held(37) {
		t.Error("first hold below holdTicks should be raised to holdTicks")
	}
}

func TestKeyTrackerMinimumHold(t *testing.T) {
	tr := NewKeyTracker(0, 0)
	tr.Press(37)
	if released := tr.Advance(); len(released) != 1 {
		t.Errorf("holdTicks 0 should behave as 1, released %v", released)
	}
}

func TestKeyTrackerReset(t *testing.T) {
	tr := NewKeyTracker(10, 10)
	tr.Press(37)
	tr.Press(39)
	tr.Reset()

	if tr.Held(37) || tr.Held(39) {
		t.Error("Reset should forget held keys")
	}
	if released := tr.Advance(); len(released) != 0 {
		t.Errorf("nothing should be released after Reset, got %v", released)
	}
}
