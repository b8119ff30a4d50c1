package core

import "sort"

// KeyCode identifies a physical key, using the browser's numeric key codes
// (37 = left arrow, 39 = right arrow).
type KeyCode int

// KeySet is the set of keys currently held down. Order is irrelevant and
// each code appears at most once. The zero value is an empty, usable set
// for reads; Add allocates on first use.
type KeySet map[KeyCode]struct{}

// NewKeySet creates a set holding the given codes.
func NewKeySet(codes ...KeyCode) KeySet {
	s := make(KeySet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// Add marks a key as held. It reports whether the key was newly added.
func (s *KeySet) Add(c KeyCode) bool {
	if *s == nil {
		*s = make(KeySet)
	}
	if _, ok := (*s)[c]; ok {
		return false
	}
	(*s)[c] = struct{}{}
	return true
}

// Remove releases a key. Removing an absent key is a no-op.
func (s KeySet) Remove(c KeyCode) {
	delete(s, c)
}

// Has reports whether the key is held.
func (s KeySet) Has(c KeyCode) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of held keys.
func (s KeySet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s KeySet) Clone() KeySet {
	clone := make(KeySet, len(s))
	for c := range s {
		clone[c] = struct{}{}
	}
	return clone
}

// Codes returns the held codes in ascending order.
func (s KeySet) Codes() []KeyCode {
	codes := make([]KeyCode, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// KeyTracker turns a stream of key presses into held/released state.
//
// Terminals report auto-repeat presses but no key-up events, so a key is
// considered held until enough ticks pass without another press for it.
// Terminals wait longer before the first repeat than between repeats, so a
// fresh press gets firstHoldTicks and a repeating key gets holdTicks.
type KeyTracker struct {
	firstHoldTicks int
	holdTicks      int
	tick           int
	held           map[KeyCode]heldKey
}

type heldKey struct {
	seen     int
	repeated bool
}

// NewKeyTracker creates a tracker. holdTicks below 1 is treated as 1 and
// firstHoldTicks is never shorter than holdTicks.
func NewKeyTracker(firstHoldTicks, holdTicks int) *KeyTracker {
	hold := Max(holdTicks, 1)
	return &KeyTracker{
		firstHoldTicks: Max(firstHoldTicks, hold),
		holdTicks:      hold,
		held:           make(map[KeyCode]heldKey),
	}
}

// Press records a press (or repeat) of the key on the current tick.
// It reports whether the key was not already held.
func (t *KeyTracker) Press(c KeyCode) bool {
	_, held := t.held[c]
	t.held[c] = heldKey{seen: t.tick, repeated: held}
	return !held
}

// Advance moves the tracker one tick forward and returns the keys that are
// now considered released, in ascending order.
func (t *KeyTracker) Advance() []KeyCode {
	t.tick++
	var released []KeyCode
	for c, k := range t.held {
		limit := t.firstHoldTicks
		if k.repeated {
			limit = t.holdTicks
		}
		if t.tick-k.seen >= limit {
			released = append(released, c)
			delete(t.held, c)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Held reports whether the key is currently considered held.
func (t *KeyTracker) Held(c KeyCode) bool {
	_, ok := t.held[c]
	return ok
}

// Reset forgets all held keys.
func (t *KeyTracker) Reset() {
	t.tick = 0
	clear(t.held)
}
