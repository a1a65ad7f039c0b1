// Package keytracker turns ebiten's held-key state into edge events.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

// Update records the current state and reports a press that started this frame.
func (k *KeyStateTracker) Update(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	return k.Update(ebiten.IsKeyPressed(key))
}

// Set tracks several keys. Call JustPressed once per key per frame.
type Set struct {
	trackers map[ebiten.Key]*KeyStateTracker
	pressed  func(ebiten.Key) bool
}

// NewSet creates a tracker set reading ebiten's keyboard state
func NewSet() *Set {
	return NewSetWith(ebiten.IsKeyPressed)
}

// NewSetWith creates a tracker set reading key state from pressed
func NewSetWith(pressed func(ebiten.Key) bool) *Set {
	return &Set{
		trackers: make(map[ebiten.Key]*KeyStateTracker),
		pressed:  pressed,
	}
}

// JustPressed reports whether key went down since the previous call
func (s *Set) JustPressed(key ebiten.Key) bool {
	tracker, ok := s.trackers[key]
	if !ok {
		tracker = &KeyStateTracker{}
		s.trackers[key] = tracker
	}
	return tracker.Update(s.pressed(key))
}
