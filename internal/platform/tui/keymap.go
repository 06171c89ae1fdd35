package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/meteorfall/internal/core"
)

// DefaultReleaseAfter is how long a held movement key may go without a
// repeat before it is treated as released.
const DefaultReleaseAfter = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionSpace, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns the mapped action and true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) (core.Action, bool) {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action, isQuit
}

// ReleaseTracker synthesizes key release events for terminals, which only
// report key presses. A held key keeps repeating; once no repeat has arrived
// for the release window the key counts as released.
type ReleaseTracker struct {
	after time.Duration
	held  map[core.Action]time.Time
}

// NewReleaseTracker creates a tracker with the given release window.
func NewReleaseTracker(after time.Duration) *ReleaseTracker {
	if after <= 0 {
		after = DefaultReleaseAfter
	}
	return &ReleaseTracker{
		after: after,
		held:  make(map[core.Action]time.Time),
	}
}

// Press records a press of a tracked movement action at now.
// Pressing one direction drops the other without a release event.
func (r *ReleaseTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(r.held, core.ActionRight)
	case core.ActionRight:
		delete(r.held, core.ActionLeft)
	default:
		return
	}
	r.held[a] = now
}

// Expire adds a release to frame for every held action whose last press is
// older than the release window.
func (r *ReleaseTracker) Expire(now time.Time, frame *core.InputFrame) {
	for a, last := range r.held {
		if now.Sub(last) >= r.after {
			frame.Release(a)
			delete(r.held, a)
		}
	}
}

// Held reports whether a is currently held.
func (r *ReleaseTracker) Held(a core.Action) bool {
	_, ok := r.held[a]
	return ok
}

// Reset forgets every held key.
func (r *ReleaseTracker) Reset() {
	clear(r.held)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
