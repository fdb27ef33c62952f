package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lavabreak/internal/core"
)

// DefaultKeyHold is how long a key counts as held after its last press
// or autorepeat event.
const DefaultKeyHold = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to simulation keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a simulation key.
// Returns KeyNone for keys the simulation does not use.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Key {
	switch msg.String() {
	case "esc":
		return core.KeyQuit
	case "left", "a", "h":
		return core.KeyLeft
	case "right", "d", "l":
		return core.KeyRight
	}
	return core.KeyNone
}

// IsClose reports whether the key closes the window. Closing is a host
// decision and bypasses the simulation's quit key.
func (km *KeyMapper) IsClose(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// HeldKeys turns key-press events into held state. Terminals report
// presses and autorepeats but no releases, so a key stays held for a
// fixed number of frames after its last event.
type HeldKeys struct {
	hold      int
	remaining map[core.Key]int
}

// NewHeldKeys creates a tracker that holds each key for the given number
// of frames. Values below one are raised to one.
func NewHeldKeys(holdFrames int) *HeldKeys {
	return &HeldKeys{
		hold:      max(holdFrames, 1),
		remaining: make(map[core.Key]int),
	}
}

// HoldFrames converts a hold duration to whole frames at the tick rate,
// rounding up.
func HoldFrames(hold time.Duration, tickRate int) int {
	interval := tickInterval(tickRate)
	if hold <= 0 {
		return 1
	}
	return int((hold + interval - 1) / interval)
}

// Press marks a key as held. Pressing one direction releases the other so
// a quick reversal does not leave both held.
func (h *HeldKeys) Press(k core.Key) {
	if k == core.KeyNone {
		return
	}
	switch k {
	case core.KeyLeft:
		delete(h.remaining, core.KeyRight)
	case core.KeyRight:
		delete(h.remaining, core.KeyLeft)
	}
	h.remaining[k] = h.hold
}

// KeyHeld reports whether the key is held in the current frame.
func (h *HeldKeys) KeyHeld(k core.Key) bool {
	return h.remaining[k] > 0
}

// Advance ends the current frame, aging every held key by one frame.
func (h *HeldKeys) Advance() {
	for k, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, k)
			continue
		}
		h.remaining[k] = n - 1
	}
}

// Release drops all held keys.
func (h *HeldKeys) Release() {
	clear(h.remaining)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
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
		return MenuActionHistory
	}
	return MenuActionNone
}
