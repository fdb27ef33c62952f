package core

// Key is a logical key the simulation can query, abstracted from physical
// key codes.
type Key int

const (
	KeyNone  Key = iota
	KeyQuit      // Esc - end the session
	KeyLeft      // Left arrow, A, H - move paddle left
	KeyRight     // Right arrow, D, L - move paddle right
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyQuit:
		return "Quit"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of keys held during one simulation frame.
type InputFrame struct {
	Held map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(keys ...Key) InputFrame {
	f := InputFrame{Held: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		f.Held[k] = true
	}
	return f
}

// Set marks a key as held for this frame.
func (f *InputFrame) Set(k Key) {
	if f.Held == nil {
		f.Held = make(map[Key]bool)
	}
	f.Held[k] = true
}

// Has returns true if the key is held this frame.
func (f InputFrame) Has(k Key) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[k]
}

// Clear releases all keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
}
