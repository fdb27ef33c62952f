package core

// Host is the narrow interface the simulation consumes from its environment.
// Implementations are driven by one goroutine; the simulation never calls
// them concurrently.
type Host interface {
	// KeyHeld reports whether the logical key is currently held.
	KeyHeld(k Key) bool

	// ScheduleQuit asks the host to stop the frame loop once the current
	// step and render pass have completed. It is fire-and-forget.
	ScheduleQuit(reason EndReason)
}

// Pointer is an optional host capability for cursor queries. The
// simulation does not use it; hosts expose it for overlays and tooling.
type Pointer interface {
	// Cursor returns the cursor position in field coordinates and whether
	// the cursor is inside the field.
	Cursor() (x, y int, ok bool)

	// MouseButton reports whether button (0 = left, 1 = right) is held.
	MouseButton(button int) bool
}

// FrameHost adapts an InputFrame to the Host interface and records the
// termination request. It is the host used when a game is driven frame by
// frame through the registry.
type FrameHost struct {
	Input  InputFrame
	Reason EndReason
	Quits  int // Number of ScheduleQuit calls received
}

// KeyHeld reports whether the key is held in the current frame.
func (h *FrameHost) KeyHeld(k Key) bool {
	return h.Input.Has(k)
}

// ScheduleQuit records the request.
func (h *FrameHost) ScheduleQuit(reason EndReason) {
	h.Quits++
	if h.Reason == EndNone {
		h.Reason = reason
	}
}
