package lava

import "github.com/vovakirdan/lavabreak/internal/core"

// Render paints the session into dst. The buffer is cleared first, then
// bodies are painted paddle, ball, lava, bricks in index order; later
// paints win where bodies overlap. Render does not mutate the session.
func (s *Session) Render(dst *core.FrameBuffer) {
	dst.Clear(core.Background)

	if s.state == StateIdle || s.state == StateFinalized {
		return
	}

	paint(dst, s.paddle.Body)
	paint(dst, s.ball.Body)
	paint(dst, s.hazard.Body)
	for i := range s.bricks {
		if s.bricks[i].Alive {
			paint(dst, s.bricks[i].Body)
		}
	}
}

func paint(dst *core.FrameBuffer, b core.Body) {
	dst.FillRect(b.Rect(), b.Color)
}
