package tui

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lavabreak/internal/core"
	"github.com/vovakirdan/lavabreak/internal/storage"
)

// fakeGame requests termination after a fixed number of steps and records
// what the host did to it.
type fakeGame struct {
	host       core.Host
	initErr    error
	endAfter   uint64
	frame      uint64
	elapsed    time.Duration
	ended      bool
	reason     core.EndReason
	finalized  int
	leftFrames int
	rendered   int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Initialize(_ core.RuntimeConfig, host core.Host) error {
	g.host = host
	return g.initErr
}

func (g *fakeGame) Field() core.Field { return core.Field{W: 100, H: 100} }

func (g *fakeGame) Step(dt time.Duration) core.StepResult {
	if !g.ended {
		g.frame++
		g.elapsed += dt
		if g.host.KeyHeld(core.KeyLeft) {
			g.leftFrames++
		}
		if g.endAfter > 0 && g.frame >= g.endAfter {
			g.ended = true
			g.reason = core.EndHazard
			g.host.ScheduleQuit(core.EndHazard)
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.FrameBuffer) {
	g.rendered++
	dst.Clear(core.Background)
	if g.finalized == 0 {
		dst.FillRect(core.NewRect(40, 40, 20, 20), core.ColorBlue)
	}
}

func (g *fakeGame) Terminate(reason core.EndReason) {
	if !g.ended {
		g.ended = true
		g.reason = reason
	}
}

func (g *fakeGame) Finalize() { g.finalized++ }

func (g *fakeGame) State() core.GameState {
	return core.GameState{Frame: g.frame, Terminated: g.ended, Reason: g.reason, TerminationSent: g.ended}
}

func (g *fakeGame) Stats() core.RunStats {
	return core.RunStats{Frames: g.frame, Elapsed: g.elapsed, Reason: g.reason, BricksTotal: 4, BricksDestroyed: 1}
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.RuntimeConfig{TermW: 20, TermH: 11, TickRate: 50}
	m := NewModel(g, store, cfg, Options{
		KeyHold:  40 * time.Millisecond,
		Renderer: lipgloss.NewRenderer(io.Discard),
		Logger:   log.New(io.Discard),
	})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned no command")
	}
	return m
}

func tick(t *testing.T, m Model, at time.Time) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg(at))
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStepsWithMeasuredDelta(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	start := time.Unix(1000, 0)

	m, _ = tick(t, m, start)
	m, _ = tick(t, m, start.Add(25*time.Millisecond))

	// First frame uses the nominal interval, later frames the measured gap
	if g.elapsed != 20*time.Millisecond+25*time.Millisecond {
		t.Errorf("elapsed = %v, expected 45ms", g.elapsed)
	}
	if g.rendered != 2 {
		t.Errorf("rendered %d frames, expected 2", g.rendered)
	}
	if m.View() == "" {
		t.Error("View() empty while running")
	}
}

func TestModelHeldKeyWindow(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	now := time.Unix(1000, 0)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)

	// 40ms at 50 fps holds for two frames
	for i := range 4 {
		m, _ = tick(t, m, now.Add(time.Duration(i)*20*time.Millisecond))
	}
	if g.leftFrames != 2 {
		t.Errorf("left held for %d frames, expected 2", g.leftFrames)
	}
}

func TestModelQuitsAfterTerminationFrame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endAfter: 3}
	m := newTestModel(t, g, store)
	now := time.Unix(1000, 0)

	var cmd tea.Cmd
	for i := range 3 {
		m, cmd = tick(t, m, now.Add(time.Duration(i)*20*time.Millisecond))
	}
	if !isQuit(cmd) {
		t.Fatal("expected tea.Quit after the termination request")
	}

	// The terminating frame was rendered before finalizing
	if g.rendered != 3 || g.finalized != 1 {
		t.Errorf("rendered=%d finalized=%d, expected 3/1", g.rendered, g.finalized)
	}
	if m.View() == "" {
		t.Error("final frame should stay visible")
	}

	// Further ticks and Close are no-ops
	m, cmd = tick(t, m, now.Add(time.Second))
	m.Close()
	if cmd != nil || g.frame != 3 || g.finalized != 1 {
		t.Errorf("model kept running after quit: frame=%d finalized=%d", g.frame, g.finalized)
	}

	run, err := m.Result()
	if err != nil {
		t.Fatalf("Result() error: %v", err)
	}
	if run.EndReason != "hazard" || run.Frames != 3 || run.BricksDestroyed != 1 {
		t.Errorf("Result() = %+v", run)
	}

	runs, err := store.RecentRuns("fake", 10)
	if err != nil || len(runs) != 1 {
		t.Fatalf("RecentRuns() = %v, %v; expected one run", runs, err)
	}
	if runs[0].Duration != 60*time.Millisecond {
		t.Errorf("stored duration = %v, expected 60ms", runs[0].Duration)
	}
}

func TestModelHostClose(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	m, _ = tick(t, m, time.Unix(1000, 0))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)

	if !isQuit(cmd) {
		t.Fatal("ctrl+c should quit")
	}
	if g.reason != core.EndHost || g.finalized != 1 {
		t.Errorf("reason=%q finalized=%d, expected host/1", g.reason, g.finalized)
	}
	if m.View() != "" {
		t.Error("View() after close should be empty")
	}
	if m.host.KeyHeld(core.KeyLeft) {
		t.Error("held keys should be released when the host closes")
	}
	run, _ := m.Result()
	if run.EndReason != "host" {
		t.Errorf("run reason = %q, expected host", run.EndReason)
	}
}

func TestModelInitError(t *testing.T) {
	g := &fakeGame{initErr: errors.New("boom")}
	m := NewModel(g, nil, core.DefaultConfig(), Options{Renderer: lipgloss.NewRenderer(io.Discard)})

	cmd := m.Init()
	next, quit := m.Update(cmd())
	m = next.(Model)

	if !isQuit(quit) {
		t.Error("init failure should quit")
	}
	if _, err := m.Result(); err == nil {
		t.Error("Result() should carry the init error")
	}
	if g.finalized != 0 {
		t.Error("failed init should not finalize")
	}
}

func TestTermHostPointer(t *testing.T) {
	h := newTermHost(NewHeldKeys(1))
	h.layout = Layout{Cols: 10, Rows: 5, Scale: 10}

	h.trackMouse(tea.MouseMsg{X: 3, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	x, y, ok := h.Cursor()
	if !ok || x != 35 || y != 45 {
		t.Errorf("Cursor() = %d, %d, %v", x, y, ok)
	}
	if !h.MouseButton(0) || h.MouseButton(1) || h.MouseButton(7) {
		t.Error("MouseButton state mismatch after left press")
	}

	h.trackMouse(tea.MouseMsg{X: 50, Y: 50, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if _, _, ok := h.Cursor(); ok {
		t.Error("cursor outside the layout should not be ok")
	}
	if h.MouseButton(0) {
		t.Error("left button still held after release")
	}

	h.ScheduleQuit(core.EndHazard)
	h.ScheduleQuit(core.EndQuit)
	if h.reason != core.EndHazard {
		t.Errorf("reason = %q, expected the first request", h.reason)
	}
}
