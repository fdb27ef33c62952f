package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lavabreak/internal/core"
	"github.com/vovakirdan/lavabreak/internal/registry"
	"github.com/vovakirdan/lavabreak/internal/storage"
)

// Options tunes a terminal session.
type Options struct {
	// KeyHold is how long a key stays held after its last event.
	// Zero uses DefaultKeyHold.
	KeyHold time.Duration

	// Renderer styles the output. Nil uses the stdout renderer; SSH
	// sessions pass a renderer bound to the client.
	Renderer *lipgloss.Renderer

	// Logger receives run log failures. Nil uses the default logger.
	Logger *log.Logger
}

// initErrMsg reports a failed Initialize.
type initErrMsg struct{ err error }

// runState is shared by every copy of the model so the run is finalized
// and recorded exactly once.
type runState struct {
	done bool
	run  storage.Run
	err  error
}

// Model is the Bubble Tea model for one lavabreak session. It is the
// simulation's host: the Bubble Tea loop supplies ticks and key events, the
// model answers key queries and ends the program when asked to.
type Model struct {
	game      registry.Game
	host      *termHost
	fb        *core.FrameBuffer
	frames    *FrameRenderer
	status    lipgloss.Style
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	lastTick  time.Time
	state     core.GameState
	run       *runState
	closed    bool // Host closed the window
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	hold := opts.KeyHold
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	return Model{
		game:      game,
		host:      newTermHost(NewHeldKeys(HoldFrames(hold, cfg.TickRate))),
		frames:    NewFrameRenderer(renderer),
		status:    renderer.NewStyle().Foreground(lipgloss.Color("241")),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		run:       &runState{},
	}
}

// Init initializes the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.game.Initialize(m.config, m.host); err != nil {
		return func() tea.Msg { return initErrMsg{err: err} }
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initErrMsg:
		m.run.done = true
		m.run.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.host.trackMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.TermW = msg.Width
		m.config.TermH = msg.Height
		m.host.layout = m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsClose(msg) {
		m.closed = true
		m.Close()
		return m, tea.Quit
	}

	m.host.keys.Press(m.keyMapper.MapKey(msg))
	return m, nil
}

// handleTick runs one frame: step, then render. A termination request
// raised during the step quits the program after this frame is shown.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.run.done {
		return m, nil
	}

	dt := tickInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(dt)
	m.host.keys.Advance()
	m.state = result.State

	if m.fb == nil {
		m.fb = core.NewFrameBuffer(m.game.Field())
		m.host.layout = m.layout()
	}
	m.game.Render(m.fb)

	if m.host.quit || m.state.Terminated {
		m.finish()
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// Close ends the session on behalf of the host if it is still running,
// then finalizes and records it. Safe to call more than once.
func (m Model) Close() {
	if m.run.done {
		return
	}
	m.game.Terminate(core.EndHost)
	m.finish()
}

// finish finalizes the game and writes the run log entry.
func (m Model) finish() {
	if m.run.done {
		return
	}
	m.run.done = true
	m.host.keys.Release()

	m.game.Finalize()
	stats := m.game.Stats()
	m.run.run = storage.Run{
		GameID:          m.game.ID(),
		EndReason:       string(stats.Reason),
		Frames:          int64(stats.Frames), //#nosec G115 -- frame counts stay far below MaxInt64
		BricksDestroyed: stats.BricksDestroyed,
		BricksTotal:     stats.BricksTotal,
		Duration:        stats.Elapsed,
	}

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.run.run); err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
	}
}

// Result returns the recorded run and any initialization error.
func (m Model) Result() (storage.Run, error) {
	return m.run.run, m.run.err
}

// layout fits the field into the terminal, leaving one row for status.
func (m Model) layout() Layout {
	return FitLayout(m.game.Field(), m.config.TermW, m.config.TermH-1)
}

// View renders the last frame and a status line.
func (m Model) View() string {
	if m.closed || m.run.err != nil || m.fb == nil {
		return ""
	}

	frame := m.frames.Render(m.fb, m.config.TermW, m.config.TermH-1)
	return frame + "\n" + m.status.Render(m.statusLine())
}

func (m Model) statusLine() string {
	st := m.state
	line := fmt.Sprintf("%s  frame %d  bricks %d/%d", m.game.Title(), st.Frame, st.BricksAlive, st.BricksTotal)
	if st.Terminated {
		return line + fmt.Sprintf("  ended: %s", st.Reason)
	}
	return line + "  ←/→ move  esc quit"
}

// termHost answers the simulation's key queries and collects its
// termination request. It also tracks the mouse for Pointer queries.
type termHost struct {
	keys   *HeldKeys
	quit   bool
	reason core.EndReason

	layout   Layout
	cursorX  int
	cursorY  int
	cursorIn bool
	buttons  [2]bool
}

func newTermHost(keys *HeldKeys) *termHost {
	return &termHost{keys: keys}
}

// KeyHeld reports whether the key is held in the current frame.
func (h *termHost) KeyHeld(k core.Key) bool {
	return h.keys.KeyHeld(k)
}

// ScheduleQuit records the first termination request.
func (h *termHost) ScheduleQuit(reason core.EndReason) {
	if h.quit {
		return
	}
	h.quit = true
	h.reason = reason
}

// Cursor returns the last mouse position in field coordinates.
func (h *termHost) Cursor() (x, y int, ok bool) {
	return h.cursorX, h.cursorY, h.cursorIn
}

// MouseButton reports whether button (0 = left, 1 = right) is held.
func (h *termHost) MouseButton(button int) bool {
	if button < 0 || button >= len(h.buttons) {
		return false
	}
	return h.buttons[button]
}

func (h *termHost) trackMouse(msg tea.MouseMsg) {
	h.cursorX, h.cursorY, h.cursorIn = h.layout.ToField(msg.X, msg.Y)

	button := -1
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = 0
	case tea.MouseButtonRight:
		button = 1
	}
	if button < 0 {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		h.buttons[button] = true
	case tea.MouseActionRelease:
		h.buttons[button] = false
	}
}

// Verify interface compliance at compile time
var (
	_ core.Host    = (*termHost)(nil)
	_ core.Pointer = (*termHost)(nil)
)

// Run starts the Bubble Tea program with the given game and returns the
// recorded run once the session ends.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (storage.Run, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cursor tracking for Pointer queries
	)

	_, err := p.Run()
	// Interrupted programs never saw a termination request
	model.Close()
	if err != nil {
		return storage.Run{}, err
	}
	return model.Result()
}
