package lava

import (
	"fmt"
	"time"

	"github.com/vovakirdan/lavabreak/internal/config"
	"github.com/vovakirdan/lavabreak/internal/core"
	"github.com/vovakirdan/lavabreak/internal/registry"
)

// Variant selects the registered flavour of the game.
type Variant int

const (
	VariantScaled  Variant = iota // Motion follows wall-clock time
	VariantClassic                // One displacement per step, classic collisions
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.LavaConfig
	session *Session
}

// New creates a lava game with time-scaled motion.
func New() *Game {
	return &Game{variant: VariantScaled}
}

// NewClassic creates a lava game with frame-locked motion.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "lava_classic"
	}
	return "lava"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Lava Breakout (Classic)"
	}
	return "Lava Breakout"
}

// Initialize loads the configuration and starts a fresh session.
func (g *Game) Initialize(runtime core.RuntimeConfig, host core.Host) error {
	if g.session != nil {
		return ErrAlreadyInitialized
	}
	g.runtime = runtime

	cfg, err := config.LoadLava(configPath)
	if err != nil {
		return fmt.Errorf("lava: load config: %w", err)
	}
	if g.variant == VariantClassic {
		classic := config.ClassicLavaConfig()
		cfg.Motion = classic.Motion
		cfg.Collision = classic.Collision
	}
	if difficultyPreset != "" {
		config.ApplyLavaPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	session := NewSession(cfg, host)
	if err := session.Initialize(); err != nil {
		return err
	}
	g.session = session
	return nil
}

// Config returns the configuration the session was built from.
func (g *Game) Config() config.LavaConfig {
	return g.cfg
}

// Session returns the underlying session, nil before Initialize.
func (g *Game) Session() *Session {
	return g.session
}

// Field returns the playfield size.
func (g *Game) Field() core.Field {
	if g.session == nil {
		return core.DefaultField
	}
	return g.session.Field()
}

// Step advances the session by one frame.
func (g *Game) Step(dt time.Duration) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}
	return g.session.Step(dt)
}

// Render paints the session into dst.
func (g *Game) Render(dst *core.FrameBuffer) {
	if g.session == nil {
		dst.Clear(core.Background)
		return
	}
	g.session.Render(dst)
}

// Terminate ends the session on behalf of the host.
func (g *Game) Terminate(reason core.EndReason) {
	if g.session != nil {
		g.session.Terminate(reason)
	}
}

// Finalize releases the session.
func (g *Game) Finalize() {
	if g.session != nil {
		g.session.Finalize()
	}
}

// State returns the current session status.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return g.session.State()
}

// Snapshot returns the session snapshot, or an empty one before Initialize.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{State: StateIdle}
	}
	return g.session.Snapshot()
}

// Stats returns the run summary, zero before Initialize.
func (g *Game) Stats() core.RunStats {
	if g.session == nil {
		return core.RunStats{}
	}
	return g.session.Stats()
}

// Register the game variants
func init() {
	registry.Register("lava", func() registry.Game { return New() })
	registry.Register("lava_classic", func() registry.Game { return NewClassic() })
}

// Verify interface compliance at compile time
var _ registry.Game = (*Game)(nil)
