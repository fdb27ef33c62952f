package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/lavabreak/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Initialize(core.RuntimeConfig, core.Host) error { return nil }
func (g *stubGame) Field() core.Field { return core.DefaultField }
func (g *stubGame) Step(time.Duration) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.FrameBuffer) {}
func (g *stubGame) Terminate(core.EndReason) {}
func (g *stubGame) Finalize() {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Stats() core.RunStats { return core.RunStats{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return &stubGame{id: "test_b"} })
	Register("test_a", func() Game { return &stubGame{id: "test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists() mismatch")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "test_b" && info.Title != "Stub test_b" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })
}
