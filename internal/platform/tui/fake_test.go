package tui

import (
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// fakeGame records what the platform feeds it. Tests script its state.
type fakeGame struct {
	id      string
	state   core.GameState
	resets  int
	inputs  []core.InputFrame
	resized [2]int
}

func (g *fakeGame) ID() string    { return g.id }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	// The platform clears its frame after each tick, so keep a copy.
	seen := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			seen.Set(a)
		}
	}
	g.inputs = append(g.inputs, seen)
	if !g.state.GameOver {
		g.state.Ticks++
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

// resizableGame also follows window resizes.
type resizableGame struct {
	fakeGame
}

func (g *resizableGame) Resize(w, h int) { g.resized = [2]int{w, h} }

var registerOnce sync.Once

// registerFake makes "fake" the only mode the menu lists in this package's
// tests.
func registerFake() {
	registerOnce.Do(func() {
		registry.Register(registry.GameInfo{
			ID:          "fake",
			Title:       "Fake",
			Description: "Test mode",
		}, func() registry.Game {
			return &fakeGame{id: "fake"}
		})
	})
}
