// Package tetris adapts the board engine to the platform: it maps input
// actions to engine commands, turns fixed ticks into elapsed time and draws
// the board into a core.Screen.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects a rule variant.
type Mode string

const (
	// ModeStandard takes its rotation rule from config; by default rotations
	// are validated against the rotated shape.
	ModeStandard Mode = "tetris"
	// ModeClassic keeps the spawn-orientation footprint when rotating; only
	// the drawn angle changes.
	ModeClassic Mode = "tetris_classic"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game for one Tetris board.
type Game struct {
	mode Mode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.TetrisConfig
	fixedCfg   *config.TetrisConfig // Set by NewWithConfig; skips file loading
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	eng          *engine.Engine
	tickDT       time.Duration
	baseInterval time.Duration
	softInterval time.Duration

	// Terminals report key presses but not releases, so soft drop stays
	// engaged for a number of ticks after the last Down press.
	softDropHold  int
	softDropTicks int

	ticks    int
	paused   bool
	tooSmall bool
	last     engine.Outcome
}

// New creates a standard Tetris game.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewClassic creates a game with footprint-preserving rotation.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// NewWithConfig creates a game that uses cfg instead of loading config files.
func NewWithConfig(mode Mode, cfg config.TetrisConfig) *Game {
	return &Game{mode: mode, fixedCfg: &cfg}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          string(ModeStandard),
		Title:       "Tetris",
		Description: "Rotation rule from config, colliding with the stack by default",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{
		ID:          string(ModeClassic),
		Title:       "Tetris (Classic)",
		Description: "Rotation keeps the spawn footprint",
	}, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Tetris (Classic)"
	}
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.tickDT = time.Second / time.Duration(runtime.TickRate)
	g.baseInterval = g.cfg.Timing.FallDuration()
	g.softInterval = g.cfg.Timing.SoftDropDuration()
	g.softDropHold = max(g.cfg.Timing.SoftDropHoldTicks, 1)
	g.softDropTicks = 0

	g.ticks = 0
	g.paused = false
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.eng = engine.New(g.engineConfig(), engine.WithRandomizer(g.randomizer()))
	g.last = g.eng.Spawn()
}

// loadConfig resolves the game config. Broken files fall back to defaults.
func (g *Game) loadConfig() config.TetrisConfig {
	var cfg config.TetrisConfig
	if g.fixedCfg != nil {
		cfg = *g.fixedCfg
	} else {
		loaded, _, err := config.LoadTetris(configPath)
		if err != nil {
			loaded = config.DefaultTetrisConfig()
		}
		cfg = loaded
		if difficultyPreset != "" {
			config.ApplyTetrisPreset(&cfg, difficultyPreset)
		}
	}

	if err := cfg.Validate(); err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	return cfg
}

func (g *Game) engineConfig() engine.Config {
	rotation := engine.RotationTable
	if g.mode == ModeClassic || g.cfg.Rules.Rotation == string(engine.RotationVisual) {
		rotation = engine.RotationVisual
	}
	return engine.Config{
		Spawn:            engine.Point{X: g.cfg.Board.SpawnX, Y: g.cfg.Board.SpawnY},
		FallInterval:     g.baseInterval,
		SoftDropInterval: g.softInterval,
		Rotation:         rotation,
	}
}

func (g *Game) randomizer() engine.Randomizer {
	r, err := engine.NewRandomizer(engine.RandomizerKind(g.cfg.Rules.Randomizer), g.rng.Int63())
	if err != nil {
		return engine.NewUniform(g.rng.Int63())
	}
	return r
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	over := g.eng.GameOver()

	// Handle restart
	if in.Has(core.ActionRestart) && over {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	if over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	before := g.eng.Stats()

	// Sideways moves cancel out when both are pressed
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		g.record(g.eng.Move(engine.DirLeft))
	case right && !left:
		g.record(g.eng.Move(engine.DirRight))
	}

	if in.Has(core.ActionRotate) {
		g.record(g.eng.Rotate())
	}

	if in.Has(core.ActionSoftDrop) {
		g.softDropTicks = g.softDropHold
	}
	g.eng.SetFallInterval(g.fallInterval())
	if g.softDropTicks > 0 {
		g.softDropTicks--
	}

	g.record(g.eng.Tick(g.tickDT))

	after := g.eng.Stats()
	return core.StepResult{
		State:   g.State(),
		Landed:  after.PiecesPlaced > before.PiecesPlaced,
		Cleared: after.LinesCleared - before.LinesCleared,
	}
}

// record keeps the last outcome that did something, for the HUD.
func (g *Game) record(out engine.Outcome) {
	if out != engine.OutcomeNone {
		g.last = out
	}
}

// fallInterval returns the interval for this tick: soft drop while Down is
// held, otherwise the base interval shortened by difficulty.
func (g *Game) fallInterval() time.Duration {
	if g.softDropTicks > 0 {
		return g.softInterval
	}
	return g.difficulty.FallInterval(g.baseInterval, g.progress(g.eng.Stats()))
}

func (g *Game) progress(s engine.Stats) config.Progress {
	return config.Progress{Pieces: s.PiecesPlaced, Lines: s.LinesCleared, Ticks: g.ticks}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	stats := g.eng.Stats()
	return core.GameState{
		Lines:    stats.LinesCleared,
		Pieces:   stats.PiecesPlaced,
		Ticks:    g.ticks,
		GameOver: g.eng.GameOver(),
		Paused:   g.paused,
	}
}

// Played returns how long the game has been running, excluding pauses.
func (g *Game) Played() time.Duration {
	return time.Duration(g.ticks) * g.tickDT
}

// Resize updates the screen size without restarting the game. The game
// pauses itself while the window is too small for the board.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}
