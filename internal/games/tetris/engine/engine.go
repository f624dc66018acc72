package engine

import (
	"fmt"
	"time"
)

// Default timing and spawn parameters.
const (
	DefaultFallInterval     = time.Second
	DefaultSoftDropInterval = 100 * time.Millisecond
)

// DefaultSpawn is the origin every new piece starts at.
var DefaultSpawn = Point{X: 3, Y: 18}

// RotationMode selects how rotation interacts with collision.
type RotationMode string

const (
	// RotationTable validates rotations against the rotated mask.
	RotationTable RotationMode = "table"
	// RotationVisual only tracks the angle. The collision mask stays at its
	// spawn orientation, so a rotation is never rejected.
	RotationVisual RotationMode = "visual"
)

// Config holds the engine's fixed parameters.
type Config struct {
	Spawn            Point
	FallInterval     time.Duration
	SoftDropInterval time.Duration // Applied by hosts through SetFallInterval
	Rotation         RotationMode
}

// DefaultConfig returns the standard board configuration.
func DefaultConfig() Config {
	return Config{
		Spawn:            DefaultSpawn,
		FallInterval:     DefaultFallInterval,
		SoftDropInterval: DefaultSoftDropInterval,
		Rotation:         RotationTable,
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Spawn.X < 0 || c.Spawn.X >= Width {
		return fmt.Errorf("engine: spawn x %d outside [0,%d)", c.Spawn.X, Width)
	}
	if c.Spawn.Y < 0 {
		return fmt.Errorf("engine: spawn y %d is negative", c.Spawn.Y)
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("engine: fall interval must be positive, got %s", c.FallInterval)
	}
	if c.SoftDropInterval <= 0 {
		return fmt.Errorf("engine: soft drop interval must be positive, got %s", c.SoftDropInterval)
	}
	switch c.Rotation {
	case RotationTable, RotationVisual:
	default:
		return fmt.Errorf("engine: unknown rotation mode %q", c.Rotation)
	}
	return nil
}

// ActivePiece is the falling piece.
type ActivePiece struct {
	Type     PieceType
	Origin   Point
	Rotation Rotation
}

// Engine is the board state machine: one grid and at most one active piece.
// An Engine is not safe for concurrent use; see Guarded.
type Engine struct {
	cfg  Config
	src  Randomizer
	grid Grid

	active    ActivePiece
	hasActive bool
	gameOver  bool

	fallInterval time.Duration
	elapsed      time.Duration

	linesCleared int
	piecesPlaced int
	lastCleared  int
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRandomizer sets the piece source. The default is a time-seeded Uniform.
func WithRandomizer(r Randomizer) Option {
	return func(e *Engine) {
		e.src = r
	}
}

// WithGrid starts the engine on a pre-filled grid.
func WithGrid(g Grid) Option {
	return func(e *Engine) {
		e.grid = g
	}
}

// New creates an engine. No piece is active until Spawn is called.
// Zero-valued config fields fall back to DefaultConfig.
func New(cfg Config, opts ...Option) *Engine {
	def := DefaultConfig()
	if cfg.FallInterval <= 0 {
		cfg.FallInterval = def.FallInterval
	}
	if cfg.SoftDropInterval <= 0 {
		cfg.SoftDropInterval = def.SoftDropInterval
	}
	if cfg.Rotation == "" {
		cfg.Rotation = def.Rotation
	}

	e := &Engine{
		cfg:          cfg,
		fallInterval: cfg.FallInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = NewUniform(time.Now().UnixNano())
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Spawn starts the game by spawning the first piece. The engine spawns every
// later piece itself after a landing, so calling Spawn while a piece is
// already falling is rejected.
func (e *Engine) Spawn() Outcome {
	if e.gameOver {
		return OutcomeGameOver
	}
	if e.hasActive {
		return OutcomeRejected
	}
	return e.spawn()
}

// spawn places a fresh piece at the spawn point. A piece that does not fit
// ends the game; it stays active so renderers can show what blocked it.
func (e *Engine) spawn() Outcome {
	e.active = ActivePiece{
		Type:     e.src.Next(),
		Origin:   e.cfg.Spawn,
		Rotation: Rot0,
	}
	e.hasActive = true

	if !e.validMove(Point{}) {
		e.gameOver = true
		return OutcomeGameOver
	}
	return OutcomeApplied
}

// Tick advances the fall timer by dt. Once the accumulated time reaches the
// fall interval the piece moves down one row and the timer restarts.
func (e *Engine) Tick(dt time.Duration) Outcome {
	if e.gameOver {
		return OutcomeGameOver
	}
	if !e.hasActive {
		return OutcomeNone
	}

	e.elapsed += dt
	if e.elapsed < e.fallInterval {
		return OutcomeNone
	}
	e.elapsed = 0
	return e.Move(DirDown)
}

// Move translates the active piece one cell. A blocked downward move lands
// the piece; a blocked sideways move is rejected.
func (e *Engine) Move(dir Direction) Outcome {
	if e.gameOver {
		return OutcomeGameOver
	}
	if !e.hasActive || !dir.Valid() {
		return OutcomeRejected
	}

	delta := dir.Delta()
	if e.validMove(delta) {
		e.active.Origin = e.active.Origin.Add(delta)
		return OutcomeApplied
	}
	if dir != DirDown {
		return OutcomeRejected
	}
	return e.land()
}

// Rotate turns the active piece a quarter turn clockwise about its origin.
// If the result does not fit, the previous rotation is restored.
func (e *Engine) Rotate() Outcome {
	if e.gameOver {
		return OutcomeGameOver
	}
	if !e.hasActive {
		return OutcomeRejected
	}

	prev := e.active.Rotation
	e.active.Rotation = prev.Next()
	if !e.validMove(Point{}) {
		e.active.Rotation = prev
		return OutcomeRejected
	}
	return OutcomeApplied
}

// SetFallInterval changes how long the piece waits between automatic drops.
// Non-positive intervals are ignored.
func (e *Engine) SetFallInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	e.fallInterval = d
}

// FallInterval returns the current fall interval.
func (e *Engine) FallInterval() time.Duration {
	return e.fallInterval
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Active returns the falling piece, if any.
func (e *Engine) Active() (ActivePiece, bool) {
	return e.active, e.hasActive
}

// CanMove reports whether the active piece fits when shifted by offset.
func (e *Engine) CanMove(offset Point) bool {
	if !e.hasActive {
		return false
	}
	return e.validMove(offset)
}

// mask returns the collision mask of the active piece.
func (e *Engine) mask() Mask {
	rot := e.active.Rotation
	if e.cfg.Rotation == RotationVisual {
		rot = Rot0
	}
	return MaskOf(e.active.Type, rot)
}

// validMove checks every cell of the shifted piece. Cells must stay within
// the side walls and above the floor; cells above the top row are always
// open, which lets a piece spawn partly above the board.
func (e *Engine) validMove(offset Point) bool {
	origin := e.active.Origin.Add(offset)
	for _, c := range e.mask() {
		p := origin.Add(c)
		if p.X < 0 || p.X >= Width || p.Y < 0 {
			return false
		}
		if p.Y < Height && e.grid[p.Y][p.X].Filled() {
			return false
		}
	}
	return true
}

// land commits the active piece, clears full rows and spawns the next piece.
func (e *Engine) land() Outcome {
	e.place()
	e.lastCleared = e.grid.ClearFullRows()
	e.linesCleared += e.lastCleared
	e.piecesPlaced++

	if e.spawn() == OutcomeGameOver {
		return OutcomeGameOver
	}
	return OutcomeLanded
}

// place writes the active piece into the grid. Cells off the visible board
// are dropped.
func (e *Engine) place() {
	marker := CellOf(e.active.Type)
	for _, p := range e.cells() {
		e.grid.Set(p, marker)
	}
	e.hasActive = false
}

// cells returns the board coordinates of the active piece.
func (e *Engine) cells() []Point {
	m := e.mask()
	out := make([]Point, 0, len(m))
	for _, c := range m {
		out = append(out, e.active.Origin.Add(c))
	}
	return out
}
