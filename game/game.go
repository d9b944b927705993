package game

import (
	"errors"
	"fmt"
	"time"

	"impulse-snake/game/entity"
	"impulse-snake/game/manager"
	"impulse-snake/game/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config fixes the grid and tick interval for the lifetime of an Engine.
type Config struct {
	GridSize     int
	TickInterval time.Duration
	// Seed drives food placement; 0 seeds from the wall clock.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		GridSize:     types.DefaultGridSize,
		TickInterval: types.DefaultTickInterval,
	}
}

func (c Config) Validate() error {
	if c.GridSize < types.MinGridSize {
		return fmt.Errorf("%w: grid size %d is below %d", ErrInvalidConfig, c.GridSize, types.MinGridSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	return nil
}

// Snapshot is a read-only copy of the game state handed to renderers.
type Snapshot struct {
	Snake         []types.Point   `json:"snake"`
	Food          types.Point     `json:"food"`
	Direction     types.Direction `json:"direction"`
	NextDirection types.Direction `json:"nextDirection"`
	Score         int             `json:"score"`
	Status        types.Status    `json:"status"`
}

// Head returns the first segment of the snapshot's snake.
func (s Snapshot) Head() types.Point {
	if len(s.Snake) == 0 {
		return types.Point{}
	}
	return s.Snake[0]
}

type Option func(*Engine)

// WithClock sets the time source Start uses as its tick baseline. It must
// share an axis with the timestamps passed to Tick.
func WithClock(now func() time.Duration) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// Engine is the tick-driven snake simulation. It is meant to be driven from a
// single goroutine; none of its methods block.
type Engine struct {
	grid         types.Grid
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	snake         *entity.Snake
	food          types.Point
	direction     types.Direction
	nextDirection types.Direction
	score         int

	sessionID     string
	lastCollision types.CollisionType
	// pristine is set while the idle state has not been touched since it
	// was laid out, so repeated resets keep the same food.
	pristine bool

	now func() time.Duration
	log *zap.SugaredLogger
}

func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := types.NewSquareGrid(cfg.GridSize)
	collisionMgr := manager.NewCollisionManager(grid)
	epoch := time.Now()

	e := &Engine{
		grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, seed, collisionMgr),
		stateMgr:     manager.NewStateManager(cfg.TickInterval),
		now:          func() time.Duration { return time.Since(epoch) },
		log:          zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.initState()
	e.pristine = true
	return e, nil
}

// initState lays out the fixed starting snake heading right from the grid
// centre and places fresh food.
func (e *Engine) initState() {
	head := types.Point{X: e.grid.Width / 2, Y: e.grid.Height / 2}
	e.snake = entity.NewStartingSnake(head, types.Right, types.InitialLength)
	e.direction = types.Right
	e.nextDirection = types.Right
	e.score = 0
	e.lastCollision = types.NoCollision
	e.placeFood()
}

func (e *Engine) placeFood() {
	food, free := e.foodMgr.GenerateFood(e.snake)
	if !free {
		e.log.Warnw("no free cell for food, overlapping snake",
			"session", e.sessionID, "x", food.X, "y", food.Y)
	}
	e.food = food
}

// Start begins a fresh session from any status.
func (e *Engine) Start() {
	e.pristine = false
	e.initState()
	e.sessionID = uuid.New().String()
	e.stateMgr.Begin(e.now())
	e.log.Debugw("session started", "session", e.sessionID)
}

// Reset discards the current session and returns to idle. Idempotent.
func (e *Engine) Reset() {
	e.stateMgr.Reset()
	if e.pristine {
		return
	}
	e.initState()
	e.pristine = true
	e.sessionID = ""
	e.log.Debug("session reset")
}

// Stop disarms the tick loop, leaving state as is. Hosts call it when their
// frame loop goes away so late callbacks become no-ops.
func (e *Engine) Stop() {
	e.stateMgr.Deactivate()
}

// SetDirection banks d for the next tick. It is ignored unless playing, and
// when d reverses the current (not the banked) direction.
func (e *Engine) SetDirection(d types.Direction) {
	if e.stateMgr.Status() != types.Playing {
		return
	}
	if d == e.direction.Opposite() {
		return
	}
	e.nextDirection = d
}

// Tick advances one step if the loop is active, the session is playing and
// at least one interval has passed since the last accepted tick. It reports
// whether the state advanced.
func (e *Engine) Tick(ts time.Duration) bool {
	if !e.stateMgr.Due(ts) {
		return false
	}

	e.direction = e.nextDirection
	newHead := e.snake.GetHead().Add(e.direction.Offset())

	if e.collisionMgr.IsWallCollision(newHead) {
		e.endSession(types.WallCollision)
		return true
	}

	willEat := e.collisionMgr.IsFoodCollision(newHead, e.food)
	if c := e.collisionMgr.CheckCollision(newHead, e.snake, willEat); c != types.NoCollision {
		e.endSession(c)
		return true
	}

	e.snake.Move(newHead)
	if willEat {
		e.score += types.FoodScore
		e.placeFood()
	} else {
		e.snake.RemoveTail()
	}

	e.stateMgr.Advance(ts)
	return true
}

func (e *Engine) endSession(c types.CollisionType) {
	e.lastCollision = c
	e.stateMgr.End()
	e.log.Infow("game over",
		"session", e.sessionID,
		"cause", c.String(),
		"score", e.score,
		"length", e.snake.Len())
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Snake:         e.snake.Segments(),
		Food:          e.food,
		Direction:     e.direction,
		NextDirection: e.nextDirection,
		Score:         e.score,
		Status:        e.stateMgr.Status(),
	}
}

func (e *Engine) Status() types.Status {
	return e.stateMgr.Status()
}

// Active reports whether the tick loop is armed.
func (e *Engine) Active() bool {
	return e.stateMgr.Active()
}

func (e *Engine) Grid() types.Grid {
	return e.grid
}

func (e *Engine) TickInterval() time.Duration {
	return e.stateMgr.Interval()
}

// SessionID identifies the session begun by the last Start; empty when idle.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// LastCollision reports what ended the last session.
func (e *Engine) LastCollision() types.CollisionType {
	return e.lastCollision
}
