// Package input turns raw key events into engine commands.
package input

import (
	"strings"
	"time"

	"impulse-snake/game/types"

	"go.uber.org/zap"
)

// DefaultStartDebounce swallows repeated start presses for this long.
const DefaultStartDebounce = 200 * time.Millisecond

// Key names follow the DOM KeyboardEvent.key values.
const (
	KeySpace      = " "
	KeyEscape     = "Escape"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

var directionKeys = map[string]types.Direction{
	"w":          types.Up,
	"arrowup":    types.Up,
	"s":          types.Down,
	"arrowdown":  types.Down,
	"a":          types.Left,
	"arrowleft":  types.Left,
	"d":          types.Right,
	"arrowright": types.Right,
}

// Result tells the host what to do with an event after dispatch.
type Result int

const (
	// Ignored events are not game keys; the host handles them normally.
	Ignored Result = iota
	// Handled events are game keys; the host should suppress its default.
	Handled
	// Passthrough events belong to a text-editing surface and must reach it
	// untouched.
	Passthrough
)

func (r Result) String() string {
	switch r {
	case Handled:
		return "handled"
	case Passthrough:
		return "passthrough"
	default:
		return "ignored"
	}
}

// Event is a key press with its focus context. At is on the same axis as
// the engine's tick timestamps.
type Event struct {
	Key    string
	Target *Element
	Active *Element
	At     time.Duration
}

// Controller is the engine surface the dispatcher drives.
type Controller interface {
	Start()
	Reset()
	SetDirection(types.Direction)
	Status() types.Status
}

type Option func(*Dispatcher)

func WithStartDebounce(d time.Duration) Option {
	return func(disp *Dispatcher) {
		disp.debounce = d
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(disp *Dispatcher) {
		disp.log = log
	}
}

type Dispatcher struct {
	ctrl      Controller
	debounce  time.Duration
	started   bool
	lastStart time.Duration
	log       *zap.SugaredLogger
}

func NewDispatcher(ctrl Controller, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		ctrl:     ctrl,
		debounce: DefaultStartDebounce,
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch maps one key event onto the controller.
func (d *Dispatcher) Dispatch(ev Event) Result {
	if IsTextEditing(ev.Target) || IsTextEditing(ev.Active) {
		return Passthrough
	}

	key := strings.ToLower(ev.Key)
	switch key {
	case KeySpace:
		d.start(ev.At)
		return Handled
	case strings.ToLower(KeyEscape):
		d.ctrl.Reset()
		return Handled
	}

	dir, ok := directionKeys[key]
	if !ok {
		return Ignored
	}
	if d.ctrl.Status() == types.Playing {
		d.ctrl.SetDirection(dir)
	}
	return Handled
}

func (d *Dispatcher) start(at time.Duration) {
	if d.started && at-d.lastStart < d.debounce {
		d.log.Debugw("start debounced", "since_last", at-d.lastStart)
		return
	}
	status := d.ctrl.Status()
	if status != types.Idle && status != types.GameOver {
		return
	}
	d.started = true
	d.lastStart = at
	d.ctrl.Start()
}
