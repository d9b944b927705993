// Package sim plays autopilot games without a window, driving the engine
// with synthetic timestamps.
package sim

import (
	"context"
	"time"

	"impulse-snake/ai"
	"impulse-snake/game"
	"impulse-snake/game/types"

	"go.uber.org/zap"
)

type Option func(*Runner)

func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// Runner plays games back to back on a single engine. Not safe for
// concurrent use.
type Runner struct {
	engine   *game.Engine
	pilot    *ai.Autopilot
	maxTicks int
	now      time.Duration
	log      *zap.SugaredLogger
}

// NewRunner builds an engine from cfg on a virtual clock. maxTicks caps each
// game; 0 means no cap.
func NewRunner(cfg game.Config, maxTicks int, opts ...Option) (*Runner, error) {
	r := &Runner{
		maxTicks: maxTicks,
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}

	eng, err := game.NewEngine(cfg,
		game.WithClock(func() time.Duration { return r.now }),
		game.WithLogger(r.log.Named("engine")),
	)
	if err != nil {
		return nil, err
	}
	r.engine = eng
	r.pilot = ai.NewAutopilot(eng.Grid())
	return r, nil
}

// Run plays episodes games and returns their stats. On cancellation it
// returns the games finished so far along with the context error.
func (r *Runner) Run(ctx context.Context, episodes int) (*Stats, error) {
	stats := NewStats()
	start := time.Now()

	for i := 0; i < episodes; i++ {
		rec, err := r.Play(ctx)
		if err != nil {
			return stats, err
		}
		stats.Add(rec)
	}

	r.log.Infow("simulation finished",
		"games", stats.GamesPlayed(),
		"avgScore", stats.AverageScore(),
		"medianScore", stats.MedianScore(),
		"maxScore", stats.MaxScore(),
		"avgTicks", stats.AverageTicks(),
		"causes", stats.Causes(),
		"elapsed", time.Since(start))
	return stats, nil
}

// Play runs one game from Start until it ends or hits the tick cap.
func (r *Runner) Play(ctx context.Context) (GameRecord, error) {
	eng := r.engine
	eng.Start()
	interval := eng.TickInterval()

	ticks := 0
	for eng.Status() == types.Playing {
		if err := ctx.Err(); err != nil {
			eng.Reset()
			return GameRecord{}, err
		}
		if r.maxTicks > 0 && ticks >= r.maxTicks {
			break
		}

		eng.SetDirection(r.pilot.Decide(eng.Snapshot()))
		r.now += interval
		if eng.Tick(r.now) {
			ticks++
		}
	}

	snap := eng.Snapshot()
	rec := GameRecord{
		Session: eng.SessionID(),
		Score:   snap.Score,
		Ticks:   ticks,
		Length:  len(snap.Snake),
		Capped:  snap.Status == types.Playing,
	}
	if !rec.Capped {
		rec.Cause = eng.LastCollision()
	}
	r.log.Debugw("game recorded",
		"session", rec.Session,
		"score", rec.Score,
		"ticks", rec.Ticks,
		"capped", rec.Capped)
	return rec, nil
}
