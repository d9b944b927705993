package manager

import (
	"time"

	"impulse-snake/game/types"
)

// StateManager owns the session status and the tick-gate bookkeeping: whether
// the loop is active and the timestamp of the last accepted tick.
type StateManager struct {
	interval time.Duration
	status   types.Status
	active   bool
	lastTick time.Duration
}

func NewStateManager(interval time.Duration) *StateManager {
	return &StateManager{
		interval: interval,
		status:   types.Idle,
	}
}

// Begin moves to playing and arms the loop with now as baseline.
func (sm *StateManager) Begin(now time.Duration) {
	sm.status = types.Playing
	sm.active = true
	sm.lastTick = now
}

// End moves a playing session to game over and disarms the loop.
func (sm *StateManager) End() {
	if sm.status != types.Playing {
		return
	}
	sm.status = types.GameOver
	sm.active = false
}

// Reset returns to idle with the loop disarmed.
func (sm *StateManager) Reset() {
	sm.status = types.Idle
	sm.active = false
	sm.lastTick = 0
}

// Deactivate disarms the loop without changing status.
func (sm *StateManager) Deactivate() {
	sm.active = false
}

// Due reports whether a tick at now should advance the simulation.
func (sm *StateManager) Due(now time.Duration) bool {
	if !sm.active || sm.status != types.Playing {
		return false
	}
	return now-sm.lastTick >= sm.interval
}

// Advance records now as the baseline for the next tick.
func (sm *StateManager) Advance(now time.Duration) {
	sm.lastTick = now
}

func (sm *StateManager) Status() types.Status {
	return sm.status
}

func (sm *StateManager) Active() bool {
	return sm.active
}

func (sm *StateManager) Interval() time.Duration {
	return sm.interval
}
