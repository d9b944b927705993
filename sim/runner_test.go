package sim

import (
	"context"
	"testing"
	"time"

	"impulse-snake/game"
	"impulse-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() game.Config {
	return game.Config{GridSize: 10, TickInterval: 100 * time.Millisecond, Seed: 7}
}

func TestRunnerPlaysEpisodes(t *testing.T) {
	r, err := NewRunner(testConfig(), 500)
	require.NoError(t, err)

	stats, err := r.Run(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, 3, stats.GamesPlayed())

	sessions := map[string]bool{}
	for _, g := range stats.Games() {
		assert.NotEmpty(t, g.Session)
		sessions[g.Session] = true
		assert.LessOrEqual(t, g.Ticks, 500)
		assert.Zero(t, g.Score%types.FoodScore)
		assert.Equal(t, types.InitialLength+g.Score/types.FoodScore, g.Length)
		if g.Capped {
			assert.Equal(t, types.NoCollision, g.Cause)
		} else {
			assert.NotEqual(t, types.NoCollision, g.Cause)
		}
	}
	assert.Len(t, sessions, 3, "each game gets its own session")
}

func TestRunnerIsReproducibleWithSeed(t *testing.T) {
	scores := func() []int {
		r, err := NewRunner(testConfig(), 300)
		require.NoError(t, err)
		stats, err := r.Run(context.Background(), 4)
		require.NoError(t, err)

		var out []int
		for _, g := range stats.Games() {
			out = append(out, g.Score)
		}
		return out
	}
	assert.Equal(t, scores(), scores())
}

func TestRunnerTickCap(t *testing.T) {
	r, err := NewRunner(testConfig(), 1)
	require.NoError(t, err)

	rec, err := r.Play(context.Background())
	require.NoError(t, err)
	// One step right from the centre of a 10x10 board cannot end the game.
	assert.True(t, rec.Capped)
	assert.Equal(t, 1, rec.Ticks)
	assert.Equal(t, types.NoCollision, rec.Cause)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	r, err := NewRunner(testConfig(), 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := r.Run(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.GamesPlayed())
	assert.Equal(t, types.Idle, r.engine.Status())
}

func TestNewRunnerRejectsBadConfig(t *testing.T) {
	_, err := NewRunner(game.Config{GridSize: 2, TickInterval: time.Second}, 10)
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}
