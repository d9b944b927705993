package sim

import (
	"testing"

	"impulse-snake/game/types"

	"github.com/stretchr/testify/assert"
)

func TestEmptyStats(t *testing.T) {
	s := NewStats()
	assert.Zero(t, s.GamesPlayed())
	assert.Zero(t, s.AverageScore())
	assert.Zero(t, s.MedianScore())
	assert.Zero(t, s.MaxScore())
	assert.Zero(t, s.AverageTicks())
	assert.Empty(t, s.Causes())
}

func TestStatsAggregates(t *testing.T) {
	s := NewStats()
	s.Add(GameRecord{Score: 30, Ticks: 40, Cause: types.WallCollision})
	s.Add(GameRecord{Score: 10, Ticks: 20, Cause: types.SelfCollision})
	s.Add(GameRecord{Score: 50, Ticks: 90, Capped: true})

	assert.Equal(t, 3, s.GamesPlayed())
	assert.InDelta(t, 30.0, s.AverageScore(), 1e-9)
	assert.InDelta(t, 30.0, s.MedianScore(), 1e-9)
	assert.Equal(t, 50, s.MaxScore())
	assert.InDelta(t, 50.0, s.AverageTicks(), 1e-9)
	assert.Equal(t, map[string]int{"wall": 1, "self": 1, "capped": 1}, s.Causes())

	s.Add(GameRecord{Score: 0, Cause: types.WallCollision})
	assert.InDelta(t, 20.0, s.MedianScore(), 1e-9, "even count averages the middle pair")
}

func TestGamesReturnsCopy(t *testing.T) {
	s := NewStats()
	s.Add(GameRecord{Score: 10})
	games := s.Games()
	games[0].Score = 99
	assert.Equal(t, 10, s.Games()[0].Score)
}
