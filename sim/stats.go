package sim

import (
	"sort"
	"sync"

	"impulse-snake/game/types"
)

// GameRecord holds the outcome of one headless game.
type GameRecord struct {
	Session string `json:"session"`
	Score   int    `json:"score"`
	Ticks   int    `json:"ticks"`
	Length  int    `json:"length"`
	// Cause is what ended the game; NoCollision when the tick cap hit first.
	Cause  types.CollisionType `json:"cause"`
	Capped bool                `json:"capped"`
}

// Stats collects game records and derives aggregate figures from them.
type Stats struct {
	games []GameRecord
	mutex sync.RWMutex
}

func NewStats() *Stats {
	return &Stats{games: make([]GameRecord, 0)}
}

func (s *Stats) Add(rec GameRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.games = append(s.games, rec)
}

// Games returns a copy of the recorded games in play order.
func (s *Stats) Games() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]GameRecord, len(s.games))
	copy(out, s.games)
	return out
}

func (s *Stats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.games)
}

func (s *Stats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range s.games {
		total += g.Score
	}
	return float64(total) / float64(len(s.games))
}

func (s *Stats) MedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	scores := make([]int, len(s.games))
	for i, g := range s.games {
		scores[i] = g.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *Stats) MaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best := 0
	for _, g := range s.games {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

// AverageTicks is the mean game length in engine steps.
func (s *Stats) AverageTicks() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range s.games {
		total += g.Ticks
	}
	return float64(total) / float64(len(s.games))
}

// Causes counts games by how they ended, keyed by collision name. Capped
// games count under "capped".
func (s *Stats) Causes() map[string]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	causes := make(map[string]int)
	for _, g := range s.games {
		if g.Capped {
			causes["capped"]++
			continue
		}
		causes[g.Cause.String()]++
	}
	return causes
}
