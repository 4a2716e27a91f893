package manager

import (
	"time"

	"github.com/google/uuid"
)

// SessionStats is a point-in-time copy of the counters for the running session.
type SessionStats struct {
	RoundID     string
	RoundStart  time.Time
	ApplesEaten int // Current round
	TotalApples int
	Resets      int
	BestLength  int
}

// StatsManager keeps in-memory counters for the current session. Nothing is
// written to disk.
type StatsManager struct {
	stats SessionStats
	now   func() time.Time
}

func NewStatsManager() *StatsManager {
	sm := &StatsManager{now: time.Now}
	sm.stats.BestLength = 1
	sm.startRound()
	return sm
}

func (sm *StatsManager) startRound() {
	sm.stats.RoundID = uuid.New().String()
	sm.stats.RoundStart = sm.now()
	sm.stats.ApplesEaten = 0
}

// RecordApple counts an eaten apple and tracks the longest target length seen.
func (sm *StatsManager) RecordApple(length int) {
	sm.stats.ApplesEaten++
	sm.stats.TotalApples++
	if length > sm.stats.BestLength {
		sm.stats.BestLength = length
	}
}

// RecordReset closes the current round and opens a new one. It returns the
// stats of the round that just ended.
func (sm *StatsManager) RecordReset() SessionStats {
	ended := sm.stats
	sm.stats.Resets++
	sm.startRound()
	return ended
}

func (sm *StatsManager) Snapshot() SessionStats {
	return sm.stats
}

// RoundDuration returns how long the current round has lasted.
func (sm *StatsManager) RoundDuration() time.Duration {
	return sm.now().Sub(sm.stats.RoundStart)
}
