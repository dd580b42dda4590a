// Package stats contains the durable user statistics store and reporting.
package stats

import (
	"sync"
	"time"

	"github.com/verte-zerg/readquest/internal/model"
	"github.com/verte-zerg/readquest/internal/reward"
	"github.com/verte-zerg/readquest/internal/storage"
)

const statsKey = "user_stats"

const defaultDailyGoalMinutes = 30

// Store accumulates lifetime and per-day reading statistics. It loads once on
// Open and persists through the backend after every mutation; a failed write
// is logged by the backend and the in-memory state stays authoritative for
// the rest of the process.
type Store struct {
	mu      sync.Mutex
	backend *storage.Store
	stats   model.UserStats
	now     func() time.Time
}

// Open loads the stats from backend, falling back to defaults when nothing
// valid is stored. A stale lastReadDate zeroes todayReadingTime: the previous
// day's bucket is abandoned, not carried over.
func Open(backend *storage.Store) *Store {
	s := &Store{
		backend: backend,
		stats:   model.UserStats{DailyGoalMinutes: defaultDailyGoalMinutes},
		now:     time.Now,
	}
	backend.Load(statsKey, &s.stats)
	if s.stats.DailyGoalMinutes <= 0 {
		s.stats.DailyGoalMinutes = defaultDailyGoalMinutes
	}
	if s.stats.LastReadDate != s.today() {
		s.stats.TodayReadingTime = 0
	}
	return s
}

// Stats returns a copy of the current statistics.
func (s *Store) Stats() model.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// RecordReading registers a reading event of timeSeconds and pagesRead and
// updates the day streak. Reading on consecutive calendar days extends the
// streak; a second event on the same day leaves it alone; any gap resets it
// to 1, the same as a first-ever event.
func (s *Store) RecordReading(timeSeconds, pagesRead int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	streak := reward.NextStreak(s.stats.CurrentStreak, s.stats.LastReadDate, today)

	if s.stats.LastReadDate == today {
		s.stats.TodayReadingTime += timeSeconds
	} else {
		s.stats.TodayReadingTime = timeSeconds
	}
	s.stats.TotalReadingTime += timeSeconds
	s.stats.TotalPagesRead += pagesRead
	s.stats.CurrentStreak = streak
	if streak > s.stats.LongestStreak {
		s.stats.LongestStreak = streak
	}
	s.stats.LastReadDate = today
	s.persist()
}

// AddCoins credits amount coins. Negative amounts are a caller contract
// violation and are not checked here.
func (s *Store) AddCoins(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Coins += amount
	s.persist()
}

// SpendCoins deducts amount when the balance allows it. Returns false and
// mutates nothing when the balance is insufficient.
func (s *Store) SpendCoins(amount int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats.Coins < amount {
		return false
	}
	s.stats.Coins -= amount
	s.persist()
	return true
}

// CompleteBook increments the finished-book counter. The caller fires this
// exactly once per completion event, gated by the progress record.
func (s *Store) CompleteBook() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.TotalBooksCompleted++
	s.persist()
}

// SetDailyGoal updates the daily reading goal in minutes.
func (s *Store) SetDailyGoal(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.DailyGoalMinutes = minutes
	s.persist()
}

func (s *Store) persist() {
	s.backend.Save(statsKey, s.stats)
}

func (s *Store) today() string {
	return s.now().Format(reward.DateFormat)
}
