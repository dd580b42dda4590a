// Package session implements the reading session engine.
//
// One Session exists per open reader view. It turns raw activity and
// page-navigation signals into reward events while blocking the two farming
// paths: flipping pages faster than the minimum dwell time, and leaving the
// reader open unattended. All mutation is serialized behind one mutex; the
// original single-threaded host made that implicit, here it is explicit.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/verte-zerg/readquest/internal/model"
	"github.com/verte-zerg/readquest/internal/reward"
)

// Sink receives reward events. CoinsEarned is always emitted before the
// ReadingRecorded for the same page transition.
type Sink interface {
	CoinsEarned(amount int)
	ReadingRecorded(seconds, pages int)
}

// Session tracks one continuous reading interaction with a single book.
type Session struct {
	mu sync.Mutex

	bookID           string
	startTime        time.Time
	pageStartTime    time.Time
	lastActivityTime time.Time
	checkpoint       time.Time // last time-reward accrual point

	currentPage int
	credited    map[int]struct{}
	coinsEarned int
	active      bool

	sink Sink
	now  func() time.Time
}

// New starts a session on bookID at startPage. The caller is responsible for
// clamping startPage to the book's page range.
func New(bookID string, startPage int, sink Sink) *Session {
	s := &Session{
		bookID:      bookID,
		currentPage: startPage,
		credited:    make(map[int]struct{}),
		sink:        sink,
		now:         time.Now,
	}
	now := s.now()
	s.startTime = now
	s.pageStartTime = now
	s.lastActivityTime = now
	s.checkpoint = now
	s.active = true
	return s
}

// BookID returns the book this session is reading.
func (s *Session) BookID() string {
	return s.bookID
}

// RecordActivity notes a user activity signal and reactivates the session.
// Idempotent, safe to call on every input event.
func (s *Session) RecordActivity() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivityTime = s.now()
	s.active = true
}

// CheckIdle moves the session to idle when no activity signal arrived within
// the idle timeout. Called by the idle sweep.
func (s *Session) CheckIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active && s.now().Sub(s.lastActivityTime) > reward.IdleTimeout {
		s.active = false
	}
}

// AccrueTimeReward grants coins for full minutes of active reading since the
// last checkpoint. While idle nothing is granted and the checkpoint stays
// put, so elapsed time is preserved and claimed in full once activity
// resumes. Partial minutes stay banked for the next sweep.
func (s *Session) AccrueTimeReward() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	now := s.now()
	coins := reward.TimeCoins(now.Sub(s.checkpoint))
	if coins == 0 {
		return
	}
	s.checkpoint = now
	s.coinsEarned += coins
	s.sink.CoinsEarned(coins)
}

// ChangePage moves to newPage and settles the reward for the page being left.
// The page earns its one-time reward only when the dwell time reached the
// minimum and it was not credited before; the credited set never shrinks.
// newPage must already be clamped to [1, totalPages] by the caller.
func (s *Session) ChangePage(newPage, totalPages int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	timeOnPage := now.Sub(s.pageStartTime)
	_, alreadyCredited := s.credited[s.currentPage]

	if timeOnPage >= reward.MinTimePerPage && !alreadyCredited {
		_, finalCredited := s.credited[totalPages]
		completesBook := newPage == totalPages && !finalCredited
		coins := reward.PageCoins(len(s.credited), completesBook)
		s.coinsEarned += coins
		s.sink.CoinsEarned(coins)
		s.sink.ReadingRecorded(int(timeOnPage/time.Second), 1)
	}
	if timeOnPage >= reward.MinTimePerPage {
		s.credited[s.currentPage] = struct{}{}
	}

	s.currentPage = newPage
	s.pageStartTime = now
	s.lastActivityTime = now
	s.active = true
}

// Run drives the idle and time-reward sweeps until ctx is canceled. Any
// partial minute pending at teardown is discarded.
func (s *Session) Run(ctx context.Context) {
	idle := time.NewTicker(reward.IdleCheckInterval)
	accrue := time.NewTicker(reward.AccrueInterval)
	defer idle.Stop()
	defer accrue.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-idle.C:
			s.CheckIdle()
		case <-accrue.C:
			s.AccrueTimeReward()
		}
	}
}

// End summarizes the session. Read-only; the session may keep running.
func (s *Session) End() model.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.SessionSummary{
		TotalTime:   int(s.now().Sub(s.startTime) / time.Second),
		PagesRead:   len(s.credited),
		CoinsEarned: s.coinsEarned,
	}
}

// Snapshot reports the live state the reader footer displays.
func (s *Session) Snapshot() (currentPage, coins int, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage, s.coinsEarned, s.active
}
