// Package reward defines the coin and streak policy.
//
// The policy is stateless: the session engine and stats store feed it their
// own state and apply whatever it returns.
package reward

import "time"

const (
	// CoinsPerMinute is granted per full minute of active reading.
	CoinsPerMinute = 1
	// CoinsPerPage is granted once per page read long enough.
	CoinsPerPage = 2
	// PageMilestoneBonus is added on every PageMilestoneEvery-th credited page.
	PageMilestoneBonus = 5
	PageMilestoneEvery = 10
	// BookCompletionBonus is added when the final page transition completes a book.
	BookCompletionBonus = 50
)

const (
	// MinTimePerPage is the dwell time required before a page earns its reward.
	MinTimePerPage = 30 * time.Second
	// IdleTimeout is how long without an activity signal a session stays active.
	IdleTimeout = 60 * time.Second
	// IdleCheckInterval is the idle sweep period.
	IdleCheckInterval = 5 * time.Second
	// AccrueInterval is the time-reward sweep period.
	AccrueInterval = 10 * time.Second
)

// DateFormat is the calendar-date layout used for streak bookkeeping.
const DateFormat = "2006-01-02"

// TimeCoins returns the coins for elapsed active time since the last accrual
// checkpoint. Anything under a full minute earns nothing and stays banked.
func TimeCoins(elapsed time.Duration) int {
	if elapsed < time.Minute {
		return 0
	}
	return int(elapsed/time.Minute) * CoinsPerMinute
}

// PageCoins returns the coins for crediting one more page. creditedSoFar is
// the number of pages credited before this one; completesBook reports whether
// this transition finishes the book.
func PageCoins(creditedSoFar int, completesBook bool) int {
	coins := CoinsPerPage
	if (creditedSoFar+1)%PageMilestoneEvery == 0 {
		coins += PageMilestoneBonus
	}
	if completesBook {
		coins += BookCompletionBonus
	}
	return coins
}

// NextStreak returns the streak value after a reading event on today.
// Same day keeps the streak, yesterday extends it, and anything else
// (including never having read) starts over at 1.
func NextStreak(current int, lastReadDate, today string) int {
	switch lastReadDate {
	case today:
		return current
	case Yesterday(today):
		return current + 1
	default:
		return 1
	}
}

// Yesterday returns the calendar date one day before date. A date that does
// not parse yields an empty string, which never matches a real lastReadDate.
func Yesterday(date string) string {
	t, err := time.ParseInLocation(DateFormat, date, time.Local)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateFormat)
}
