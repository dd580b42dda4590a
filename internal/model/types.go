// Package model defines shared data structures.
package model

import "time"

// Config defines reading settings.
type Config struct {
	DailyGoalMinutes int
	LinesPerPage     int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	BookID string
}

// Book is a library entry for an imported document. LinesPerPage is fixed at
// import time so the page count never drifts under the reward logic.
type Book struct {
	ID           string
	Title        string
	Path         string
	TotalPages   int
	LinesPerPage int
	AddedAt      time.Time
	LastReadAt   time.Time
}

// ReadingProgress is the per-book bookmark, independent of reward logic.
type ReadingProgress struct {
	BookID      string
	CurrentPage int
	TotalPages  int
	CompletedAt *time.Time
}

// BookWithProgress joins a book with its progress record for listings.
type BookWithProgress struct {
	Book     Book
	Progress *ReadingProgress
}

// UserStats holds lifetime and per-day reading counters.
type UserStats struct {
	Coins               int    `json:"coins"`
	TotalPagesRead      int    `json:"totalPagesRead"`
	TotalBooksCompleted int    `json:"totalBooksCompleted"`
	TotalReadingTime    int    `json:"totalReadingTime"` // seconds
	CurrentStreak       int    `json:"currentStreak"`
	LongestStreak       int    `json:"longestStreak"`
	LastReadDate        string `json:"lastReadDate"` // YYYY-MM-DD
	DailyGoalMinutes    int    `json:"dailyGoalMinutes"`
	TodayReadingTime    int    `json:"todayReadingTime"` // seconds
}

// SessionSummary reports a finished reading session.
type SessionSummary struct {
	TotalTime   int // seconds
	PagesRead   int
	CoinsEarned int
}

// Sticker describes a shop item.
type Sticker struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Rarity      string `json:"rarity"`
	Description string `json:"description"`
}

// StickerAlbum tracks unlocked and equipped stickers.
type StickerAlbum struct {
	Unlocked []string `json:"unlocked"`
	Equipped []string `json:"equipped"`
}
