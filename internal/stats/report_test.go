package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/readquest/internal/model"
)

func TestGoalBar(t *testing.T) {
	tests := []struct {
		name         string
		todaySeconds int
		goalMinutes  int
		width        int
		want         string
	}{
		{"empty", 0, 30, 12, "[----------]"},
		{"half", 900, 30, 12, "[#####-----]"},
		{"full", 1800, 30, 12, "[##########]"},
		{"over goal clamps", 3600, 30, 12, "[##########]"},
		{"zero goal", 100, 0, 12, "[----------]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalBar(tt.todaySeconds, tt.goalMinutes, tt.width); got != tt.want {
				t.Fatalf("GoalBar(%d, %d, %d) = %q, want %q",
					tt.todaySeconds, tt.goalMinutes, tt.width, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{45, "45s"},
		{60, "1m"},
		{150, "2m"},
		{3600, "1h 0m"},
		{5400, "1h 30m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSummary(&buf, model.UserStats{
		Coins:               120,
		TotalPagesRead:      88,
		TotalBooksCompleted: 2,
		TotalReadingTime:    5400,
		CurrentStreak:       3,
		LongestStreak:       5,
		DailyGoalMinutes:    30,
		TodayReadingTime:    600,
	})
	if err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Coins: 120", "Pages read: 88", "Books finished: 2", "Streak: 3", "longest 5", "30 min goal"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
