package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/readquest/internal/model"
)

const (
	terminalWidthBackup = 80
	goalBarMaxWidth     = 40
)

// RenderSummary prints a plain-text stats summary, including daily goal
// progress rendered as a bar sized to the terminal.
func RenderSummary(w io.Writer, st model.UserStats) error {
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Coins: %d\n", st.Coins); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Pages read: %d\n", st.TotalPagesRead); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Books finished: %d\n", st.TotalBooksCompleted); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Reading time: %s\n", FormatDuration(st.TotalReadingTime)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Streak: %d day(s) (longest %d)\n", st.CurrentStreak, st.LongestStreak); err != nil {
		return err
	}
	bar := GoalBar(st.TodayReadingTime, st.DailyGoalMinutes, goalBarWidth())
	if _, err := fmt.Fprintf(w, "Today: %s of %d min goal %s\n",
		FormatDuration(st.TodayReadingTime), st.DailyGoalMinutes, bar); err != nil {
		return err
	}
	return nil
}

// GoalBar renders daily goal progress as a fixed-width bar.
func GoalBar(todaySeconds, goalMinutes, width int) string {
	if width < 2 {
		width = 2
	}
	inner := width - 2
	filled := 0
	if goalMinutes > 0 {
		filled = todaySeconds * inner / (goalMinutes * 60)
	}
	if filled > inner {
		filled = inner
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", inner-filled) + "]"
}

// FormatDuration renders seconds as a compact h/m/s string.
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

func goalBarWidth() int {
	width := terminalWidth()
	if width > goalBarMaxWidth {
		return goalBarMaxWidth
	}
	if width < 10 {
		return 10
	}
	return width
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
