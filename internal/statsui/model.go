// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/readquest/internal/model"
	"github.com/verte-zerg/readquest/internal/stats"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	userStats model.UserStats
	books     []model.BookWithProgress
	bookTable table.Model

	width  int
	height int
}

// NewModel constructs the stats UI from preloaded data.
func NewModel(userStats model.UserStats, books []model.BookWithProgress) *Model {
	return &Model{
		userStats: userStats,
		books:     books,
		bookTable: newBookTable(books),
	}
}

func newBookTable(books []model.BookWithProgress) table.Model {
	columns := []table.Column{
		{Title: "Book", Width: 32},
		{Title: "Progress", Width: 12},
		{Title: "Status", Width: 10},
	}
	rows := make([]table.Row, 0, len(books))
	for _, item := range books {
		progress := "-"
		status := "unread"
		if item.Progress != nil {
			progress = fmt.Sprintf("%d/%d", item.Progress.CurrentPage, item.Progress.TotalPages)
			status = "reading"
			if item.Progress.CompletedAt != nil {
				status = "finished"
			}
		}
		rows = append(rows, table.Row{item.Book.Title, progress, status})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	t.SetStyles(styles)
	return t
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.bookTable, cmd = m.bookTable.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	st := m.userStats
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Coins", fmt.Sprintf("%d", st.Coins)),
		card("Streak", fmt.Sprintf("%d (best %d)", st.CurrentStreak, st.LongestStreak)),
		card("Pages", fmt.Sprintf("%d", st.TotalPagesRead)),
		card("Books", fmt.Sprintf("%d", st.TotalBooksCompleted)),
		card("Time", stats.FormatDuration(st.TotalReadingTime)),
		card("Today", fmt.Sprintf("%s / %dm", stats.FormatDuration(st.TodayReadingTime), st.DailyGoalMinutes)),
	)
	body := cards + "\n" + tableStyle.Render(m.bookTable.View()) + "\n" +
		headerStyle.Render("↑/↓ browse • q quit")
	if m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, body)
	}
	return body
}

func card(title, value string) string {
	return cardStyle.Render(cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value))
}
