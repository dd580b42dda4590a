// Package reader provides the Bubble Tea reading interface.
package reader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/readquest/internal/book"
	"github.com/verte-zerg/readquest/internal/library"
	"github.com/verte-zerg/readquest/internal/model"
	"github.com/verte-zerg/readquest/internal/session"
	"github.com/verte-zerg/readquest/internal/stats"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

type tickMsg time.Time

// Model implements the Bubble Tea reading UI.
type Model struct {
	bk           model.Book
	lines        []string
	linesPerPage int

	sess    *session.Session
	lib     *library.Store
	userSt  *stats.Store
	cancel  context.CancelFunc
	errMsg  string
	width   int
	height  int
	content viewport.Model
	ready   bool
}

// NewModel constructs a reading TUI model. cancel tears down the session
// sweeps when the reader quits.
func NewModel(bk model.Book, lines []string, linesPerPage int, sess *session.Session, lib *library.Store, userSt *stats.Store, cancel context.CancelFunc) *Model {
	if linesPerPage <= 0 {
		linesPerPage = book.DefaultLinesPerPage
	}
	return &Model{
		bk:           bk,
		lines:        lines,
		linesPerPage: linesPerPage,
		sess:         sess,
		lib:          lib,
		userSt:       userSt,
		cancel:       cancel,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 3
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !m.ready {
			m.content = viewport.New(msg.Width, contentHeight)
			m.ready = true
		} else {
			m.content.Width = msg.Width
			m.content.Height = contentHeight
		}
		m.setPageContent()
		return m, nil
	case tickMsg:
		return m, tick()
	case tea.KeyMsg:
		// Every key press counts as an activity signal.
		m.sess.RecordActivity()
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
			return m, tea.Quit
		case "right", "l", " ", "space", "pgdown":
			m.turnPage(1)
			return m, nil
		case "left", "h", "pgup":
			m.turnPage(-1)
			return m, nil
		}
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m *Model) turnPage(delta int) {
	current, _, _ := m.sess.Snapshot()
	target := book.Clamp(current+delta, m.bk.TotalPages)
	if target == current {
		return
	}
	m.sess.ChangePage(target, m.bk.TotalPages)
	m.persistProgress(target)
	m.setPageContent()
}

// persistProgress bookmarks the new page. The bookmark moves regardless of
// reward eligibility; the completion counter fires only when the progress
// record completes for the first time.
func (m *Model) persistProgress(page int) {
	ctx := context.Background()
	completedNow, err := m.lib.UpsertProgress(ctx, m.bk.ID, page, m.bk.TotalPages)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to save progress: %v", err)
		return
	}
	if completedNow {
		m.userSt.CompleteBook()
	}
	if err := m.lib.TouchLastRead(ctx, m.bk.ID, time.Now()); err != nil {
		m.errMsg = fmt.Sprintf("failed to update book: %v", err)
		return
	}
	m.errMsg = ""
}

func (m *Model) setPageContent() {
	if !m.ready {
		return
	}
	current, _, _ := m.sess.Snapshot()
	pageLines := book.PageLines(m.lines, current, m.linesPerPage)
	wrapped := make([]string, 0, len(pageLines))
	for _, line := range pageLines {
		wrapped = append(wrapped, wrapLine(line, m.content.Width)...)
	}
	m.content.SetContent(textStyle.Render(strings.Join(wrapped, "\n")))
	m.content.GotoTop()
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	current, coins, active := m.sess.Snapshot()
	header := titleStyle.Render(m.bk.Title) +
		footerStyle.Render(fmt.Sprintf("  page %d/%d", current, m.bk.TotalPages))

	state := activeStyle.Render("reading")
	if !active {
		state = idleStyle.Render("idle")
	}
	userStats := m.userSt.Stats()
	footer := footerStyle.Render(fmt.Sprintf(
		"%d coins this session • %d total • streak %d • ", coins, userStats.Coins, userStats.CurrentStreak)) +
		state +
		footerStyle.Render(" • ←/→ turn page • q quit")
	if m.errMsg != "" {
		footer = errorStyle.Render(m.errMsg)
	}
	return header + "\n" + m.content.View() + "\n" + footer
}

func wrapLine(line string, width int) []string {
	if width <= 0 {
		return []string{line}
	}
	return wrapWords(line, width)
}
