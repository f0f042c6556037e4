// Package terms provides the scrollable terms-and-privacy viewer overlay.
package terms

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/ui/markdown"
	"github.com/zjrosen/signup/internal/ui/overlay"
	"github.com/zjrosen/signup/internal/ui/styles"
)

const (
	maxWidth  = 80
	maxHeight = 30
)

// CloseMsg is sent when the user dismisses the viewer.
type CloseMsg struct{}

// Config describes what the viewer shows.
type Config struct {
	Title    string
	Footer   string
	Document string // markdown
	Style    string // markdown style, see markdown.Style*
}

// Model is the terms viewer state.
type Model struct {
	cfg      Config
	keys     keys.KeyMap
	viewport viewport.Model
	width    int
	height   int
}

// New creates a viewer. Call SetSize before rendering.
func New(cfg Config) Model {
	return Model{
		cfg:      cfg,
		keys:     keys.DefaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// SetSize fits the box inside a width x height screen and re-renders the
// document at the new wrap width.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height

	boxWidth := min(maxWidth, max(width-4, 20))
	boxHeight := min(maxHeight, max(height-4, 6))

	// border and padding take four columns; title, divider, footer and the
	// borders take five rows
	m.viewport.Width = boxWidth - 4
	m.viewport.Height = max(boxHeight-5, 1)
	m.viewport.SetContent(m.render(m.viewport.Width))
	return m
}

func (m Model) render(width int) string {
	r, err := markdown.New(width, m.cfg.Style)
	if err != nil {
		log.ErrorErr(log.CatUI, "terms renderer", err)
		return m.cfg.Document
	}
	out, err := r.Render(m.cfg.Document)
	if err != nil {
		log.ErrorErr(log.CatUI, "terms render", err)
		return m.cfg.Document
	}
	return strings.TrimRight(out, "\n")
}

// ScrollPercent reports how far the document has been scrolled, 0 to 1.
func (m Model) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}

// Update scrolls the document and closes on Esc.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Escape) {
		return m, func() tea.Msg { return CloseMsg{} }
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewer box.
func (m Model) View() string {
	innerWidth := m.viewport.Width + 2

	title := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(1).
		Render(m.cfg.Title)
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", innerWidth))
	footer := lipgloss.NewStyle().Foreground(styles.TextMutedColor).PaddingLeft(1).
		Render(m.cfg.Footer)
	body := lipgloss.NewStyle().Padding(0, 1).Render(m.viewport.View())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(innerWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, divider, body, footer))
}

// Overlay renders the viewer centered over background.
func (m Model) Overlay(background string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), background)
}
