// Package help contains the key-binding overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/signup/internal/keys"
	"github.com/zjrosen/signup/internal/ui/overlay"
	"github.com/zjrosen/signup/internal/ui/styles"
)

// sectionKeys names the FullHelp groups in order.
var sectionKeys = []string{
	"help.section.navigation",
	"help.section.choices",
	"help.section.actions",
	"help.section.general",
}

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	lookup func(string) string
	width  int
	height int
}

// New creates a help view for km. lookup resolves section titles and the
// footer; it is usually Catalog.Get.
func New(km keys.KeyMap, lookup func(string) string) Model {
	if lookup == nil {
		lookup = func(k string) string { return k }
	}
	return Model{keys: km, lookup: lookup}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box centered on an empty screen.
func (m Model) View() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.box())
}

// Overlay renders the help box on top of background.
func (m Model) Overlay(background string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.box(), background)
}

func (m Model) box() string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor)
	keyStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Width(13)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	groups := m.keys.FullHelp()
	columns := make([]string, 0, len(groups))
	for i, group := range groups {
		var col strings.Builder
		if i < len(sectionKeys) {
			col.WriteString(sectionStyle.Render(m.lookup(sectionKeys[i])))
			col.WriteString("\n")
		}
		for _, b := range group {
			col.WriteString(renderBinding(b, keyStyle, descStyle))
		}
		if i < len(groups)-1 {
			columns = append(columns, columnStyle.Render(col.String()))
		} else {
			columns = append(columns, col.String())
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	boxWidth := lipgloss.Width(body) + 4

	footer := lipgloss.NewStyle().Foreground(styles.TextMutedColor).MarginTop(1).
		Render(m.lookup("help.footer"))

	var content strings.Builder
	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(2).
		Render(m.lookup("help.title")))
	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", boxWidth)))
	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(body + "\n" + footer))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(content.String())
}

func renderBinding(b key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n"
}
