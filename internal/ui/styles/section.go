package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rounded border characters used by Section.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// Section is a bordered box with the title inlined in the top border:
//
//	╭─ Title (hint) ─────╮
//	│content             │
//	╰────────────────────╯
type Section struct {
	Title string
	Hint  string
	Width int
	// Focused draws the border in BorderHighlightFocusColor.
	Focused bool
	// Invalid draws the border in StatusErrorColor; Focused wins.
	Invalid bool
}

// Render draws the section around content, one entry per line.
func (s Section) Render(content []string) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	switch {
	case s.Focused:
		borderColor = BorderHighlightFocusColor
	case s.Invalid:
		borderColor = StatusErrorColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(borderColor)

	innerWidth := max(s.Width-2, 1)

	var top strings.Builder
	if s.Title == "" {
		top.WriteString(borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight))
	} else {
		titleLen := lipgloss.Width(s.Title)
		if s.Hint != "" {
			titleLen += lipgloss.Width(" (" + s.Hint + ")")
		}
		dashes := max(innerWidth-titleLen-3, 0) // "─ " before and " " after the title

		top.WriteString(borderStyle.Render(borderTopLeft + borderHorizontal + " "))
		top.WriteString(titleStyle.Render(s.Title))
		if s.Hint != "" {
			top.WriteString(" " + HintStyle.Render("("+s.Hint+")"))
		}
		top.WriteString(borderStyle.Render(" " + strings.Repeat(borderHorizontal, dashes) + borderTopRight))
	}

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, top.String())
	for _, row := range content {
		pad := max(innerWidth-lipgloss.Width(row), 0)
		lines = append(lines, borderStyle.Render(borderVertical)+row+strings.Repeat(" ", pad)+borderStyle.Render(borderVertical))
	}
	lines = append(lines, borderStyle.Render(borderBottomLeft+strings.Repeat(borderHorizontal, innerWidth)+borderBottomRight))

	return strings.Join(lines, "\n")
}
