package regform

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

// Zone IDs for mouse hit-testing.
const (
	zoneSubmit = "regform-submit"
	zoneTerms  = "regform-terms"
)

func fieldZoneID(f registration.Field) string {
	return "regform-field-" + f.String()
}

func genderZoneID(g registration.Gender) string {
	return "regform-gender-" + string(g)
}

// View renders the form. Callers scan the result with zone.Scan.
func (m Model) View() string {
	result := m.ctrl.Result()
	attempted := m.ctrl.Attempted()

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.catalog.Get("title")))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(m.catalog.Get("subtitle")))
	b.WriteString("\n\n")

	for i, f := range registration.Fields {
		showErr := result.Has(f) && (attempted || m.touched[f])

		var section string
		switch f {
		case registration.FieldGender:
			section = m.renderGender(showErr)
		case registration.FieldTerms:
			section = m.renderTerms()
		default:
			section = m.renderText(f, showErr)
		}
		b.WriteString(zone.Mark(fieldZoneID(f), section))
		b.WriteString("\n")

		if f == registration.FieldPassword {
			if meter := m.renderStrength(); meter != "" {
				b.WriteString(meter)
				b.WriteString("\n")
			}
		}
		if showErr {
			b.WriteString(m.renderError(result.Message(f)))
			b.WriteString("\n")
		}
		if i < len(registration.Fields)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderButton())
	return b.String()
}

func (m Model) renderText(f registration.Field, invalid bool) string {
	return styles.Section{
		Title:   m.catalog.Label(f),
		Width:   m.width,
		Focused: m.focus == int(f),
		Invalid: invalid,
	}.Render([]string{" " + m.inputs[f].View()})
}

func (m Model) renderGender(invalid bool) string {
	current := m.ctrl.Input().Gender
	focused := m.focus == int(registration.FieldGender)

	options := make([]string, 0, len(registration.Genders))
	for i, g := range registration.Genders {
		radio := "( )"
		if g == current {
			radio = "(●)"
		}
		label := m.catalog.Gender(g)
		style := styles.LabelStyle
		if focused && i == m.genderCursor {
			style = styles.LabelFocusedStyle
		}
		options = append(options, zone.Mark(genderZoneID(g), style.Render(radio+" "+label)))
	}

	hint := ""
	if current == registration.GenderUnset {
		hint = m.catalog.Gender(registration.GenderUnset)
	}
	return styles.Section{
		Title:   m.catalog.Label(registration.FieldGender),
		Hint:    hint,
		Width:   m.width,
		Focused: focused,
		Invalid: invalid,
	}.Render(layoutOptions(options, m.width-2))
}

// layoutOptions puts the options on one row when they fit and stacks them
// otherwise.
func layoutOptions(options []string, width int) []string {
	row := " " + strings.Join(options, "   ")
	if lipgloss.Width(row) <= width {
		return []string{row}
	}
	rows := make([]string, len(options))
	for i, opt := range options {
		rows[i] = " " + opt
	}
	return rows
}

func (m Model) renderTerms() string {
	box := "[ ]"
	if m.ctrl.Input().Terms {
		box = "[x]"
	}
	style := styles.LabelStyle
	if m.focus == int(registration.FieldTerms) {
		style = styles.LabelFocusedStyle
	}

	// "[x] " takes four cells
	label := wordwrap.String(m.catalog.Label(registration.FieldTerms), max(m.width-4, 10))
	lines := strings.Split(label, "\n")
	for i := range lines {
		prefix := "    "
		if i == 0 {
			prefix = box + " "
		}
		lines[i] = style.Render(prefix + lines[i])
	}
	lines = append(lines, "    "+styles.LinkStyle.Render(m.keys.Terms.Help().Key+" "+m.keys.Terms.Help().Desc))
	return zone.Mark(zoneTerms, strings.Join(lines, "\n"))
}

// renderStrength draws the label and a bar filled one third per bucket.
// Nothing is drawn for an empty password.
func (m Model) renderStrength() string {
	s := m.ctrl.Strength()
	if s == registration.StrengthNone {
		return ""
	}

	barWidth := max(m.width-2, 3)
	filled := barWidth * int(s) / int(registration.StrengthStrong)

	color := styles.StrengthColor(s)
	label := styles.HintStyle.Render(m.catalog.Get("strength.label")) + " " +
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(m.catalog.Strength(s))
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("━", filled)) +
		styles.HintStyle.Render(strings.Repeat("─", barWidth-filled))

	return " " + label + "\n " + bar
}

func (m Model) renderError(msg string) string {
	wrapped := wordwrap.String(msg, max(m.width-2, 10))
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = " " + styles.FieldErrorStyle.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderButton() string {
	var button string
	switch {
	case m.ctrl.Submitting():
		button = styles.DisabledButtonStyle.Render(m.spinner.View() + " " + m.catalog.Get("button.submitting"))
	case m.focus == focusButton:
		button = styles.PrimaryButtonFocusedStyle.Render(m.catalog.Get("button.submit"))
	default:
		button = styles.PrimaryButtonStyle.Render(m.catalog.Get("button.submit"))
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, zone.Mark(zoneSubmit, button))
}
