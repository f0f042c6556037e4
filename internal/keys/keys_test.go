package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Assignments(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"Next", k.Next, []string{"tab", "down"}},
		{"Prev", k.Prev, []string{"shift+tab", "up"}},
		{"Toggle", k.Toggle, []string{" "}},
		{"Enter", k.Enter, []string{"enter"}},
		{"Submit", k.Submit, []string{"ctrl+s"}},
		{"Terms", k.Terms, []string{"ctrl+t"}},
		{"Locale", k.Locale, []string{"ctrl+l"}},
		{"Quit", k.Quit, []string{"ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_NoPrintableGlobals(t *testing.T) {
	// Typing into a field must never trigger a global action.
	k := DefaultKeyMap()
	for _, b := range []key.Binding{k.Submit, k.Terms, k.Locale, k.Help, k.Quit} {
		for _, name := range b.Keys() {
			require.Greater(t, len(name), 1, "binding %q is printable", name)
		}
	}
}

func TestDefaultKeyMap_Matches(t *testing.T) {
	k := DefaultKeyMap()

	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, k.Submit))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, k.Next))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyShiftTab}, k.Prev))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, k.Toggle))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, k.Quit))
}

func TestLocalize(t *testing.T) {
	k := DefaultKeyMap().Localize(func(key string) string {
		if key == "help.submit" {
			return "မှတ်ပုံတင်"
		}
		return key
	})

	require.Equal(t, "မှတ်ပုံတင်", k.Submit.Help().Desc)
	require.Equal(t, "ctrl+s", k.Submit.Help().Key)
	require.Equal(t, "quit", k.Quit.Help().Desc, "unknown keys keep the default")
	require.Equal(t, "submit", DefaultKeyMap().Submit.Help().Desc, "original map untouched")
}

func TestHelp_Groups(t *testing.T) {
	k := DefaultKeyMap()
	require.Len(t, k.ShortHelp(), 6)
	require.Len(t, k.FullHelp(), 4)
}
