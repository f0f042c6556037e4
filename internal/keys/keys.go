// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the registration form.
// Printable keys are left to the text inputs, so every global action uses a
// modifier or a non-printing key.
type KeyMap struct {
	// Navigation
	Next key.Binding
	Prev key.Binding

	// Choice fields (gender, terms)
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding

	// Actions
	Enter  key.Binding
	Submit key.Binding
	Terms  key.Binding
	Locale key.Binding

	// General
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),

		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),

		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press button"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Terms: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "read terms"),
		),
		Locale: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "language"),
		),

		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Localize returns a copy whose help descriptions come from lookup.
// Keys are "help.<name>"; lookup returning the key itself keeps the default.
func (k KeyMap) Localize(lookup func(string) string) KeyMap {
	set := func(b *key.Binding, name string) {
		msgKey := "help." + name
		if desc := lookup(msgKey); desc != "" && desc != msgKey {
			b.SetHelp(b.Help().Key, desc)
		}
	}
	set(&k.Next, "next")
	set(&k.Prev, "prev")
	set(&k.Toggle, "toggle")
	set(&k.Enter, "enter")
	set(&k.Submit, "submit")
	set(&k.Terms, "terms")
	set(&k.Locale, "locale")
	set(&k.Help, "help")
	set(&k.Escape, "close")
	set(&k.Quit, "quit")
	return k
}

// ShortHelp returns keybindings for the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Terms, k.Locale, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},                       // Navigation
		{k.Left, k.Right, k.Toggle},            // Choices
		{k.Enter, k.Submit, k.Terms, k.Locale}, // Actions
		{k.Help, k.Escape, k.Quit},             // General
	}
}
