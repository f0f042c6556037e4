package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SIGNUP_DATA", "/srv/signup")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde alone", "~", home},
		{"tilde prefix", "~/.config/signup/accounts.db", filepath.Join(home, ".config", "signup", "accounts.db")},
		{"env var", "$SIGNUP_DATA/accounts.db", "/srv/signup/accounts.db"},
		{"braced env var", "${SIGNUP_DATA}/traces.jsonl", "/srv/signup/traces.jsonl"},
		{"relative cleaned", "./.signup//config.yaml", ".signup/config.yaml"},
		{"other user untouched", "~bob/file", "~bob/file"},
		{"absolute", "/tmp/a/../b", "/tmp/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Expand(tt.in))
		})
	}
}

func TestUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, filepath.Join(home, ".config", "signup"), UserConfigDir())
}
