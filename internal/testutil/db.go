package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/signup/internal/account"
)

// NewTestStore opens an account store in a temp dir and closes it when the
// test ends. It returns the store and its database path.
func NewTestStore(t *testing.T) (*account.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.db")
	store, err := account.OpenStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}
