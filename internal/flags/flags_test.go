package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{"enabled flag", New(map[string]bool{FlagMouse: true}), FlagMouse, true},
		{"disabled flag", New(map[string]bool{FlagAltScreen: false}), FlagAltScreen, false},
		{"unknown flag", New(map[string]bool{FlagMouse: true}), "unknown-flag", false},
		{"nil registry", nil, FlagMouse, false},
		{"nil flags map", New(nil), FlagMouse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	src := map[string]bool{FlagMouse: true}
	r := New(src)

	src[FlagMouse] = false
	require.True(t, r.Enabled(FlagMouse))
}

func TestRegistry_All_ReturnsCopy(t *testing.T) {
	r := New(map[string]bool{FlagMouse: true, FlagAltScreen: false})

	all := r.All()
	require.Equal(t, map[string]bool{FlagMouse: true, FlagAltScreen: false}, all)

	all[FlagMouse] = false
	require.True(t, r.Enabled(FlagMouse))
}

func TestRegistry_All_Nil(t *testing.T) {
	var r *Registry
	require.NotNil(t, r.All())
	require.Empty(t, r.All())
}
