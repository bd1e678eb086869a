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
		{
			name:     "known flag set to true returns true",
			registry: New(map[string]bool{FlagStrictRoomRefs: true}),
			flag:     FlagStrictRoomRefs,
			expected: true,
		},
		{
			name:     "known flag set to false returns false",
			registry: New(map[string]bool{FlagStrictRoomRefs: false}),
			flag:     FlagStrictRoomRefs,
			expected: false,
		},
		{
			name:     "unknown flag returns false",
			registry: New(map[string]bool{FlagStrictRoomRefs: true}),
			flag:     "unknown-flag",
			expected: false,
		},
		{
			name:     "nil registry returns false",
			registry: nil,
			flag:     FlagStrictRoomRefs,
			expected: false,
		},
		{
			name:     "nil flags map returns false",
			registry: New(nil),
			flag:     FlagStrictRoomRefs,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_All(t *testing.T) {
	require.Equal(t, map[string]bool{"a": true, "b": false}, New(map[string]bool{"a": true, "b": false}).All())
	require.Equal(t, map[string]bool{}, (*Registry)(nil).All())
	require.Equal(t, map[string]bool{}, New(nil).All())
}

func TestRegistry_DefensiveCopies(t *testing.T) {
	input := map[string]bool{FlagStrictRoomRefs: true}
	r := New(input)

	input[FlagStrictRoomRefs] = false
	require.True(t, r.Enabled(FlagStrictRoomRefs), "registry must not alias the config map")

	all := r.All()
	all[FlagStrictRoomRefs] = false
	all["new-flag"] = true
	require.True(t, r.Enabled(FlagStrictRoomRefs))
	require.False(t, r.Enabled("new-flag"))
}

func TestRegistry_EnabledNames(t *testing.T) {
	r := New(map[string]bool{"zeta": true, "alpha": true, "off": false})
	require.Equal(t, []string{"alpha", "zeta"}, r.EnabledNames())
	require.Nil(t, (*Registry)(nil).EnabledNames())
}

func TestKnown_HasDefaults(t *testing.T) {
	def, ok := Known[FlagStrictRoomRefs]
	require.True(t, ok)
	require.False(t, def)
}

func TestRegistry_Update(t *testing.T) {
	r := New(map[string]bool{FlagStrictRoomRefs: false})

	changed := r.Update(map[string]bool{FlagStrictRoomRefs: true, "legacy": true})
	require.Equal(t, []string{FlagStrictRoomRefs}, changed, "unknown flags are not reported")
	require.True(t, r.Enabled(FlagStrictRoomRefs))
	require.True(t, r.Enabled("legacy"))

	require.Empty(t, r.Update(map[string]bool{FlagStrictRoomRefs: true}))
	require.Equal(t, []string{FlagStrictRoomRefs}, r.Update(nil))
	require.False(t, r.Enabled(FlagStrictRoomRefs))
	require.Empty(t, r.All())

	var nilRegistry *Registry
	require.Nil(t, nilRegistry.Update(map[string]bool{FlagStrictRoomRefs: true}))
}
