package versionstamp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icedream/versionstamp"
)

func TestComponents(t *testing.T) {
	tests := []struct {
		version string
		want    []string
	}{
		{"1.2.3", []string{"1", "2", "3", "0"}},
		{"1.2.3-service-refactor", []string{"1", "2", "3", "0"}},
		{"1.2.3-rc.1", []string{"1", "2", "3", "0"}},
		{"1.0.0+sha.abc123", []string{"1", "0", "0", "0"}},
		{"2.0", []string{"2", "0", "0", "0"}},
		{"7", []string{"7", "0", "0", "0"}},
		{"1.2.3.4", []string{"1", "2", "3", "4"}},
		{"1.2.3.4.5", []string{"1", "2", "3", "4", "5"}},
		{"Unknown", []string{"Unknown", "0", "0", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, versionstamp.Components(tt.version))
		})
	}
}

// Padding re-evaluates the component count after every append, so short
// versions terminate and end up with exactly four components instead of
// looping on a stale length.
func TestComponentsPaddingTerminates(t *testing.T) {
	parts := versionstamp.Components("2.0")
	require.Len(t, parts, 4)
	assert.Equal(t, []string{"2", "0", "0", "0"}, parts)

	// Even degenerate input gains the full complement of zeros.
	assert.Len(t, versionstamp.Components(""), 4)
}

func TestTuple(t *testing.T) {
	assert.Equal(t, "1,2,3,0", versionstamp.Tuple(versionstamp.Components("1.2.3")))
	assert.Equal(t, "Unknown,0,0,0", versionstamp.Tuple(versionstamp.Components("Unknown")))
}

func TestNumericTuple(t *testing.T) {
	tuple, ok := versionstamp.NumericTuple(versionstamp.Components("1.2.3"))
	require.True(t, ok)
	assert.Equal(t, [4]int{1, 2, 3, 0}, tuple)

	_, ok = versionstamp.NumericTuple(versionstamp.Components("Unknown"))
	assert.False(t, ok)
}

func TestIsSemver(t *testing.T) {
	assert.True(t, versionstamp.IsSemver("1.2.3"))
	assert.True(t, versionstamp.IsSemver("v1.2.3"))
	assert.True(t, versionstamp.IsSemver("1.2.3-service-refactor"))
	assert.False(t, versionstamp.IsSemver("Unknown"))
	assert.False(t, versionstamp.IsSemver("1.2.3.4"))
}
