package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cassowary/core"
)

// TestStrength_NamedLevels pins the lexicographic encoding of the named
// levels: each band caps at 1000 of the band below.
func TestStrength_NamedLevels(t *testing.T) {
	assert.Equal(t, core.Strength(1), core.Weak)
	assert.Equal(t, core.Strength(1_000), core.Medium)
	assert.Equal(t, core.Strength(1_000_000), core.Strong)
	assert.Equal(t, core.Strength(1_001_001_000), core.Required)

	assert.Equal(t, core.Required, core.MakeStrength(1_000, 1_000, 1_000, 1))
}

// TestMakeStrength_Composition verifies band scaling and the multiplier.
func TestMakeStrength_Composition(t *testing.T) {
	assert.Equal(t, core.Strength(1_002_003), core.MakeStrength(1, 2, 3, 1))
	assert.Equal(t, core.Strength(2_004_006), core.MakeStrength(1, 2, 3, 2))
}

// TestMakeStrength_BandClamping checks components clamp to [0,1000]
// before entering their band, so bands never bleed upward.
func TestMakeStrength_BandClamping(t *testing.T) {
	// medium=5000 clamps to 1000, it cannot spill into the strong band
	assert.Equal(t, core.Strength(1_000_000), core.MakeStrength(0, 5_000, 0, 1))
	// negative components clamp to zero
	assert.Equal(t, core.Strength(0), core.MakeStrength(-1, -2, -3, 1))
}

// TestClip pins clamping into [0, Required].
func TestClip(t *testing.T) {
	assert.Equal(t, core.Required, core.Clip(core.Required+1))
	assert.Equal(t, core.Strength(0), core.Clip(-5))
	assert.Equal(t, core.Medium, core.Clip(core.Medium))
}
