package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tail returns the last n subshells of a configuration in level order.
func tail(c *Configuration, n int) []Subshell {
	s := c.Subshells()
	return s[len(s)-n:]
}

func TestCorrect_DBlockAnomalies(t *testing.T) {
	tests := []struct {
		name      string
		electrons int
		kind      AnomalyKind
		before    []Subshell
		after     []Subshell
	}{
		{"chromium", 24, AnomalyPromote,
			[]Subshell{sub(3, AzimuthalD, 4), sub(4, AzimuthalS, 2)},
			[]Subshell{sub(3, AzimuthalD, 5), sub(4, AzimuthalS, 1)}},
		{"copper", 29, AnomalyPromote,
			[]Subshell{sub(3, AzimuthalD, 9), sub(4, AzimuthalS, 2)},
			[]Subshell{sub(3, AzimuthalD, 10), sub(4, AzimuthalS, 1)}},
		{"niobium", 41, AnomalyPromote,
			[]Subshell{sub(4, AzimuthalD, 3), sub(5, AzimuthalS, 2)},
			[]Subshell{sub(4, AzimuthalD, 4), sub(5, AzimuthalS, 1)}},
		{"molybdenum", 42, AnomalyPromote,
			[]Subshell{sub(4, AzimuthalD, 4), sub(5, AzimuthalS, 2)},
			[]Subshell{sub(4, AzimuthalD, 5), sub(5, AzimuthalS, 1)}},
		{"ruthenium", 44, AnomalyPromote,
			[]Subshell{sub(4, AzimuthalD, 6), sub(5, AzimuthalS, 2)},
			[]Subshell{sub(4, AzimuthalD, 7), sub(5, AzimuthalS, 1)}},
		{"rhodium", 45, AnomalyPromote,
			[]Subshell{sub(4, AzimuthalD, 7), sub(5, AzimuthalS, 2)},
			[]Subshell{sub(4, AzimuthalD, 8), sub(5, AzimuthalS, 1)}},
		{"silver", 47, AnomalyPromote,
			[]Subshell{sub(4, AzimuthalD, 9), sub(5, AzimuthalS, 2)},
			[]Subshell{sub(4, AzimuthalD, 10), sub(5, AzimuthalS, 1)}},
		{"platinum", 78, AnomalyPromote,
			[]Subshell{sub(5, AzimuthalD, 8), sub(6, AzimuthalS, 2)},
			[]Subshell{sub(5, AzimuthalD, 9), sub(6, AzimuthalS, 1)}},
		{"gold", 79, AnomalyPromote,
			[]Subshell{sub(5, AzimuthalD, 9), sub(6, AzimuthalS, 2)},
			[]Subshell{sub(5, AzimuthalD, 10), sub(6, AzimuthalS, 1)}},
		{"palladium", 46, AnomalyCollapse,
			[]Subshell{sub(4, AzimuthalD, 8), sub(5, AzimuthalS, 2)},
			[]Subshell{sub(4, AzimuthalP, 6), sub(4, AzimuthalD, 10)}},
		{"lawrencium", 103, AnomalyLawrencium,
			[]Subshell{sub(6, AzimuthalD, 1), sub(7, AzimuthalS, 2)},
			[]Subshell{sub(7, AzimuthalS, 2), sub(7, AzimuthalP, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Fill(tt.electrons)
			require.Equal(t, 3, c.LastShell())
			if diff := cmp.Diff(tt.before, tail(c, 2)); diff != "" {
				t.Fatalf("tail before correction (-want +got):\n%s", diff)
			}

			require.True(t, c.Correct())

			if diff := cmp.Diff(tt.after, tail(c, 2)); diff != "" {
				t.Errorf("tail after correction (-want +got):\n%s", diff)
			}
			kind, ok := c.Anomaly()
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.electrons, sumElectrons(c.Subshells()))
		})
	}
}

func TestCorrect_Palladium(t *testing.T) {
	c := Build(46)

	assert.Equal(t, "1s2 2s2 2p6 3s2 3p6 3d10 4s2 4p6 4d10", c.String())
	for _, s := range c.Subshells() {
		assert.NotEqual(t, "5s", s.Name())
	}
	assert.Equal(t, 4, c.Aphelion())
}

func TestCorrect_Lawrencium(t *testing.T) {
	c := Build(103)

	assert.Equal(t,
		"1s2 2s2 2p6 3s2 3p6 3d10 4s2 4p6 4d10 4f14 5s2 5p6 5d10 5f14 6s2 6p6 7s2 7p1",
		c.String())
	assert.Equal(t, 7, c.Aphelion())
}

func TestCorrect_NoRuleMatches(t *testing.T) {
	// Filling ends in a d subshell the table does not cover.
	for _, n := range []int{21, 25, 30, 43, 48, 71, 80, 104} {
		c := Fill(n)
		require.Equal(t, 3, c.LastShell(), "electrons=%d", n)
		before := c.Subshells()

		assert.False(t, c.Correct(), "electrons=%d", n)
		assert.Equal(t, before, c.Subshells(), "electrons=%d", n)

		_, ok := c.Anomaly()
		assert.False(t, ok)
	}
}

func TestCorrect_SkipsWhenNotDBlock(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 20, 36, 57} {
		c := Fill(n)
		require.NotEqual(t, 3, c.LastShell(), "electrons=%d", n)
		assert.False(t, c.Correct(), "electrons=%d", n)
	}
}

func TestCorrect_Idempotent(t *testing.T) {
	for n := 0; n <= MaxElectrons; n++ {
		c := Build(n)
		once := c.Subshells()

		require.False(t, c.Correct(), "electrons=%d corrected twice", n)
		require.Equal(t, once, c.Subshells(), "electrons=%d", n)
	}
}

func TestAnomalyRules_MutuallyExclusive(t *testing.T) {
	for level := 1; level <= 8; level++ {
		for electrons := 0; electrons <= AzimuthalD.Capacity(); electrons++ {
			matches := 0
			for _, r := range anomalyRules {
				if r.matches(level, electrons) {
					matches++
				}
			}
			assert.LessOrEqual(t, matches, 1, "level=%d electrons=%d", level, electrons)
		}
	}
}

func TestMatchAnomaly(t *testing.T) {
	tests := []struct {
		level     int
		electrons int
		kind      AnomalyKind
		ok        bool
	}{
		{3, 4, AnomalyPromote, true},
		{3, 5, "", false},
		{3, 9, AnomalyPromote, true},
		{4, 3, AnomalyPromote, true},
		{4, 5, "", false},
		{4, 8, AnomalyCollapse, true},
		{5, 7, "", false},
		{5, 9, AnomalyPromote, true},
		{6, 1, AnomalyLawrencium, true},
		{6, 2, "", false},
		{7, 1, "", false},
	}

	for _, tt := range tests {
		rule, ok := matchAnomaly(tt.level, tt.electrons)
		assert.Equal(t, tt.ok, ok, "level=%d electrons=%d", tt.level, tt.electrons)
		assert.Equal(t, tt.kind, rule.kind, "level=%d electrons=%d", tt.level, tt.electrons)
	}
}

func TestAnomalyKind_Description(t *testing.T) {
	assert.Equal(t, "one s electron promoted to d", AnomalyPromote.Description())
	assert.Equal(t, "s electrons collapsed into d", AnomalyCollapse.Description())
	assert.Equal(t, "d electron moved to 7p", AnomalyLawrencium.Description())
	assert.Equal(t, "Unknown", AnomalyKind("other").Description())
	assert.Equal(t, "promote", AnomalyPromote.String())
}
