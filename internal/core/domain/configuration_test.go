package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sub(level int, az Azimuthal, electrons int) Subshell {
	return Subshell{Level: level, Azimuthal: az, Electrons: electrons}
}

func sumElectrons(subshells []Subshell) int {
	total := 0
	for _, s := range subshells {
		total += s.Electrons
	}
	return total
}

func TestFill_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		electrons int
		want      []Subshell
	}{
		{"empty", 0, []Subshell{}},
		{"hydrogen", 1, []Subshell{sub(1, AzimuthalS, 1)}},
		{"helium", 2, []Subshell{sub(1, AzimuthalS, 2)}},
		{"boron", 5, []Subshell{sub(1, AzimuthalS, 2), sub(2, AzimuthalS, 2), sub(2, AzimuthalP, 1)}},
		{"neon", 10, []Subshell{sub(1, AzimuthalS, 2), sub(2, AzimuthalS, 2), sub(2, AzimuthalP, 6)}},
		{"sodium", 11, []Subshell{
			sub(1, AzimuthalS, 2), sub(2, AzimuthalS, 2), sub(2, AzimuthalP, 6), sub(3, AzimuthalS, 1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fill(tt.electrons).Subshells()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Subshells() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFill_MadelungOrder(t *testing.T) {
	// 118 electrons covers every subshell up to 7p.
	c := Fill(118)

	names := make([]string, 0, len(c.FillOrder()))
	for _, s := range c.FillOrder() {
		names = append(names, s.Name())
	}

	want := []string{
		"1s", "2s", "2p", "3s", "3p", "4s", "3d", "4p", "5s", "4d", "5p",
		"6s", "4f", "5d", "6p", "7s", "5f", "6d", "7p",
	}
	assert.Equal(t, want, names)
}

func TestFill_FillOrderIsPreCorrection(t *testing.T) {
	c := Build(24)

	want := []Subshell{
		sub(1, AzimuthalS, 2), sub(2, AzimuthalS, 2), sub(2, AzimuthalP, 6),
		sub(3, AzimuthalS, 2), sub(3, AzimuthalP, 6), sub(4, AzimuthalS, 2), sub(3, AzimuthalD, 4),
	}
	if diff := cmp.Diff(want, c.FillOrder()); diff != "" {
		t.Errorf("FillOrder() mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_SubshellsOrderedByLevel(t *testing.T) {
	c := Fill(24)

	want := []Subshell{
		sub(1, AzimuthalS, 2), sub(2, AzimuthalS, 2), sub(2, AzimuthalP, 6),
		sub(3, AzimuthalS, 2), sub(3, AzimuthalP, 6), sub(3, AzimuthalD, 4), sub(4, AzimuthalS, 2),
	}
	if diff := cmp.Diff(want, c.Subshells()); diff != "" {
		t.Errorf("Subshells() mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_SumMatchesRequest(t *testing.T) {
	for n := 0; n <= MaxElectrons; n++ {
		require.Equal(t, n, sumElectrons(Fill(n).Subshells()), "fill(%d)", n)
		require.Equal(t, n, sumElectrons(Build(n).Subshells()), "build(%d)", n)
	}
}

func TestFill_CapacityAndPartialOnlyLast(t *testing.T) {
	for n := 1; n <= MaxElectrons; n++ {
		fill := Fill(n).FillOrder()
		for i, s := range fill {
			require.GreaterOrEqual(t, s.Electrons, 0, "fill(%d) %s", n, s)
			require.LessOrEqual(t, s.Electrons, s.Capacity(), "fill(%d) %s", n, s)
			if i < len(fill)-1 {
				require.True(t, s.IsFull(), "fill(%d): %s partial before last", n, s)
			}
		}

		for _, s := range Build(n).Subshells() {
			require.GreaterOrEqual(t, s.Electrons, 0, "build(%d) %s", n, s)
			require.LessOrEqual(t, s.Electrons, s.Capacity(), "build(%d) %s", n, s)
		}
	}
}

func TestFill_PrefixProgression(t *testing.T) {
	for n := 1; n < MaxElectrons; n++ {
		cur := Fill(n).FillOrder()
		next := Fill(n + 1).FillOrder()
		last := cur[len(cur)-1]

		require.Equal(t, cur[:len(cur)-1], next[:len(cur)-1], "fill(%d) is not a prefix of fill(%d)", n, n+1)

		if last.IsFull() {
			require.Len(t, next, len(cur)+1, "fill(%d) should open a new subshell", n+1)
			assert.Equal(t, last, next[len(cur)-1])
			assert.Equal(t, 1, next[len(next)-1].Electrons)
		} else {
			require.Len(t, next, len(cur), "fill(%d) should stay in %s", n+1, last.Name())
			assert.Equal(t, last.Name(), next[len(next)-1].Name())
			assert.Equal(t, last.Electrons+1, next[len(next)-1].Electrons)
		}
	}
}

func TestFill_PanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Fill(MaxElectrons + 1) })
	assert.Panics(t, func() { Fill(-1) })
	assert.NotPanics(t, func() { Fill(MaxElectrons) })
}

func TestValidateElectrons(t *testing.T) {
	assert.NoError(t, ValidateElectrons(0))
	assert.NoError(t, ValidateElectrons(MaxElectrons))

	err := ValidateElectrons(MaxElectrons + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrElectronsOutOfRange)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.ErrorIs(t, ValidateElectrons(-3), ErrElectronsOutOfRange)
}

func TestConfiguration_Summaries(t *testing.T) {
	tests := []struct {
		electrons    int
		maxAzimuthal Azimuthal
		aphelion     int
		lastShell    int
		block        string
	}{
		{0, AzimuthalS, 0, 0, ""},
		{1, AzimuthalS, 1, 1, "s"},
		{10, AzimuthalP, 2, 2, "p"},
		{11, AzimuthalP, 3, 1, "s"},
		{24, AzimuthalD, 4, 3, "d"},
		{57, AzimuthalF, 6, 4, "f"},
	}

	for _, tt := range tests {
		c := Fill(tt.electrons)
		assert.Equal(t, tt.electrons, c.TotalElectrons())
		assert.Equal(t, tt.maxAzimuthal, c.MaxAzimuthal(), "electrons=%d", tt.electrons)
		assert.Equal(t, tt.aphelion, c.Aphelion(), "electrons=%d", tt.electrons)
		assert.Equal(t, tt.lastShell, c.LastShell(), "electrons=%d", tt.electrons)
		assert.Equal(t, tt.block, c.Block(), "electrons=%d", tt.electrons)
	}
}

func TestConfiguration_ShellOccupancy(t *testing.T) {
	assert.Equal(t, []int{}, Fill(0).ShellOccupancy())
	assert.Equal(t, []int{2, 8, 1}, Build(11).ShellOccupancy())
	assert.Equal(t, []int{2, 8, 13, 1}, Build(24).ShellOccupancy())
	assert.Equal(t, []int{2, 8, 18, 18}, Build(46).ShellOccupancy())
}

func TestConfiguration_String(t *testing.T) {
	assert.Equal(t, "", Fill(0).String())
	assert.Equal(t, "1s1", Fill(1).String())
	assert.Equal(t, "1s2 2s2 2p6", Fill(10).String())
	assert.Equal(t, "1s2 2s2 2p6 3s2 3p6 3d5 4s1", Build(24).String())
}
