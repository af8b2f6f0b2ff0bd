package domain

import (
	"fmt"
	"strings"
)

// MaxElectrons is the largest electron count Fill accepts.
const MaxElectrons = 5000

// ValidateElectrons reports whether n can be passed to Fill or Build.
func ValidateElectrons(n int) error {
	if n < 0 || n > MaxElectrons {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrElectronsOutOfRange, n, MaxElectrons)
	}
	return nil
}

// Configuration is the electron configuration for a given electron count.
//
// A Configuration is built once by Fill and may be adjusted once by Correct.
// It is not safe to call Correct concurrently with readers.
type Configuration struct {
	electrons int

	// shells holds electron counts indexed by [ℓ][n-ℓ-1].
	shells [][]int

	// fill is the raw Madelung-order trace recorded by Fill.
	fill []Subshell

	maxAzimuthal Azimuthal
	aphelion     int

	// lastShell is the ladder index (ℓ+1) at which filling stopped.
	lastShell int

	checked bool
	anomaly *anomalyRule
}

// Fill distributes electrons over subshells in Madelung order.
//
// The ladder index s (= ℓ+1) and the level counter (= n+ℓ) walk the n+ℓ
// diagonals: when s reaches 1 the counter advances and s restarts at
// ceil(counter/2), otherwise s steps down. The last subshell may be partial.
//
// Fill panics if electrons is outside [0, MaxElectrons]; callers validate
// with ValidateElectrons first.
func Fill(electrons int) *Configuration {
	if err := ValidateElectrons(electrons); err != nil {
		panic(fmt.Sprintf("domain: fill: %v", err))
	}

	c := &Configuration{electrons: electrons}

	remaining := electrons
	shell, maxLevel := 1, 1
	for remaining > 0 {
		capacity := (2*shell - 1) * 2
		allocated := min(capacity, remaining)

		c.record(maxLevel-shell+1, Azimuthal(shell-1), allocated)
		c.lastShell = shell
		remaining -= allocated

		if remaining == 0 {
			break
		}

		if shell == 1 {
			maxLevel++
			shell = (maxLevel + 1) / 2
		} else {
			shell--
		}
	}

	return c
}

// Build fills electrons and applies the anomaly correction.
func Build(electrons int) *Configuration {
	c := Fill(electrons)
	c.Correct()
	return c
}

// record appends a subshell produced by the filler.
func (c *Configuration) record(level int, az Azimuthal, electrons int) {
	c.store(level, az, electrons)
	c.fill = append(c.fill, Subshell{Level: level, Azimuthal: az, Electrons: electrons})

	if az > c.maxAzimuthal {
		c.maxAzimuthal = az
	}
	if level > c.aphelion {
		c.aphelion = level
	}
}

// store appends to the per-ℓ table. Levels arrive in increasing order for
// each ℓ, so the new entry lands at position level-ℓ-1.
func (c *Configuration) store(level int, az Azimuthal, electrons int) {
	for len(c.shells) <= int(az) {
		c.shells = append(c.shells, nil)
	}
	if pos := level - int(az) - 1; pos != len(c.shells[az]) {
		panic(fmt.Sprintf("domain: store %d%s out of order", level, az.Label()))
	}
	c.shells[az] = append(c.shells[az], electrons)
}

// set overwrites the electron count of an existing subshell.
func (c *Configuration) set(s Subshell, electrons int) {
	c.shells[s.Azimuthal][s.Level-int(s.Azimuthal)-1] = electrons
}

// drop removes an existing subshell. Only the highest level of a given ℓ
// may be dropped, otherwise the table would shift.
func (c *Configuration) drop(s Subshell) {
	row := c.shells[s.Azimuthal]
	if pos := s.Level - int(s.Azimuthal) - 1; pos != len(row)-1 {
		panic(fmt.Sprintf("domain: drop %s is not outermost", s.Name()))
	}
	c.shells[s.Azimuthal] = row[:len(row)-1]
}

// Subshells returns the configuration ordered by principal level, then ℓ.
//
// For each level n the walk reads [ℓ][n-ℓ-1] for ℓ = 0, 1, ... and stops at
// the first missing entry; the walk ends at the first level with no entries.
// The last two entries are therefore the outermost s subshell and the
// subshell just below it.
func (c *Configuration) Subshells() []Subshell {
	out := make([]Subshell, 0, len(c.fill)+1)
	for level := 1; ; level++ {
		found := false
		for az := 0; az < len(c.shells) && az < level; az++ {
			pos := level - az - 1
			if pos >= len(c.shells[az]) {
				break
			}
			out = append(out, Subshell{Level: level, Azimuthal: Azimuthal(az), Electrons: c.shells[az][pos]})
			found = true
		}
		if !found {
			return out
		}
	}
}

// FillOrder returns the subshells in the order the filler visited them,
// before any anomaly correction.
func (c *Configuration) FillOrder() []Subshell {
	out := make([]Subshell, len(c.fill))
	copy(out, c.fill)
	return out
}

// TotalElectrons returns the electron count the configuration was built for.
func (c *Configuration) TotalElectrons() int {
	return c.electrons
}

// MaxAzimuthal returns the highest ℓ reached by the filler.
func (c *Configuration) MaxAzimuthal() Azimuthal {
	return c.maxAzimuthal
}

// Aphelion returns the outermost occupied principal level, or 0 when empty.
func (c *Configuration) Aphelion() int {
	return c.aphelion
}

// LastShell returns the ladder index (ℓ+1) of the last filled subshell,
// or 0 for an empty configuration. A value of 3 means filling ended in a
// d subshell.
func (c *Configuration) LastShell() int {
	return c.lastShell
}

// Block returns the label of the last filled subshell ("s", "p", "d", ...),
// or an empty string when no electrons were placed.
func (c *Configuration) Block() string {
	if len(c.fill) == 0 {
		return ""
	}
	return c.fill[len(c.fill)-1].Azimuthal.Label()
}

// ShellOccupancy returns the electrons per principal level, index 0 being n = 1.
func (c *Configuration) ShellOccupancy() []int {
	occupancy := make([]int, c.aphelion)
	for _, s := range c.Subshells() {
		occupancy[s.Level-1] += s.Electrons
	}
	return occupancy
}

// String renders the configuration as space separated subshells, e.g.
// "1s2 2s2 2p6".
func (c *Configuration) String() string {
	return joinSubshells(c.Subshells(), Subshell.String)
}

func joinSubshells(subshells []Subshell, format func(Subshell) string) string {
	parts := make([]string, len(subshells))
	for i, s := range subshells {
		parts[i] = format(s)
	}
	return strings.Join(parts, " ")
}
