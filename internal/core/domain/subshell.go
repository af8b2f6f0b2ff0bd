package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// subshellLabels holds the spectroscopic letters for ℓ = 0..10.
var subshellLabels = [...]string{"s", "p", "d", "f", "g", "h", "i", "j", "k", "l", "m"}

var superscripts = strings.NewReplacer(
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
)

// Azimuthal is the azimuthal quantum number ℓ of a subshell.
type Azimuthal int

// Common azimuthal quantum numbers.
const (
	AzimuthalS Azimuthal = iota
	AzimuthalP
	AzimuthalD
	AzimuthalF
)

// Label returns the conventional letter for ℓ, or "n{k}" once the letters run out
// (ℓ = 11 is "n1", ℓ = 12 is "n2", ...).
func (a Azimuthal) Label() string {
	if a >= 0 && int(a) < len(subshellLabels) {
		return subshellLabels[a]
	}
	return "n" + strconv.Itoa(int(a)-len(subshellLabels)+1)
}

// Capacity returns the number of electrons a full subshell of this type holds.
func (a Azimuthal) Capacity() int {
	return 4*(int(a)+1) - 2
}

// String returns the label.
func (a Azimuthal) String() string {
	return a.Label()
}

// Subshell is a single entry of an electron configuration.
type Subshell struct {
	// Level is the principal quantum number n.
	Level int

	// Azimuthal is the subshell type ℓ.
	Azimuthal Azimuthal

	// Electrons is the number of electrons placed in the subshell.
	Electrons int
}

// Capacity returns the maximum number of electrons for this subshell.
func (s Subshell) Capacity() int {
	return s.Azimuthal.Capacity()
}

// IsFull returns true if the subshell holds its full capacity.
func (s Subshell) IsFull() bool {
	return s.Electrons == s.Capacity()
}

// Name returns the subshell name without the electron count, e.g. "3d".
func (s Subshell) Name() string {
	return strconv.Itoa(s.Level) + s.Azimuthal.Label()
}

// String returns the compact form "{level}{label}{electrons}", e.g. "3d5".
func (s Subshell) String() string {
	return fmt.Sprintf("%d%s%d", s.Level, s.Azimuthal.Label(), s.Electrons)
}

// Superscript returns the name followed by the electron count in
// superscript digits, e.g. "3d⁵".
func (s Subshell) Superscript() string {
	return s.Name() + superscripts.Replace(strconv.Itoa(s.Electrons))
}
