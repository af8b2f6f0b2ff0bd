package domain

import "fmt"

// ChemicalSet is a chemical family recognised from the valence subshell.
type ChemicalSet string

// Recognised chemical sets.
const (
	ChemicalSetAlkaliMetal   ChemicalSet = "alkali_metal"
	ChemicalSetAlkalineEarth ChemicalSet = "alkaline_earth_metal"
	ChemicalSetChalcogen     ChemicalSet = "chalcogen"
	ChemicalSetHalogen       ChemicalSet = "halogen"
	ChemicalSetNobleGas      ChemicalSet = "noble_gas"
)

// String returns the string representation.
func (c ChemicalSet) String() string {
	return string(c)
}

// Description returns a human-readable name of the set.
func (c ChemicalSet) Description() string {
	switch c {
	case ChemicalSetAlkaliMetal:
		return "Alkali metal"
	case ChemicalSetAlkalineEarth:
		return "Alkaline earth metal"
	case ChemicalSetChalcogen:
		return "Chalcogen"
	case ChemicalSetHalogen:
		return "Halogen"
	case ChemicalSetNobleGas:
		return "Noble gas"
	default:
		return unknownDescription
	}
}

// ChemicalSetsFromValence classifies a valence subshell. The first shell
// only holds s electrons, so 1s1 belongs to no set and 1s2 is a noble gas.
func ChemicalSetsFromValence(valence Subshell) []ChemicalSet {
	var set ChemicalSet
	switch {
	case valence.Level == 1 && valence.Azimuthal == AzimuthalS:
		if valence.Electrons == 2 {
			set = ChemicalSetNobleGas
		}
	case valence.Azimuthal == AzimuthalS && valence.Electrons == 1:
		set = ChemicalSetAlkaliMetal
	case valence.Azimuthal == AzimuthalS && valence.Electrons == 2:
		set = ChemicalSetAlkalineEarth
	case valence.Azimuthal == AzimuthalP && valence.Electrons == 4:
		set = ChemicalSetChalcogen
	case valence.Azimuthal == AzimuthalP && valence.Electrons == 5:
		set = ChemicalSetHalogen
	case valence.Azimuthal == AzimuthalP && valence.Electrons == 6:
		set = ChemicalSetNobleGas
	}

	sets := make([]ChemicalSet, 0, 1)
	if set != "" {
		sets = append(sets, set)
	}
	return sets
}

// Atom is a neutral atom or ion. Its configuration is built once, with
// anomalies applied, when the atom is created.
type Atom struct {
	protons       int
	neutrons      int
	electrons     int
	configuration *Configuration
}

// NewAtom creates an atom from proton, electron and neutron counts.
func NewAtom(protons, electrons, neutrons int) (*Atom, error) {
	if protons < 0 || neutrons < 0 {
		return nil, fmt.Errorf("%w: protons=%d neutrons=%d", ErrInvalidAtom, protons, neutrons)
	}
	if err := ValidateElectrons(electrons); err != nil {
		return nil, err
	}
	return newAtom(protons, electrons, neutrons, Build(electrons)), nil
}

// NewNeutralAtom creates a neutral atom with equal protons and electrons.
func NewNeutralAtom(protonsAndElectrons, neutrons int) (*Atom, error) {
	return NewAtom(protonsAndElectrons, protonsAndElectrons, neutrons)
}

// NewNuclide creates a neutral atom with equal protons, electrons and neutrons.
func NewNuclide(n int) (*Atom, error) {
	return NewAtom(n, n, n)
}

// NewAtomWithConfiguration creates an atom around an already computed
// configuration, e.g. one built without anomaly correction.
func NewAtomWithConfiguration(protons, neutrons int, c *Configuration) (*Atom, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil configuration", ErrInvalidAtom)
	}
	if protons < 0 || neutrons < 0 {
		return nil, fmt.Errorf("%w: protons=%d neutrons=%d", ErrInvalidAtom, protons, neutrons)
	}
	return newAtom(protons, c.TotalElectrons(), neutrons, c), nil
}

func newAtom(protons, electrons, neutrons int, c *Configuration) *Atom {
	return &Atom{
		protons:       protons,
		electrons:     electrons,
		neutrons:      neutrons,
		configuration: c,
	}
}

// Protons returns the number of protons.
func (a *Atom) Protons() int {
	return a.protons
}

// Electrons returns the number of electrons.
func (a *Atom) Electrons() int {
	return a.electrons
}

// Neutrons returns the number of neutrons.
func (a *Atom) Neutrons() int {
	return a.neutrons
}

// AtomicMass returns the mass number (protons + neutrons).
func (a *Atom) AtomicMass() float64 {
	return float64(a.protons + a.neutrons)
}

// IonCharge returns the electric charge, protons minus electrons.
func (a *Atom) IonCharge() int {
	return a.protons - a.electrons
}

// IsIon returns true if the atom carries a charge.
func (a *Atom) IsIon() bool {
	return a.IonCharge() != 0
}

// IsIsotopeOf returns true if both atoms have the same number of protons.
func (a *Atom) IsIsotopeOf(other *Atom) bool {
	return other != nil && a.protons == other.protons
}

// Configuration returns the electron configuration.
func (a *Atom) Configuration() *Configuration {
	return a.configuration
}

// ChemicalSets classifies the atom by its last filled subshell.
func (a *Atom) ChemicalSets() []ChemicalSet {
	fill := a.configuration.FillOrder()
	if len(fill) == 0 {
		return []ChemicalSet{}
	}
	return ChemicalSetsFromValence(fill[len(fill)-1])
}
