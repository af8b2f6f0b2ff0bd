package domain

// nobleGasCores lists the noble gas cores from largest to smallest.
var nobleGasCores = []struct {
	symbol    string
	electrons int
}{
	{"Og", 118},
	{"Rn", 86},
	{"Xe", 54},
	{"Kr", 36},
	{"Ar", 18},
	{"Ne", 10},
	{"He", 2},
}

// NobleGasNotation renders the configuration with the largest noble gas core
// it contains abbreviated, e.g. "[Ar] 3d5 4s1". A core is only used when
// every one of its subshells appears with the same electron count; when no
// core applies the full form is returned.
func (c *Configuration) NobleGasNotation() string {
	return c.nobleGas(Subshell.String)
}

func (c *Configuration) nobleGas(format func(Subshell) string) string {
	subshells := c.Subshells()

	for _, core := range nobleGasCores {
		if core.electrons >= c.electrons {
			continue
		}
		rest, ok := subtractCore(subshells, Build(core.electrons).Subshells())
		if !ok {
			continue
		}
		if len(rest) == 0 {
			return "[" + core.symbol + "]"
		}
		return "[" + core.symbol + "] " + joinSubshells(rest, format)
	}

	return joinSubshells(subshells, format)
}

// subtractCore removes core from subshells, keeping order. It fails if any
// core subshell is missing or holds a different count.
func subtractCore(subshells, core []Subshell) ([]Subshell, bool) {
	want := make(map[string]int, len(core))
	for _, s := range core {
		want[s.Name()] = s.Electrons
	}

	rest := make([]Subshell, 0, len(subshells))
	for _, s := range subshells {
		n, inCore := want[s.Name()]
		if !inCore {
			rest = append(rest, s)
			continue
		}
		if n != s.Electrons {
			return nil, false
		}
		delete(want, s.Name())
	}

	return rest, len(want) == 0
}

// Render formats the configuration in the given notation.
func (c *Configuration) Render(n Notation) string {
	return c.render(n, Subshell.String)
}

// Superscript renders the configuration in the given notation with
// superscript electron counts, e.g. "[Ne] 3s¹".
func (c *Configuration) Superscript(n Notation) string {
	return c.render(n, Subshell.Superscript)
}

func (c *Configuration) render(n Notation, format func(Subshell) string) string {
	if n == NotationNobleGas {
		return c.nobleGas(format)
	}
	return joinSubshells(c.Subshells(), format)
}
