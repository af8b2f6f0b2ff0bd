package domain

// AnomalyKind identifies how a d-block anomaly rewrites the configuration tail.
type AnomalyKind string

// Anomaly kinds.
const (
	// AnomalyPromote moves one electron from the outer s subshell to the d subshell.
	AnomalyPromote AnomalyKind = "promote"

	// AnomalyCollapse empties the outer s subshell into the d subshell.
	AnomalyCollapse AnomalyKind = "collapse"

	// AnomalyLawrencium replaces 6d1 with 7p1.
	AnomalyLawrencium AnomalyKind = "lawrencium"
)

// String returns the string representation.
func (k AnomalyKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the anomaly.
func (k AnomalyKind) Description() string {
	switch k {
	case AnomalyPromote:
		return "one s electron promoted to d"
	case AnomalyCollapse:
		return "s electrons collapsed into d"
	case AnomalyLawrencium:
		return "d electron moved to 7p"
	default:
		return unknownDescription
	}
}

// anomalyRule matches the second-to-last subshell of a configuration by its
// level and an inclusive electron range.
type anomalyRule struct {
	level    int
	min, max int
	kind     AnomalyKind
}

// anomalyRules must stay mutually exclusive: at most one rule matches any
// (level, electrons) pair.
var anomalyRules = []anomalyRule{
	{level: 3, min: 4, max: 4, kind: AnomalyPromote},
	{level: 3, min: 9, max: 9, kind: AnomalyPromote},
	{level: 4, min: 3, max: 4, kind: AnomalyPromote},
	{level: 4, min: 6, max: 7, kind: AnomalyPromote},
	{level: 4, min: 8, max: 8, kind: AnomalyCollapse},
	{level: 4, min: 9, max: 9, kind: AnomalyPromote},
	{level: 5, min: 8, max: 9, kind: AnomalyPromote},
	{level: 6, min: 1, max: 1, kind: AnomalyLawrencium},
}

// lawrenciumLevel is the level of the synthetic p subshell the level-6 rule appends.
const lawrenciumLevel = 7

func (r anomalyRule) matches(level, electrons int) bool {
	return r.level == level && electrons >= r.min && electrons <= r.max
}

// matchAnomaly returns the rule for a d subshell at level holding electrons.
func matchAnomaly(level, electrons int) (anomalyRule, bool) {
	for _, r := range anomalyRules {
		if r.matches(level, electrons) {
			return r, true
		}
	}
	return anomalyRule{}, false
}

// Correct applies the d-block anomaly table to the configuration tail.
// It returns true if a rule was applied.
//
// Correction only runs when filling stopped in a d subshell, and only once:
// later calls are no-ops even if the corrected tail would match again.
func (c *Configuration) Correct() bool {
	if c.checked || c.lastShell != 3 {
		return false
	}
	c.checked = true

	tail := c.Subshells()
	if len(tail) < 2 {
		return false
	}
	outerS, outerD := tail[len(tail)-1], tail[len(tail)-2]

	rule, ok := matchAnomaly(outerD.Level, outerD.Electrons)
	if !ok {
		return false
	}

	switch rule.kind {
	case AnomalyPromote:
		c.set(outerS, outerS.Electrons-1)
		c.set(outerD, outerD.Electrons+1)
	case AnomalyCollapse:
		c.drop(outerS)
		c.set(outerD, outerD.Electrons+2)
		c.aphelion = outerD.Level
	case AnomalyLawrencium:
		c.drop(outerD)
		c.store(lawrenciumLevel, AzimuthalP, 1)
	}

	c.anomaly = &rule
	return true
}

// Anomaly returns the kind of correction applied, if any.
func (c *Configuration) Anomaly() (AnomalyKind, bool) {
	if c.anomaly == nil {
		return "", false
	}
	return c.anomaly.kind, true
}
