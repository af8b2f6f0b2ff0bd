// Package domain defines the core entities and algorithms for aufbau.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Subshell: one (level, ℓ, electrons) entry of a configuration
//   - Configuration: the electron configuration produced by Fill
//   - Atom: protons, neutrons and electrons with derived properties
//   - AppSettings: rendering and computation preferences
//
// # Filling
//
// Fill walks subshells in Madelung order (lowest n+ℓ first, ties broken by
// lower n) without a lookup table, using a ladder index s = ℓ+1 and a level
// counter equal to n+ℓ. Correct then rewrites the tail of the configuration
// for the known d-block anomalies (Cr, Cu, Nb, Mo, Ru, Rh, Pd, Ag, Pt, Au, Lr).
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
