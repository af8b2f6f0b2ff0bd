package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrElectronsOutOfRange indicates an electron count outside [0, MaxElectrons].
	// It wraps ErrInvalidInput.
	ErrElectronsOutOfRange = fmt.Errorf("%w: electron count out of range", ErrInvalidInput)

	// ErrInvalidRange indicates a range whose start is after its end.
	// It wraps ErrInvalidInput.
	ErrInvalidRange = fmt.Errorf("%w: invalid electron range", ErrInvalidInput)

	// ErrInvalidAtom indicates negative proton or neutron counts.
	ErrInvalidAtom = fmt.Errorf("%w: invalid atom", ErrInvalidInput)
)
