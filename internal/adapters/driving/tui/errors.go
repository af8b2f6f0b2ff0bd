package tui

import "errors"

// ErrMissingConfigurationService is returned when the configuration service is not provided.
var ErrMissingConfigurationService = errors.New("tui: configuration service is required")
