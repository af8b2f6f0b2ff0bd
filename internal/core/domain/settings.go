package domain

const unknownDescription = "Unknown"

// Notation controls how a configuration is rendered.
type Notation string

// Available notations.
const (
	// NotationFull lists every subshell, e.g. "1s2 2s2 2p6 3s1".
	NotationFull Notation = "full"

	// NotationNobleGas abbreviates the noble gas core, e.g. "[Ne] 3s1".
	NotationNobleGas Notation = "noble_gas"
)

// IsValid returns true if the notation is recognised.
func (n Notation) IsValid() bool {
	switch n {
	case NotationFull, NotationNobleGas:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (n Notation) String() string {
	return string(n)
}

// Description returns a human-readable description of the notation.
func (n Notation) Description() string {
	switch n {
	case NotationFull:
		return "Full (every subshell)"
	case NotationNobleGas:
		return "Noble gas (abbreviated core)"
	default:
		return unknownDescription
	}
}

// OutputFormat controls how command output is encoded.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText is human-readable text.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON is indented JSON.
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML is YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// RenderSettings holds presentation preferences.
type RenderSettings struct {
	// Notation is the default configuration notation.
	Notation Notation

	// Format is the default output encoding.
	Format OutputFormat
}

// ComputeSettings holds computation preferences.
type ComputeSettings struct {
	// Anomalies enables the d-block anomaly correction.
	Anomalies bool

	// Workers bounds the concurrency of range computations.
	Workers int
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Render  RenderSettings
	Compute ComputeSettings
}

// DefaultWorkers is the default range concurrency.
const DefaultWorkers = 4

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Render: RenderSettings{
			Notation: NotationFull,
			Format:   OutputFormatText,
		},
		Compute: ComputeSettings{
			Anomalies: true,
			Workers:   DefaultWorkers,
		},
	}
}
