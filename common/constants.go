package common

const (
	PegenVersion     = "0.1.0"
	ConfigFileName   = "pegen.toml"
	DefaultExtension = "v"
)

// Generated datapath conventions shared by the resolver and the generator
const (
	// DataWidth is the width in bits of every data port, wire, and register
	DataWidth = 32

	// ComputedSuffix is appended to mux and functional unit names to form the
	// name of the wire carrying their result
	ComputedSuffix = "_out"

	// SelectSuffix is appended to mux and functional unit names to form the
	// name of their select input port
	SelectSuffix = "_sel"

	// ClockPort and ResetPort are only emitted when the PE has registers.
	// The reset is active-low.
	ClockPort = "clk"
	ResetPort = "rstz"
)
