package resolve

import (
	"pegen/common"
	"pegen/model"
)

// EndpointKind says how a connection endpoint must be referenced in generated
// expressions
type EndpointKind int

// Enumeration of endpoint kinds
const (
	PrimaryInput   EndpointKind = iota // a module input port, referenced by its name
	Register                           // a register, referenced by its name
	ComputedOutput                     // a mux or functional unit, referenced through its `_out` wire
	Unknown                            // anything else; referenced as if it were computed
)

var endpointKindNames = map[EndpointKind]string{
	PrimaryInput:   "primary input",
	Register:       "register",
	ComputedOutput: "computed output",
	Unknown:        "unknown",
}

func (ek EndpointKind) String() string {
	return endpointKindNames[ek]
}

// Classify determines which kind of endpoint `name` is
func (ix *Index) Classify(name string) EndpointKind {
	ns, ok := ix.names[name]
	if !ok {
		return Unknown
	}

	switch ns {
	case model.NSInput:
		return PrimaryInput
	case model.NSRegister:
		return Register
	case model.NSMux, model.NSFunctionalUnit:
		return ComputedOutput
	default:
		return Unknown
	}
}

// Render returns the expression referencing `name` in the generated module.
// Primary inputs and registers are referenced bare.  Everything else,
// including names that resolve to nothing, gets the computed-output suffix: an
// unresolved name therefore produces a dangling reference (see Check).
func (ix *Index) Render(name string) string {
	switch ix.Classify(name) {
	case PrimaryInput, Register:
		return name
	default:
		return name + common.ComputedSuffix
	}
}
