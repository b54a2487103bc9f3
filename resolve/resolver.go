package resolve

import "pegen/model"

// Design is a PE together with everything derived from it that generation
// needs: the name index and the select widths of every mux and functional
// unit.  The widths are annotations; the PE itself is never modified.
type Design struct {
	*Index

	// PE is the validated model the design was resolved from
	PE *model.PE

	// MuxBits and FUBits map mux and functional unit names to the width of
	// their select ports
	MuxBits map[string]int
	FUBits  map[string]int
}

// Resolve builds the index of `pe` and computes its select widths
func Resolve(pe *model.PE) *Design {
	d := &Design{
		Index:   NewIndex(pe),
		PE:      pe,
		MuxBits: make(map[string]int, len(pe.Muxes)),
		FUBits:  make(map[string]int, len(pe.FUs)),
	}

	// a mux distinguishes its driving connections
	for _, mux := range pe.Muxes {
		d.MuxBits[mux] = BitWidth(len(d.Drivers(mux)))
	}

	// a functional unit distinguishes its declared operations, recognised or
	// not
	for _, fu := range pe.FUs {
		d.FUBits[fu.Name] = BitWidth(len(fu.Ops))
	}

	return d
}

// HasRegisters reports whether the module needs clock and reset ports
func (d *Design) HasRegisters() bool {
	return len(d.PE.Registers) > 0
}
