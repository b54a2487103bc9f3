package generate

import "pegen/common"

// genHeader generates the module declaration and its port list.  Ports come in
// a fixed order: primary inputs, clock and reset (only when there are
// registers), mux selects, functional unit selects, and outputs.  The whole
// list is built first so that the comma after each port is decided with
// knowledge of every group that follows it.
func (g *Generator) genHeader() {
	pe := g.d.PE

	var ports []string
	for _, in := range pe.Inputs {
		ports = append(ports, "input "+dataRange+in)
	}

	if g.d.HasRegisters() {
		ports = append(ports, "input "+common.ClockPort, "input "+common.ResetPort)
	}

	for _, mux := range pe.Muxes {
		ports = append(ports, "input "+selectRange(g.d.MuxBits[mux])+mux+common.SelectSuffix)
	}

	for _, fu := range pe.FUs {
		ports = append(ports, "input "+selectRange(g.d.FUBits[fu.Name])+fu.Name+common.SelectSuffix)
	}

	for _, out := range pe.Outputs {
		ports = append(ports, "output "+dataRange+out)
	}

	g.printf("module %s(\n", pe.Name)
	for i, port := range ports {
		if i < len(ports)-1 {
			g.printf("\t%s,\n", port)
		} else {
			g.printf("\t%s\n", port)
		}
	}
	g.print(");\n\n")
}

// genDeclarations declares the output wire of every mux, every register, and
// the output wire of every functional unit, in that order.  Each non-empty
// group is followed by a blank line.
func (g *Generator) genDeclarations() {
	pe := g.d.PE

	for _, mux := range pe.Muxes {
		g.printf("wire %s%s%s;\n", dataRange, mux, common.ComputedSuffix)
	}
	if len(pe.Muxes) > 0 {
		g.print("\n")
	}

	for _, reg := range pe.Registers {
		g.printf("reg %s%s;\n", dataRange, reg)
	}
	if len(pe.Registers) > 0 {
		g.print("\n")
	}

	for _, fu := range pe.FUs {
		g.printf("wire %s%s%s;\n", dataRange, fu.Name, common.ComputedSuffix)
	}
	if len(pe.FUs) > 0 {
		g.print("\n")
	}
}

// genFooter closes the module
func (g *Generator) genFooter() {
	g.print("endmodule\n")
}
