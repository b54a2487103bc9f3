package generate

import (
	"pegen/common"
	"pegen/sem"
)

// genMuxes generates the selection logic of every mux.  The j-th connection
// driving a mux (in connection order) is chosen when its select port equals j.
func (g *Generator) genMuxes() {
	for _, mux := range g.d.PE.Muxes {
		sel := newSelector(mux+common.SelectSuffix, g.d.MuxBits[mux])
		for j, src := range g.d.Drivers(mux) {
			sel.add(j, g.d.Render(src))
		}

		g.print(sel.assign(mux + common.ComputedSuffix))
		g.print("\n")
	}
}

// genFUs generates the logic of every functional unit with at least two
// operands: one result wire per supported operation and the selection of the
// unit's output among those results.  Units with fewer than two operands are
// skipped, and only the first two operands of a unit are used.
func (g *Generator) genFUs() {
	for _, fu := range g.d.PE.FUs {
		drivers := g.d.Drivers(fu.Name)
		if len(drivers) < 2 {
			continue
		}

		lhs, rhs := g.d.Render(drivers[0]), g.d.Render(drivers[1])
		sel := newSelector(fu.Name+common.SelectSuffix, g.d.FUBits[fu.Name])

		// results lists each distinct supported operation once, in order of
		// first use
		var results []*sem.Operator
		seen := make(map[string]bool)
		for i, mnemonic := range fu.Ops {
			op, ok := sem.LookupOperator(mnemonic)
			if !ok {
				// unsupported operations keep their encoding but select nothing
				continue
			}

			sel.add(i, fu.Name+"_"+op.Mnemonic)
			if !seen[op.Mnemonic] {
				seen[op.Mnemonic] = true
				results = append(results, op)
			}
		}

		for _, op := range results {
			g.printf("wire %s%s_%s;\n", dataRange, fu.Name, op.Mnemonic)
		}

		for _, op := range results {
			g.printf("assign %s_%s = %s;\n", fu.Name, op.Mnemonic, op.Apply(lhs, rhs))
		}

		g.print(sel.assign(fu.Name + common.ComputedSuffix))
		g.print("\n")
	}
}

// genRegisters generates a clocked update block for every register driven by
// at least one connection.  Only the first driver is used.  The reset is
// synchronous and active-low.
func (g *Generator) genRegisters() {
	for _, reg := range g.d.PE.Registers {
		src, ok := g.d.FirstDriver(reg)
		if !ok {
			continue
		}

		g.printf("always @(posedge %s) begin\n", common.ClockPort)
		g.printf("\tif (%s == 0)\n", common.ResetPort)
		g.printf("\t\t%s <= 0;\n", reg)
		g.print("\telse\n")
		g.printf("\t\t%s <= %s;\n", reg, g.d.Render(src))
		g.print("end\n\n")
	}
}

// genOutputs assigns every driven output from its first driver
func (g *Generator) genOutputs() {
	for _, out := range g.d.PE.Outputs {
		if src, ok := g.d.FirstDriver(out); ok {
			g.printf("assign %s = %s;\n", out, g.d.Render(src))
		}
	}

	g.print("\n")
}
