package resolve

import (
	"fmt"
	"strings"

	"pegen/common"
	"pegen/model"
	"pegen/sem"
)

// IssueKind enumerates the design issues the generator tolerates.  None of them
// stop generation by default: each one results either in a dangling reference
// or in omitted logic in the generated module.
type IssueKind int

// Enumeration of issue kinds
const (
	DanglingSource IssueKind = iota
	DanglingSink
	UnderdrivenFU
	ExtraOperands
	UnknownOperation
	DuplicateOperation
	UndrivenMux
	UndrivenRegister
	UndrivenOutput
	MultipleDrivers
	NameClash
)

var issueKindNames = map[IssueKind]string{
	DanglingSource:     "Dangling Source",
	DanglingSink:       "Dangling Sink",
	UnderdrivenFU:      "Underdriven Unit",
	ExtraOperands:      "Extra Operand",
	UnknownOperation:   "Unknown Operation",
	DuplicateOperation: "Duplicate Operation",
	UndrivenMux:        "Undriven Mux",
	UndrivenRegister:   "Undriven Register",
	UndrivenOutput:     "Undriven Output",
	MultipleDrivers:    "Multiple Drivers",
	NameClash:          "Name Clash",
}

func (ik IssueKind) String() string {
	return issueKindNames[ik]
}

// Issue is a single design issue found by Check
type Issue struct {
	Kind IssueKind

	// Subject is the name of the component the issue is about
	Subject string

	Message string
}

func (is Issue) String() string {
	return is.Kind.String() + ": " + is.Message
}

// Check inspects the design for soundness issues.  Issues are returned in a
// deterministic order: connection issues first (in connection order), then
// component issues in declaration order.
func Check(d *Design) []Issue {
	var issues []Issue
	add := func(kind IssueKind, subject, format string, args ...interface{}) {
		issues = append(issues, Issue{Kind: kind, Subject: subject, Message: fmt.Sprintf(format, args...)})
	}

	for _, conn := range d.PE.Connections {
		if d.Classify(conn.From) == Unknown {
			add(DanglingSource, conn.From,
				"source `%s` of connection to `%s` is not an input, register, mux, or functional unit; it will be referenced as `%s`",
				conn.From, conn.To, d.Render(conn.From))
		}

		if ns, ok := d.Lookup(conn.To); !ok || !ns.IsSink() {
			add(DanglingSink, conn.To,
				"sink `%s` of connection from `%s` is not a mux, register, functional unit, or output; the connection is ignored",
				conn.To, conn.From)
		}
	}

	for _, mux := range d.PE.Muxes {
		if len(d.Drivers(mux)) == 0 {
			add(UndrivenMux, mux, "mux `%s` has no inputs; its output is always undefined", mux)
		}
	}

	for _, fu := range d.PE.FUs {
		drivers := d.Drivers(fu.Name)
		switch {
		case len(drivers) < 2:
			add(UnderdrivenFU, fu.Name,
				"functional unit `%s` has %d operand(s) but needs 2; no logic is generated for it", fu.Name, len(drivers))
		case len(drivers) > 2:
			add(ExtraOperands, fu.Name,
				"functional unit `%s` has %d operands; only `%s` and `%s` are used", fu.Name, len(drivers), drivers[0], drivers[1])
		}

		seen := make(map[string]bool)
		for i, mnemonic := range fu.Ops {
			norm := sem.NormalizeMnemonic(mnemonic)
			if _, ok := sem.LookupOperator(norm); !ok {
				add(UnknownOperation, fu.Name,
					"operation `%s` of functional unit `%s` is not supported; select value %d of `%s%s` matches nothing (supported operations: %s)",
					mnemonic, fu.Name, i, fu.Name, common.SelectSuffix, strings.Join(sem.Mnemonics(), ", "))
				continue
			}

			if seen[norm] {
				add(DuplicateOperation, fu.Name,
					"operation `%s` is listed more than once in functional unit `%s`", norm, fu.Name)
			}
			seen[norm] = true
		}
	}

	for _, reg := range d.PE.Registers {
		checkSingleDriver(d, reg, model.NSRegister, UndrivenRegister, add)
	}

	for _, out := range d.PE.Outputs {
		checkSingleDriver(d, out, model.NSOutput, UndrivenOutput, add)
	}

	checkNameClashes(d, add)

	return issues
}

type addIssueFn func(kind IssueKind, subject, format string, args ...interface{})

// checkSingleDriver checks components that only ever use their first driver
func checkSingleDriver(d *Design, name string, ns model.Namespace, undriven IssueKind, add addIssueFn) {
	switch drivers := d.Drivers(name); {
	case len(drivers) == 0:
		add(undriven, name, "%s `%s` is not driven by any connection; no logic is generated for it", ns, name)
	case len(drivers) > 1:
		add(MultipleDrivers, name, "%s `%s` has %d drivers; only `%s` is used", ns, name, len(drivers), drivers[0])
	}
}

// checkNameClashes reports declared names equal to signals the generator
// creates on its own
func checkNameClashes(d *Design, add addIssueFn) {
	generated := make(map[string]string)
	if d.HasRegisters() {
		generated[common.ClockPort] = "the clock port"
		generated[common.ResetPort] = "the reset port"
	}

	for _, mux := range d.PE.Muxes {
		generated[mux+common.SelectSuffix] = "the select port of mux `" + mux + "`"
		generated[mux+common.ComputedSuffix] = "the output wire of mux `" + mux + "`"
	}

	for _, fu := range d.PE.FUs {
		generated[fu.Name+common.SelectSuffix] = "the select port of functional unit `" + fu.Name + "`"
		generated[fu.Name+common.ComputedSuffix] = "the output wire of functional unit `" + fu.Name + "`"
		for _, mnemonic := range fu.Ops {
			// unsupported operations produce no wire
			if op, ok := sem.LookupOperator(mnemonic); ok {
				generated[fu.Name+"_"+op.Mnemonic] = "the `" + op.Mnemonic + "` result of functional unit `" + fu.Name + "`"
			}
		}
	}

	d.PE.Components(func(name string, ns model.Namespace) bool {
		if what, ok := generated[name]; ok {
			add(NameClash, name, "%s `%s` has the same name as %s", ns, name, what)
		}

		return true
	})
}
