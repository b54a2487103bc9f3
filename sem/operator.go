package sem

import "strings"

// Operator represents one entry of the fixed opcode table: a functional unit
// operation mnemonic and the Verilog binary operator implementing it.
type Operator struct {
	// Mnemonic is the lowercase operation name used in PE descriptions
	Mnemonic string

	// Symbol is the Verilog operator placed between the two operands
	Symbol string

	// Signed indicates that the left operand must be reinterpreted as signed
	// for the operator to have its intended meaning
	Signed bool
}

// Apply renders the operator applied to two already rendered operands
func (op *Operator) Apply(lhs, rhs string) string {
	if op.Signed {
		lhs = "$signed(" + lhs + ")"
	}

	return lhs + " " + op.Symbol + " " + rhs
}

// operators is the closed opcode table in the order it is documented and
// listed to users.  It is never mutated after initialization so it can be
// shared freely.
var operators = []*Operator{
	{Mnemonic: "add", Symbol: "+"},
	{Mnemonic: "sub", Symbol: "-"},
	{Mnemonic: "mul", Symbol: "*"},
	{Mnemonic: "div", Symbol: "/"},
	{Mnemonic: "and", Symbol: "&"},
	{Mnemonic: "or", Symbol: "|"},
	{Mnemonic: "xor", Symbol: "^"},
	{Mnemonic: "sll", Symbol: "<<"},
	{Mnemonic: "sra", Symbol: ">>>", Signed: true},
	{Mnemonic: "lt", Symbol: "<"},
	{Mnemonic: "ge", Symbol: ">="},
}

// operatorTable indexes the opcode table by mnemonic
var operatorTable = func() map[string]*Operator {
	table := make(map[string]*Operator, len(operators))
	for _, op := range operators {
		table[op.Mnemonic] = op
	}

	return table
}()

// NormalizeMnemonic converts an operation name as written in a PE description
// to the form used for table lookups and generated signal names
func NormalizeMnemonic(mnemonic string) string {
	return strings.ToLower(mnemonic)
}

// LookupOperator looks up an operator by mnemonic (case-insensitively)
func LookupOperator(mnemonic string) (*Operator, bool) {
	op, ok := operatorTable[NormalizeMnemonic(mnemonic)]
	return op, ok
}

// Mnemonics returns every supported mnemonic in a fixed order
func Mnemonics() []string {
	mnemonics := make([]string, len(operators))
	for i, op := range operators {
		mnemonics[i] = op.Mnemonic
	}

	return mnemonics
}
