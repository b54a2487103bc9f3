package model

// PE represents a processing element: the datapath module being generated.
// Every collection is kept in declaration order since that order is
// significant for both the port list and the select encodings.
type PE struct {
	// Name is the name of the generated module (and of its output file)
	Name string

	Inputs    []string
	Outputs   []string
	Muxes     []string
	Registers []string

	// FUs is the list of functional units of the PE
	FUs []FunctionalUnit

	// Connections is the ordered list of all wiring facts.  The position of a
	// connection among those sharing its sink determines the select value
	// used to pick it.
	Connections []Connection
}

// FunctionalUnit is a component computing one of several binary operations on
// two shared operands.  The operation at position i of Ops is selected by the
// binary encoding of i.
type FunctionalUnit struct {
	Name string
	Ops  []string
}

// Connection is a directed wire from the component named From to the component
// named To.
type Connection struct {
	From string
	To   string
}

// Namespace enumerates the kinds of named components that make up a PE
type Namespace int

// Enumeration of namespaces (in port-list order)
const (
	NSInput Namespace = iota
	NSMux
	NSFunctionalUnit
	NSRegister
	NSOutput
)

var namespaceNames = map[Namespace]string{
	NSInput:          "input",
	NSMux:            "mux",
	NSFunctionalUnit: "functional unit",
	NSRegister:       "register",
	NSOutput:         "output",
}

func (ns Namespace) String() string {
	if name, ok := namespaceNames[ns]; ok {
		return name
	}

	return "unknown"
}

// IsSink returns whether components of this namespace can be the sink of a
// connection.  Primary inputs are driven from outside the PE.
func (ns Namespace) IsSink() bool {
	return ns != NSInput
}

// FUNames returns the names of the functional units in declaration order
func (pe *PE) FUNames() []string {
	names := make([]string, len(pe.FUs))
	for i, fu := range pe.FUs {
		names[i] = fu.Name
	}

	return names
}

// Components calls `f` for every declared component name in the order inputs,
// muxes, functional units, registers, outputs.  It stops early if `f` returns
// false.
func (pe *PE) Components(f func(name string, ns Namespace) bool) {
	groups := []struct {
		names []string
		ns    Namespace
	}{
		{pe.Inputs, NSInput},
		{pe.Muxes, NSMux},
		{pe.FUNames(), NSFunctionalUnit},
		{pe.Registers, NSRegister},
		{pe.Outputs, NSOutput},
	}

	for _, g := range groups {
		for _, name := range g.names {
			if !f(name, g.ns) {
				return
			}
		}
	}
}
