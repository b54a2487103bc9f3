package model

import "fmt"

// NameError reports a component name that breaks one of the naming invariants
// of a PE: either the name is not a valid identifier or it is declared more
// than once across the five namespaces.
type NameError struct {
	Name      string
	Namespace Namespace

	// Duplicate is set when the name is valid but already taken; Previous is
	// then the namespace of the first declaration.
	Duplicate bool
	Previous  Namespace

	// PEName is set when the offending name is the name of the PE itself
	PEName bool

	// Reserved is set when the name is a Verilog keyword
	Reserved bool
}

func (ne *NameError) Error() string {
	switch {
	case ne.Reserved && ne.PEName:
		return fmt.Sprintf("PE name `%s` is a reserved word", ne.Name)
	case ne.Reserved:
		return fmt.Sprintf("%s name `%s` is a reserved word", ne.Namespace, ne.Name)
	case ne.PEName:
		return fmt.Sprintf("invalid PE name `%s`", ne.Name)
	case ne.Duplicate && ne.Previous == ne.Namespace:
		return fmt.Sprintf("%s `%s` declared more than once", ne.Namespace, ne.Name)
	case ne.Duplicate:
		return fmt.Sprintf("%s `%s` conflicts with %s of the same name", ne.Namespace, ne.Name, ne.Previous)
	default:
		return fmt.Sprintf("invalid %s name `%s`", ne.Namespace, ne.Name)
	}
}

// New checks the naming invariants of `pe` and returns it if they hold.  The
// first violation found (in declaration order) is returned as a *NameError.
// Connection endpoints are not checked here: unresolved sources and sinks are
// tolerated by the generator and reported by the resolver.
func New(pe *PE) (*PE, error) {
	if !IsValidIdentifier(pe.Name) {
		return nil, &NameError{Name: pe.Name, PEName: true, Reserved: IsReservedWord(pe.Name)}
	}

	seen := make(map[string]Namespace)
	var err error
	pe.Components(func(name string, ns Namespace) bool {
		if !IsValidIdentifier(name) {
			err = &NameError{Name: name, Namespace: ns, Reserved: IsReservedWord(name)}
			return false
		}

		if prev, ok := seen[name]; ok {
			err = &NameError{Name: name, Namespace: ns, Duplicate: true, Previous: prev}
			return false
		}

		seen[name] = ns
		return true
	})

	if err != nil {
		return nil, err
	}

	return pe, nil
}
