package resolve

import "pegen/model"

// Index is the lookup structure built once per PE: it maps every declared name
// to its namespace and every sink name to the ordered list of sources driving
// it.  All the lookups performed during generation go through it.
type Index struct {
	names   map[string]model.Namespace
	drivers map[string][]string
}

// NewIndex builds the index of `pe`.  Driver lists preserve connection order.
func NewIndex(pe *model.PE) *Index {
	ix := &Index{
		names:   make(map[string]model.Namespace),
		drivers: make(map[string][]string),
	}

	pe.Components(func(name string, ns model.Namespace) bool {
		ix.names[name] = ns
		return true
	})

	for _, conn := range pe.Connections {
		ix.drivers[conn.To] = append(ix.drivers[conn.To], conn.From)
	}

	return ix
}

// Lookup returns the namespace a name is declared in
func (ix *Index) Lookup(name string) (model.Namespace, bool) {
	ns, ok := ix.names[name]
	return ns, ok
}

// Drivers returns the sources connected to `sink` in connection order.  The
// returned slice must not be modified.
func (ix *Index) Drivers(sink string) []string {
	return ix.drivers[sink]
}

// FirstDriver returns the first source connected to `sink` if there is one
func (ix *Index) FirstDriver(sink string) (string, bool) {
	if ds := ix.drivers[sink]; len(ds) > 0 {
		return ds[0], true
	}

	return "", false
}
