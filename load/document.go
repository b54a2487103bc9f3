package load

import (
	"path/filepath"
	"strconv"
	"strings"

	"pegen/model"
)

// Format is the encoding of a PE description document
type Format int

// Enumeration of supported formats
const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
)

// formatNames maps format names (as accepted on the command line) to formats
var formatNames = map[string]Format{
	"json": FormatJSON,
	"toml": FormatTOML,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
}

// ParseFormat converts a format name into a Format
func ParseFormat(name string) (Format, bool) {
	f, ok := formatNames[strings.ToLower(name)]
	return f, ok
}

// FormatOf determines the format of a document from its file extension.
// Unrecognised extensions are assumed to be JSON.
func FormatOf(path string) Format {
	if f, ok := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); ok {
		return f
	}

	return FormatJSON
}

// Extension returns the canonical file extension of the format
func (f Format) Extension() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// document is a PE description as it is encoded in any of the formats
type document struct {
	PE *peDocument `json:"PE" toml:"PE" yaml:"PE"`
}

type peDocument struct {
	Name        string               `json:"name" toml:"name" yaml:"name"`
	Inputs      []string             `json:"inputs" toml:"inputs" yaml:"inputs"`
	Outputs     []string             `json:"outputs" toml:"outputs" yaml:"outputs"`
	Muxes       []string             `json:"muxes" toml:"muxes" yaml:"muxes"`
	Registers   []string             `json:"registers" toml:"registers" yaml:"registers"`
	FUs         []fuDocument         `json:"fus" toml:"fus" yaml:"fus"`
	Connections []connectionDocument `json:"connections" toml:"connections" yaml:"connections"`
}

type fuDocument struct {
	Name string   `json:"name" toml:"name" yaml:"name"`
	Ops  []string `json:"ops" toml:"ops" yaml:"ops"`
}

type connectionDocument struct {
	From string `json:"from" toml:"from" yaml:"from"`
	To   string `json:"to" toml:"to" yaml:"to"`
}

// toModel converts the document into a PE, checking that all required fields
// are present.  Naming invariants are checked afterwards by model.New.
func (doc *document) toModel() (*model.PE, error) {
	if doc.PE == nil {
		return nil, missingField("PE")
	}

	pd := doc.PE
	if pd.Name == "" {
		return nil, missingField("PE.name")
	}

	pe := &model.PE{
		Name:        pd.Name,
		Inputs:      pd.Inputs,
		Outputs:     pd.Outputs,
		Muxes:       pd.Muxes,
		Registers:   pd.Registers,
		FUs:         make([]model.FunctionalUnit, len(pd.FUs)),
		Connections: make([]model.Connection, len(pd.Connections)),
	}

	for i, fd := range pd.FUs {
		if fd.Name == "" {
			return nil, missingField(indexedField("PE.fus", i, "name"))
		}

		pe.FUs[i] = model.FunctionalUnit{Name: fd.Name, Ops: fd.Ops}
	}

	for i, cd := range pd.Connections {
		if cd.From == "" {
			return nil, missingField(indexedField("PE.connections", i, "from"))
		}

		if cd.To == "" {
			return nil, missingField(indexedField("PE.connections", i, "to"))
		}

		pe.Connections[i] = model.Connection{From: cd.From, To: cd.To}
	}

	return pe, nil
}

// fromModel converts a PE back into its document form
func fromModel(pe *model.PE) *document {
	pd := &peDocument{
		Name:        pe.Name,
		Inputs:      nonNil(pe.Inputs),
		Outputs:     nonNil(pe.Outputs),
		Muxes:       nonNil(pe.Muxes),
		Registers:   nonNil(pe.Registers),
		FUs:         make([]fuDocument, len(pe.FUs)),
		Connections: make([]connectionDocument, len(pe.Connections)),
	}

	for i, fu := range pe.FUs {
		pd.FUs[i] = fuDocument{Name: fu.Name, Ops: nonNil(fu.Ops)}
	}

	for i, conn := range pe.Connections {
		pd.Connections[i] = connectionDocument{From: conn.From, To: conn.To}
	}

	return &document{PE: pd}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func indexedField(list string, i int, field string) string {
	return list + "[" + strconv.Itoa(i) + "]." + field
}
