package generate

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"pegen/common"
	"pegen/resolve"
)

// Generator is responsible for converting a resolved design into the text of a
// Verilog module.  The module is written in a fixed sequence of passes (see
// Passes), each appending one section of the module to the output writer.
type Generator struct {
	// d is the design being generated
	d *resolve.Design

	// w is the destination of the module text
	w io.Writer

	// err is the first write error encountered; once set, nothing more is
	// written
	err error
}

// NewGenerator creates a new generator writing the module for `d` to `w`
func NewGenerator(d *resolve.Design, w io.Writer) *Generator {
	return &Generator{d: d, w: w}
}

// Pass is a single named generation pass
type Pass struct {
	Name string
	run  func()
	g    *Generator
}

// Run runs the pass and returns the first write error of the generator, if any
func (p Pass) Run() error {
	if p.g.err == nil {
		p.run()
	}

	return p.g.err
}

// Passes returns the generation passes in the order they must be run
func (g *Generator) Passes() []Pass {
	return []Pass{
		{Name: "Header", run: g.genHeader, g: g},
		{Name: "Declarations", run: g.genDeclarations, g: g},
		{Name: "Multiplexers", run: g.genMuxes, g: g},
		{Name: "Functional Units", run: g.genFUs, g: g},
		{Name: "Registers", run: g.genRegisters, g: g},
		{Name: "Outputs", run: g.genOutputs, g: g},
		{Name: "Footer", run: g.genFooter, g: g},
	}
}

// Generate runs every pass in order
func (g *Generator) Generate() error {
	for _, pass := range g.Passes() {
		if err := pass.Run(); err != nil {
			return errors.Wrapf(err, "generating %s", pass.Name)
		}
	}

	return nil
}

// Generate returns the complete module text for `d`
func Generate(d *resolve.Design) ([]byte, error) {
	var buff bytes.Buffer
	if err := NewGenerator(d, &buff).Generate(); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// WriteModule writes generated module text to the file at `path`.  The file is
// always closed; if anything goes wrong after it was created, it is removed so
// that no truncated module is left behind.
func WriteModule(path string, text []byte) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to open the output file")
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close the output file")
		}

		if err != nil {
			os.Remove(path)
		}
	}()

	if _, err = file.Write(text); err != nil {
		return errors.Wrap(err, "failed to write the output file")
	}

	return nil
}

// -----------------------------------------------------------------------------

func (g *Generator) printf(format string, args ...interface{}) {
	if g.err != nil {
		return
	}

	_, g.err = fmt.Fprintf(g.w, format, args...)
}

func (g *Generator) print(s string) {
	if g.err != nil {
		return
	}

	_, g.err = io.WriteString(g.w, s)
}

// dataRange is the packed range of every data port, wire, and register
var dataRange = fmt.Sprintf("[%d:0] ", common.DataWidth-1)

// selectRange returns the packed range of a select port of `width` bits; a
// single bit port is declared as a scalar
func selectRange(width int) string {
	if width <= 1 {
		return ""
	}

	return fmt.Sprintf("[%d:0] ", width-1)
}
