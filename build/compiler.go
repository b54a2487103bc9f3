package build

import (
	"bytes"
	"path/filepath"

	"pegen/common"
	"pegen/config"
	"pegen/generate"
	"pegen/logging"
	"pegen/model"
	"pegen/resolve"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of a single generator run
type Compiler struct {
	// conf is the configuration the run uses (project file and command line
	// options already merged)
	conf *config.Config

	// path is the path to the PE description being generated
	path string

	// pe is the loaded PE model.  It is nil until loading has succeeded.
	pe *model.PE

	// design is the resolved form of `pe`
	design *resolve.Design

	// issues are the soundness issues found during analysis
	issues []resolve.Issue
}

// NewCompiler creates a new compiler for a given PE description and
// configuration
func NewCompiler(path string, conf *config.Config) *Compiler {
	return &Compiler{path: path, conf: conf}
}

// Compile runs the full generation pipeline on the PE description and writes
// the module file.  It handles all errors appropriately and returns whether the
// module was written.
func (c *Compiler) Compile() bool {
	if !c.Analyze() {
		return false
	}

	text, ok := c.generate()
	if !ok {
		return false
	}

	return c.writeModule(text)
}

// Analyze runs the load, resolve, and check portions of the pipeline.  It
// handles all errors appropriately and returns whether generation may proceed.
// It is exported for usage by the `check` command.
func (c *Compiler) Analyze() bool {
	logging.BeginPhase("Loading")
	pe, ok := c.loadPE()
	logging.EndPhase(ok)
	if !ok {
		return false
	}
	c.pe = pe

	logging.BeginPhase("Resolving")
	c.design = resolve.Resolve(c.pe)
	logging.EndPhase(true)

	logging.DisplayTree(EchoTree(c.design))

	logging.BeginPhase("Checking")
	c.issues = resolve.Check(c.design)
	logging.EndPhase(!c.conf.Strict || len(c.issues) == 0)

	for _, issue := range c.issues {
		if c.conf.Strict {
			logging.LogDesignError(c.path, issue.Kind.String(), issue.Subject, issue.Message)
		} else {
			logging.LogDesignWarning(c.path, issue.Kind.String(), issue.Subject, issue.Message)
		}
	}

	return logging.ShouldProceed()
}

// Issues returns the soundness issues found by the last analysis
func (c *Compiler) Issues() []resolve.Issue {
	return c.issues
}

// OutputPath returns the path the module file is written to.  It is only
// meaningful once the PE has been loaded.
func (c *Compiler) OutputPath() string {
	return common.OutputPath(c.conf.OutputDir, c.pe.Name, c.conf.Extension)
}

// generate runs every generation pass into memory, reporting each one as a
// build phase
func (c *Compiler) generate() ([]byte, bool) {
	var buff bytes.Buffer
	g := generate.NewGenerator(c.design, &buff)

	for _, pass := range g.Passes() {
		logging.BeginPhase(pass.Name)
		if err := pass.Run(); err != nil {
			logging.EndPhase(false)
			logging.LogFatal("failed to generate " + pass.Name + ": " + err.Error())
			return nil, false
		}
		logging.EndPhase(true)
	}

	return buff.Bytes(), true
}

// writeModule writes the generated text to the output file
func (c *Compiler) writeModule(text []byte) bool {
	path := c.OutputPath()

	logging.BeginPhase("Writing")
	if err := generate.WriteModule(path, text); err != nil {
		logging.EndPhase(false)
		logging.LogFatal(err.Error())
		return false
	}
	logging.EndPhase(true)

	if abspath, err := filepath.Abs(path); err == nil {
		path = abspath
	}

	if logging.IsVerbose() {
		logging.PrintInfoMessage("Generated", path)
	}

	return true
}
