package build

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"pegen/load"
	"pegen/logging"
	"pegen/model"
)

// loadPE attempts to load the PE description of the compiler.  All errors are
// logged.  The PE is returned along with a flag indicating success.
func (c *Compiler) loadPE() (*model.PE, bool) {
	// validate the description path
	finfo, err := os.Stat(c.path)
	if err != nil {
		logging.LogConfigError("Description", fmt.Sprintf("unable to load PE description at %s: %s", c.path, err.Error()))
		return nil, false
	}

	if finfo.IsDir() {
		logging.LogConfigError("Description", "a PE description must be a file not a directory")
		return nil, false
	}

	pe, err := load.LoadPE(c.path)
	if err != nil {
		var lerr *load.Error
		if errors.As(err, &lerr) {
			logging.LogConfigError(loadErrorTag(lerr.Kind), lerr.Error())
		} else {
			logging.LogConfigError("Description", err.Error())
		}

		return nil, false
	}

	return pe, true
}

// loadErrorTag returns the console tag used for a kind of load error
func loadErrorTag(kind load.ErrorKind) string {
	switch kind {
	case load.Unreadable:
		return "File"
	case load.ParseError:
		return "Parse"
	case load.MissingField:
		return "Missing Field"
	case load.InvalidName:
		return "Invalid Name"
	case load.UnknownField:
		return "Unknown Field"
	default:
		return "Duplicate Name"
	}
}
