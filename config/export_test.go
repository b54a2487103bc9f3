package config

import (
	"io"

	"github.com/pkg/errors"
)

// BreakProjectEncoding makes InitConfig fail after writing part of the project
// file.  The returned function restores the real encoder.
func BreakProjectEncoding() (restore func()) {
	encode := encodeProjectFile
	encodeProjectFile = func(w io.Writer, _ *tomlConfigFile) error {
		if _, err := io.WriteString(w, "[project]\nname = "); err != nil {
			return err
		}

		return errors.New("encoder failure")
	}

	return func() {
		encodeProjectFile = encode
	}
}
