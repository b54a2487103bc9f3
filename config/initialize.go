package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"pegen/common"
	"pegen/model"
)

// encodeProjectFile writes the TOML text of a new project file
var encodeProjectFile = func(w io.Writer, file *tomlConfigFile) error {
	return toml.NewEncoder(w).Order(toml.OrderPreserve).Encode(file)
}

// InitConfig creates a new project file for a project with the given name in
// the directory `root`.  No project file is left behind if it cannot be
// written completely.
func InitConfig(name, root string) (path string, err error) {
	path = filepath.Join(root, common.ConfigFileName)

	// check to see if a project file already exists
	_, err = os.Stat(path)
	if err == nil {
		return "", errors.New("project file already exists")
	}

	if !os.IsNotExist(err) {
		return "", errors.Wrap(err, "project file error")
	}

	if !model.IsValidIdentifier(name) {
		return "", errors.New("project name must be a valid identifier")
	}

	proj := &tomlProject{
		Name:      name,
		Version:   common.PegenVersion,
		Extension: common.DefaultExtension,
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "error creating project file")
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close the project file")
		}

		if err != nil {
			os.Remove(f.Name())
		}
	}()

	if err := encodeProjectFile(f, &tomlConfigFile{Project: proj}); err != nil {
		return "", errors.Wrap(err, "error encoding TOML")
	}

	return path, nil
}

// ProjectName derives a valid project name from a directory path by replacing
// every character that cannot appear in an identifier with an underscore.
// Verilog keywords get a trailing underscore.
func ProjectName(dir string) string {
	base := []byte(filepath.Base(dir))
	for i, c := range base {
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}

		base[i] = '_'
	}

	name := string(base)
	if name == "" || ('0' <= name[0] && name[0] <= '9') {
		name = "_" + name
	}

	if len(name) > model.MaxNameLength {
		name = name[:model.MaxNameLength]
	}

	// keywords are never longer than MaxNameLength-1
	if model.IsReservedWord(name) {
		name += "_"
	}

	return name
}
