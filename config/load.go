package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"pegen/common"
	"pegen/logging"
)

// Default returns the configuration used when a directory has no project file
func Default(root string) *Config {
	return &Config{
		Name:      filepath.Base(root),
		Root:      root,
		Extension: common.DefaultExtension,
	}
}

// LoadConfig loads and validates the project file in the directory `root`.
// If there is no project file, the default configuration is returned.
// Relative output directories are interpreted relative to `root`.
func LoadConfig(root string) (*Config, error) {
	path := filepath.Join(root, common.ConfigFileName)

	buff, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(root), nil
	} else if err != nil {
		return nil, errors.Wrap(err, "unable to read project file")
	}

	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, errors.Wrapf(err, "error parsing %s", path)
	}

	if err := validateProject(tcf.Project, path); err != nil {
		return nil, err
	}

	conf := Default(root)
	conf.Name = tcf.Project.Name
	conf.Strict = tcf.Project.Strict

	if tcf.Project.Extension != "" {
		conf.Extension = tcf.Project.Extension
	}

	if tcf.Project.OutputDir != "" {
		conf.OutputDir = tcf.Project.OutputDir
		if !filepath.IsAbs(conf.OutputDir) {
			conf.OutputDir = filepath.Join(root, conf.OutputDir)
		}
	}

	return conf, nil
}

// validateProject checks that the project table is present and valid
func validateProject(proj *tomlProject, path string) error {
	if proj == nil {
		return errors.Errorf("missing [project] table in %s", path)
	}

	if proj.Name == "" {
		return errors.Errorf("missing project name in %s", path)
	}

	if proj.Extension != "" && !isValidExtension(proj.Extension) {
		return errors.Errorf("invalid output extension `%s` in %s", proj.Extension, path)
	}

	if proj.Version != common.PegenVersion {
		logging.LogConfigWarning(
			"Project",
			fmt.Sprintf("project `%s` was created for pegen v%s (this is v%s)", proj.Name, proj.Version, common.PegenVersion),
		)
	}

	return nil
}

// isValidExtension checks that an extension can be appended to a module name
// to form a file name
func isValidExtension(ext string) bool {
	for _, c := range ext {
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}

		return false
	}

	return true
}
