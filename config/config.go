package config

// Config is the generator configuration of a project.  It is read from the
// project file (if there is one) and then overridden by command line options.
type Config struct {
	// Name is the name of the project
	Name string

	// Root is the directory the configuration applies to
	Root string

	// OutputDir is the directory generated modules are written to.  An empty
	// value means the current working directory.
	OutputDir string

	// Extension is the file extension of generated modules (without the dot)
	Extension string

	// Strict indicates whether design issues should fail the build instead of
	// only being reported as warnings
	Strict bool
}

// tomlConfigFile represents the project file as it is encoded in TOML
type tomlConfigFile struct {
	Project *tomlProject `toml:"project"`
}

// tomlProject represents the project configuration as it is encoded in TOML
type tomlProject struct {
	Name      string `toml:"name"`
	Version   string `toml:"pegen-version"`
	OutputDir string `toml:"output-dir,omitempty"`
	Extension string `toml:"extension,omitempty"`
	Strict    bool   `toml:"strict"`
}
