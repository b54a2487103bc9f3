package common

import "path/filepath"

// OutputPath returns the path of the generated module for the PE named
// `peName`.  An empty `dir` means the current working directory and an empty
// `ext` means the default extension.
func OutputPath(dir, peName, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}

	if ext[0] == '.' {
		ext = ext[1:]
	}

	fileName := peName + "." + ext
	if dir == "" {
		return fileName
	}

	return filepath.Join(dir, fileName)
}
