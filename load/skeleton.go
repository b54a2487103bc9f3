package load

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"pegen/model"
)

// DefaultFUOps are the operations given to functional units of new PE
// descriptions
var DefaultFUOps = []string{"ADD", "SUB", "AND", "OR"}

// NewSkeleton returns a small but complete PE to start a description from: two
// inputs feeding a single functional unit whose result drives one output
func NewSkeleton(name string) (*model.PE, error) {
	return model.New(&model.PE{
		Name:    name,
		Inputs:  []string{"in0", "in1"},
		Outputs: []string{"out0"},
		FUs: []model.FunctionalUnit{
			{Name: "fu0", Ops: append([]string(nil), DefaultFUOps...)},
		},
		Connections: []model.Connection{
			{From: "in0", To: "fu0"},
			{From: "in1", To: "fu0"},
			{From: "fu0", To: "out0"},
		},
	})
}

// WriteSkeleton creates the description `<name>.<ext>` in `dir` and returns its
// path.  An existing file is never overwritten.
func WriteSkeleton(dir, name string, format Format) (string, error) {
	pe, err := NewSkeleton(name)
	if err != nil {
		return "", err
	}

	buff, err := Encode(pe, format)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name+"."+format.Extension())
	if _, err := os.Stat(path); err == nil {
		return "", errors.Errorf("description file %s already exists", path)
	} else if !os.IsNotExist(err) {
		return "", errors.Wrap(err, "description file error")
	}

	if err := os.WriteFile(path, buff, 0644); err != nil {
		return "", errors.Wrap(err, "error creating description file")
	}

	return path, nil
}
