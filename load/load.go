package load

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"

	"pegen/model"
)

// LoadPE reads, decodes, and validates the PE description at `path`.  The
// format is chosen from the file extension.  Any failure is returned as an
// *Error and no PE is returned.
func LoadPE(path string) (*model.PE, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: Unreadable, Path: path, Err: err}
	}

	pe, err := Decode(buff, FormatOf(path))
	if err != nil {
		if lerr, ok := err.(*Error); ok {
			lerr.Path = path
		}

		return nil, err
	}

	return pe, nil
}

// Decode decodes and validates a PE description held in memory
func Decode(buff []byte, format Format) (*model.PE, error) {
	doc := &document{}

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(buff, doc)
	case FormatYAML:
		err = yaml.Unmarshal(buff, doc)
	default:
		err = json.Unmarshal(buff, doc)
	}

	if err != nil {
		return nil, &Error{Kind: ParseError, Err: err}
	}

	if err := checkKeys(buff, format); err != nil {
		return nil, err
	}

	pe, err := doc.toModel()
	if err != nil {
		return nil, err
	}

	if _, err := model.New(pe); err != nil {
		return nil, nameError(err)
	}

	return pe, nil
}

// Encode encodes a PE into a description document of the given format
func Encode(pe *model.PE, format Format) ([]byte, error) {
	doc := fromModel(pe)

	switch format {
	case FormatTOML:
		var buff bytes.Buffer
		if err := toml.NewEncoder(&buff).Order(toml.OrderPreserve).Encode(doc); err != nil {
			return nil, errors.Wrap(err, "error encoding TOML")
		}

		return buff.Bytes(), nil
	case FormatYAML:
		buff, err := yaml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "error encoding YAML")
		}

		return buff, nil
	default:
		buff, err := json.MarshalIndent(doc, "", "    ")
		if err != nil {
			return nil, errors.Wrap(err, "error encoding JSON")
		}

		return append(buff, '\n'), nil
	}
}

// nameError converts a naming invariant violation into a load error
func nameError(err error) error {
	ne, ok := err.(*model.NameError)
	if !ok {
		return &Error{Kind: ParseError, Err: err}
	}

	if ne.Duplicate {
		return &Error{Kind: DuplicateName, Err: ne}
	}

	return &Error{Kind: InvalidName, Err: ne}
}
