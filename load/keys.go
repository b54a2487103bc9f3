package load

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/pelletier/go-toml"
	"go.yaml.in/yaml/v3"
)

// keySchema lists the keys a table of a description may contain.  A nil
// schema is a leaf whose contents are not checked.  Lists are checked element
// by element against the schema of the list itself.
type keySchema map[string]keySchema

var documentKeys = keySchema{
	"PE": {
		"name":      nil,
		"inputs":    nil,
		"outputs":   nil,
		"muxes":     nil,
		"registers": nil,
		"fus": {
			"name": nil,
			"ops":  nil,
		},
		"connections": {
			"from": nil,
			"to":   nil,
		},
	},
}

// checkKeys decodes the raw document and rejects any key that is not spelled
// exactly as in the schema.  JSON and TOML struct decoding match keys without
// regard to case and drop unknown keys so a typo would otherwise go unnoticed.
func checkKeys(buff []byte, format Format) error {
	var raw interface{}

	switch format {
	case FormatTOML:
		tree, err := toml.LoadBytes(buff)
		if err != nil {
			return &Error{Kind: ParseError, Err: err}
		}

		raw = tree.ToMap()
	case FormatYAML:
		if err := yaml.Unmarshal(buff, &raw); err != nil {
			return &Error{Kind: ParseError, Err: err}
		}
	default:
		if err := json.Unmarshal(buff, &raw); err != nil {
			return &Error{Kind: ParseError, Err: err}
		}
	}

	return documentKeys.check(raw, "")
}

func (ks keySchema) check(value interface{}, path string) error {
	switch v := value.(type) {
	case map[string]interface{}:
		return ks.checkTable(v, path)
	case map[interface{}]interface{}:
		table := make(map[string]interface{}, len(v))
		for key, item := range v {
			table[fmt.Sprint(key)] = item
		}

		return ks.checkTable(table, path)
	case []interface{}:
		for i, item := range v {
			if err := ks.check(item, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
	}

	return nil
}

func (ks keySchema) checkTable(table map[string]interface{}, path string) error {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field := key
		if path != "" {
			field = path + "." + key
		}

		sub, ok := ks[key]
		if !ok {
			return &Error{Kind: UnknownField, Field: field}
		}

		if sub != nil {
			if err := sub.check(table[key], field); err != nil {
				return err
			}
		}
	}

	return nil
}
