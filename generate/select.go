package generate

import (
	"fmt"
	"strings"
)

// undefinedValue is selected when no branch of a selector matches
const undefinedValue = "32'hxxxx"

// selector is an explicit match of a select signal over its encoding space:
// each branch maps one encoding to the value chosen for it.  Encodings with no
// branch fall through to the default (undefined) value.
type selector struct {
	sel      string
	width    int
	branches []selectBranch
}

type selectBranch struct {
	encoding int
	value    string
}

func newSelector(sel string, width int) *selector {
	return &selector{sel: sel, width: width}
}

// add adds a branch selecting `value` when the select signal equals `encoding`
func (s *selector) add(encoding int, value string) {
	s.branches = append(s.branches, selectBranch{encoding, value})
}

// literal returns the sized binary literal of `encoding`, truncated to the
// select width
func (s *selector) literal(encoding int) string {
	encoding &= (1 << uint(s.width)) - 1
	return fmt.Sprintf("%d'b%0*b", s.width, s.width, encoding)
}

// assign renders a continuous assignment of the selector to `target` as a
// priority chain of conditional expressions ending in the default value
func (s *selector) assign(target string) string {
	prefix := "assign " + target + " = "

	var b strings.Builder
	b.WriteString(prefix)
	indent := strings.Repeat(" ", len(prefix))
	for _, br := range s.branches {
		fmt.Fprintf(&b, "(%s == %s) ? %s :\n%s", s.sel, s.literal(br.encoding), br.value, indent)
	}

	b.WriteString(undefinedValue)
	b.WriteString(";\n")
	return b.String()
}
