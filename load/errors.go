package load

import "fmt"

// ErrorKind classifies load errors
type ErrorKind int

// Enumeration of load error kinds
const (
	Unreadable    ErrorKind = iota // the document could not be read
	ParseError                     // the document is not well-formed
	MissingField                   // a required field is absent or empty
	InvalidName                    // a name is not a valid identifier
	DuplicateName                  // a name is declared more than once
	UnknownField                   // a key is not part of the description format
)

var errorKindNames = map[ErrorKind]string{
	Unreadable:    "unreadable document",
	ParseError:    "parse error",
	MissingField:  "missing field",
	InvalidName:   "invalid name",
	DuplicateName: "duplicate name",
	UnknownField:  "unknown field",
}

func (ek ErrorKind) String() string {
	return errorKindNames[ek]
}

// Error is returned for any description that cannot be turned into a valid PE.
// Loading never returns a partially populated PE.
type Error struct {
	Kind ErrorKind

	// Path is the path of the document (empty when decoding from memory)
	Path string

	// Field is the document path of the offending field, eg. `PE.fus[1].name`
	Field string

	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}

	if e.Field != "" {
		msg += fmt.Sprintf(" at `%s`", e.Field)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Cause returns the underlying error (see github.com/pkg/errors)
func (e *Error) Cause() error {
	return e.Err
}

// Unwrap is the standard library equivalent of Cause
func (e *Error) Unwrap() error {
	return e.Err
}

func missingField(field string) *Error {
	return &Error{Kind: MissingField, Field: field}
}
