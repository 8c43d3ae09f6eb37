package patch

import (
	"regexp"

	"github.com/rotisserie/eris"
)

var (
	ErrFieldNotFound     = eris.New("field not found")
	ErrMalformedDocument = eris.New("document is malformed after patch")
)

// Rule describes where an answer is written inside the document.
type Rule struct {
	// Name is the dotted path of the field, e.g. "builder.port".
	Name string
	// Scope matches the header of the enclosing section. nil targets the document root.
	Scope *regexp.Regexp
	// Field matches the key inside the section. Capture group 1 is the value text.
	Field *regexp.Regexp
	// Replacement produces the new value text from the raw answer.
	Replacement func(answer string) string
}

type Status int

const (
	StatusPatched Status = iota
	StatusUnchanged
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusPatched:
		return "patched"
	case StatusUnchanged:
		return "unchanged"
	case StatusNotFound:
		return "not found"
	}
	return "unknown"
}

type Result struct {
	Rule   string
	Status Status
	Before string
	After  string
}

type ValueKind int

const (
	// KindString always writes a string literal.
	KindString ValueKind = iota
	// KindPort writes a bare number when the answer is an integer and a string literal otherwise.
	KindPort
)

// Syntax is a document flavour the patch engine can work on.
type Syntax interface {
	Name() string
	// Rule builds a patch rule for key inside section. An empty section targets the root.
	Rule(section, key string, kind ValueKind) Rule
	// Root returns the byte range of the top-level body.
	Root(doc string) (start, end int, ok bool)
	// Section returns the byte range of the body whose header was matched at header
	// (a FindStringSubmatchIndex result of Rule.Scope).
	Section(doc string, header []int) (start, end int, ok bool)
	// Direct reports whether the key found at idx is a direct child of the body [start, end).
	Direct(doc string, start, end, idx int) bool
	Validate(doc string) error
	Decode(doc string, v any) error
}
