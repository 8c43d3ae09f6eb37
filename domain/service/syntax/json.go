package syntax

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/model/patch"
)

type JSON struct{}

var _ patch.Syntax = JSON{}

func (JSON) Name() string {
	return "json"
}

func (JSON) Rule(section, key string, kind patch.ValueKind) patch.Rule {
	rule := patch.Rule{
		Name:  dotted(section, key),
		Field: regexp.MustCompile(`"` + regexp.QuoteMeta(key) + `"\s*:\s*("(?:[^"\\]|\\.)*"|[^\s,}\]]*)`),
		Replacement: func(answer string) string {
			return jsonValue(answer, kind)
		},
	}
	if section != "" {
		rule.Scope = regexp.MustCompile(`"` + regexp.QuoteMeta(section) + `"\s*:`)
	}
	return rule
}

func (JSON) Root(doc string) (int, int, bool) {
	open := strings.IndexFunc(doc, func(r rune) bool {
		return !isSpace(r)
	})
	if open < 0 || doc[open] != '{' {
		return 0, 0, false
	}
	end, ok := closing(doc, open)
	if !ok {
		return 0, 0, false
	}
	return open, end + 1, true
}

func (JSON) Section(doc string, header []int) (int, int, bool) {
	open := header[1]
	for open < len(doc) && isSpace(rune(doc[open])) {
		open++
	}
	if open >= len(doc) || doc[open] != '{' {
		return 0, 0, false
	}
	end, ok := closing(doc, open)
	if !ok {
		return 0, 0, false
	}
	return open, end + 1, true
}

func (JSON) Direct(doc string, start, end, idx int) bool {
	if idx < start || idx >= end {
		return false
	}
	var c jsonCursor
	for i := start; i < idx; i++ {
		c.step(doc[i])
	}
	return !c.inString && c.depth == 1
}

func (JSON) Validate(doc string) error {
	if !json.Valid([]byte(doc)) {
		return eris.New("invalid JSON")
	}
	return nil
}

func (JSON) Decode(doc string, v any) error {
	return json.Unmarshal([]byte(doc), v)
}

func jsonValue(answer string, kind patch.ValueKind) string {
	if kind == patch.KindPort && isInteger(answer) {
		return answer
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(answer)
	return strings.TrimSuffix(buf.String(), "\n")
}

// jsonCursor tracks nesting depth while walking a JSON text byte by byte.
type jsonCursor struct {
	depth    int
	inString bool
	escaped  bool
}

func (c *jsonCursor) step(b byte) {
	if c.inString {
		switch {
		case c.escaped:
			c.escaped = false
		case b == '\\':
			c.escaped = true
		case b == '"':
			c.inString = false
		}
		return
	}

	switch b {
	case '"':
		c.inString = true
	case '{', '[':
		c.depth++
	case '}', ']':
		c.depth--
	}
}

// closing returns the index of the bracket that closes the one at open.
func closing(doc string, open int) (int, bool) {
	var c jsonCursor
	for i := open; i < len(doc); i++ {
		c.step(doc[i])
		if !c.inString && c.depth == 0 {
			return i, true
		}
	}
	return 0, false
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
