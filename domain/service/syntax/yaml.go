package syntax

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/t-kuni/jobconf/domain/model/patch"
	"gopkg.in/yaml.v3"
)

const (
	// A quoted scalar is matched whole. In a plain scalar '#' only starts a comment
	// after a space.
	yamlScalar = `(?:"(?:[^"\\\n\r]|\\.)*"|'(?:[^'\n\r]|'')*'|(?:[^\n\r#]|\S#)*?)`
	// optional comment and trailing blanks up to the end of the line
	yamlLineEnd = `(?:[ \t]+#[^\n\r]*)?[ \t]*\r?$`
)

// YAML handles block-style mappings. Flow mappings ("builder: {port: 1}") are not sections.
type YAML struct{}

var _ patch.Syntax = YAML{}

func (YAML) Name() string {
	return "yaml"
}

func (YAML) Rule(section, key string, kind patch.ValueKind) patch.Rule {
	rule := patch.Rule{
		Name: dotted(section, key),
		// group 1 keeps the space after the colon so an empty value can be filled in
		Field: regexp.MustCompile(`(?m)` + regexp.QuoteMeta(key) + `:([ \t]*` + yamlScalar + `)` + yamlLineEnd),
		Replacement: func(answer string) string {
			return " " + yamlValue(answer, kind)
		},
	}
	if section != "" {
		rule.Scope = regexp.MustCompile(`(?m)` + regexp.QuoteMeta(section) + `:` + yamlLineEnd)
	}
	return rule
}

func (YAML) Root(doc string) (int, int, bool) {
	return 0, len(doc), true
}

func (YAML) Section(doc string, header []int) (int, int, bool) {
	lineStart := strings.LastIndexByte(doc[:header[0]], '\n') + 1
	prefix := doc[lineStart:header[0]]
	if strings.TrimLeft(prefix, " ") != "" {
		return 0, 0, false
	}
	indent := len(prefix)

	start := header[1]
	end := len(doc)
	for ls := nextLine(doc, start); ls < len(doc); ls = nextLine(doc, ls) {
		line := lineAt(doc, ls)
		if !significant(line) {
			continue
		}
		if indentOf(line) <= indent {
			end = ls
			break
		}
	}
	return start, end, true
}

func (YAML) Direct(doc string, start, end, idx int) bool {
	if idx < start || idx >= end {
		return false
	}
	lineStart := strings.LastIndexByte(doc[:idx], '\n') + 1
	prefix := doc[lineStart:idx]
	if strings.TrimLeft(prefix, " ") != "" {
		return false
	}
	return len(prefix) == childIndent(doc, start, end)
}

func (YAML) Validate(doc string) error {
	var node yaml.Node
	return yaml.Unmarshal([]byte(doc), &node)
}

func (YAML) Decode(doc string, v any) error {
	return yaml.Unmarshal([]byte(doc), v)
}

func yamlValue(answer string, kind patch.ValueKind) string {
	if kind == patch.KindPort && isInteger(answer) {
		return answer
	}

	out, err := yaml.Marshal(answer)
	if err != nil {
		return strconv.Quote(answer)
	}
	return strings.TrimSuffix(string(out), "\n")
}

// childIndent is the indentation of the first significant line in [start, end), or -1.
func childIndent(doc string, start, end int) int {
	ls := start
	if ls > 0 && doc[ls-1] != '\n' {
		ls = nextLine(doc, ls)
	}
	for ; ls < end; ls = nextLine(doc, ls) {
		line := lineAt(doc, ls)
		if significant(line) {
			return indentOf(line)
		}
	}
	return -1
}

func nextLine(doc string, pos int) int {
	i := strings.IndexByte(doc[pos:], '\n')
	if i < 0 {
		return len(doc)
	}
	return pos + i + 1
}

func lineAt(doc string, ls int) string {
	i := strings.IndexByte(doc[ls:], '\n')
	if i < 0 {
		return doc[ls:]
	}
	return doc[ls : ls+i]
}

func significant(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
