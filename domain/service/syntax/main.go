package syntax

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/model/patch"
)

var integerPattern = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)

// ForPath picks the document syntax from the file extension.
func ForPath(path string) (patch.Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON{}, nil
	case ".yml", ".yaml":
		return YAML{}, nil
	}
	return nil, eris.Errorf("unsupported config format: %s", path)
}

func dotted(section, key string) string {
	if section == "" {
		return key
	}
	return section + "." + key
}

func isInteger(answer string) bool {
	return integerPattern.MatchString(answer)
}
