package path

import "strings"

// Normalize converts every backslash separator to a forward slash.
func Normalize(path string) string {
	return strings.ReplaceAll(path, `\`, `/`)
}
