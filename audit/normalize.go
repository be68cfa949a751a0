package audit

import (
	"regexp"
	"strings"
)

// separatorPattern matches runs of whitespace and the common separator
// characters people sprinkle into names and passwords. They are stripped
// before substring comparison so "Jo-hn" and "john" compare equal.
var separatorPattern = regexp.MustCompile(`[\s_\-.]+`)

// Normalize trims and lowercases s, then removes every run of whitespace,
// underscore, hyphen or period. Empty input yields empty output.
func Normalize(s string) string {
	return separatorPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}
