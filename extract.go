package versionstamp

import "regexp"

// Extract searches src for an assignment of a quoted string to identifier,
// e.g. `__version__ = '1.2.3'`, and returns the quoted value. Single and
// double quotes are both accepted. The second return reports whether a
// match was found; callers decide what to substitute when it wasn't.
func Extract(src []byte, identifier string) (string, bool) {
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(identifier) + `\s*=\s*(?:'([^']*)'|"([^"]*)")`)
	m := re.FindSubmatchIndex(src)
	if m == nil {
		return "", false
	}
	// Group 1 is the single-quoted alternative, group 2 the double-quoted.
	if m[2] >= 0 {
		return string(src[m[2]:m[3]]), true
	}
	return string(src[m[4]:m[5]]), true
}
