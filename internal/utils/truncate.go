package utils

import "strings"

// TruncateForLog flattens s onto a single line, collapsing runs of whitespace
// such as the line breaks of extracted resume text, and cuts it to limit runes
// with a trailing ellipsis.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	flat := strings.Join(strings.Fields(s), " ")
	runes := 0
	for i := range flat {
		if runes == limit {
			return flat[:i] + "..."
		}
		runes++
	}
	return flat
}
