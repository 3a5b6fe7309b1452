package core

import "strings"

// CleanString trims user input (class names, query filters, kinds..), lowering it when asked.
func CleanString(s string, lower ...bool) string {
	if s = strings.TrimSpace(s); len(lower) > 0 && lower[0] {
		s = strings.ToLower(s)
	}
	return s
}
