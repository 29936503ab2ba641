// Package strings provides small string helpers shared across packages
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Blank reports whether s has no non whitespace content
func Blank(s string) bool { return std.TrimSpace(s) == "" }

// Selected reports whether a filter value narrows a query
// blank and the literal "all" (any case) mean no narrowing
func Selected(s string) bool {
	s = std.TrimSpace(s)
	return s != "" && !std.EqualFold(s, "all")
}

// SplitCSV splits a comma separated list, trimming items and dropping blanks
func SplitCSV(s string) []string {
	parts := std.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = std.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Compact collapses every whitespace run to one space and trims the ends
// handy for logging multi line SQL on one line
func Compact(s string) string { return std.Join(std.Fields(s), " ") }

// MustPrefix normalizes and asserts a root path like /auth or /reports
// ensures a single leading slash and no trailing slash
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
