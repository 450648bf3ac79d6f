package util

import (
	"regexp"
	"strings"
)

var nonIdent = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// SanitizeID converts a string into a valid INI/Ansible group identifier.
// Group names must be alphanumeric with underscores. Case is kept so labels
// differing only by case stay separate groups.
func SanitizeID(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = nonIdent.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}

// JoinID sanitizes each part and joins them with underscores.
func JoinID(parts ...string) string {
	ids := make([]string, len(parts))
	for i, p := range parts {
		ids[i] = SanitizeID(p)
	}
	return strings.Join(ids, "_")
}

// FirstLine returns s up to, not including, the first line break.
func FirstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
