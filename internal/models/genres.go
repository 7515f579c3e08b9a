package models

import "strings"

const genreSeparator = ","

// JoinGenres encodes genre tags into the comma-delimited column format.
func JoinGenres(genres []string) string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return strings.Join(out, genreSeparator)
}

// SplitGenres decodes the comma-delimited column format.
func SplitGenres(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, genreSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
