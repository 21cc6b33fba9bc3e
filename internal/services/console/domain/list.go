package domain

import "strings"

// SplitList turns comma-separated form text into a list.
//
// Entries are trimmed and blanks dropped; order and duplicates are kept.
// The result is never nil so it encodes as a JSON array.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// JoinList renders a list back into the form text SplitList accepts.
func JoinList(values []string) string {
	return strings.Join(values, ", ")
}

// NonNil returns values, or an empty slice when values is nil.
func NonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
