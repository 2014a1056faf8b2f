package compose

import "strings"

// Dedup keeps the first occurrence of each colon-separated segment.
func Dedup(value string) string {
	segments := strings.Split(value, ":")
	seen := make(map[string]bool, len(segments))
	out := segments[:0]
	for _, seg := range segments {
		if seen[seg] {
			continue
		}
		seen[seg] = true
		out = append(out, seg)
	}
	return strings.Join(out, ":")
}
