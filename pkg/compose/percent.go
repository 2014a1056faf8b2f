package compose

import (
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/types"
)

// ResolvePercentVars replaces %NAME% with the value of NAME in env.
// Unset names are left in place, percent signs included. A string with
// unbalanced percent signs is returned unchanged.
func ResolvePercentVars(s string, env types.Environment) string {
	parts := strings.Split(s, "%")
	if len(parts)%2 != 1 {
		return s
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for i := 1; i < len(parts); i += 2 {
		name := parts[i]
		if value, ok := env.Lookup(name); ok {
			b.WriteString(value)
		} else {
			b.WriteString("%" + name + "%")
		}
		b.WriteString(parts[i+1])
	}
	return b.String()
}

// PercentNames returns the names referenced as %NAME% in s, in order.
func PercentNames(s string) []string {
	parts := strings.Split(s, "%")
	if len(parts)%2 != 1 {
		return nil
	}
	var names []string
	for i := 1; i < len(parts); i += 2 {
		names = append(names, parts[i])
	}
	return names
}
