package testutil

import (
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/types"
)

// Env builds an environment snapshot from KEY=VALUE pairs.
func Env(pairs ...string) types.Environment {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, _ := strings.Cut(pair, "=")
		vars[k] = v
	}
	return types.NewEnvironment(vars)
}
