package compose

import (
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/types"
)

// Mutation adds Dirs to the variable Name.
type Mutation struct {
	Name string
	Mode types.PendMode
	Dirs []string
}

// Value is the colon-joined list of new directories.
func (m Mutation) Value() string {
	return strings.Join(m.Dirs, ":")
}

// Result is the variable's value after the mutation, given its old value.
// An empty old value is replaced outright.
func (m Mutation) Result(old string) string {
	if old == "" {
		return m.Value()
	}
	if m.Mode == types.Append {
		return old + ":" + m.Value()
	}
	return m.Value() + ":" + old
}

// Apply replays mutations against env and returns the resulting snapshot.
func Apply(env types.Environment, mutations []Mutation) types.Environment {
	for _, m := range mutations {
		env = env.With(m.Name, m.Result(env.Get(m.Name)))
	}
	return env
}
