package types

import (
	"os"
	"sort"
	"strings"
)

// Environment is a read-only snapshot of process environment variables.
// Composition never writes to it; changes are expressed as emitted shell
// statements instead.
type Environment struct {
	vars map[string]string
}

// NewEnvironment copies vars into a new snapshot.
func NewEnvironment(vars map[string]string) Environment {
	cp := make(map[string]string, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return Environment{vars: cp}
}

// EnvironmentFromList builds a snapshot from KEY=VALUE entries as returned
// by os.Environ. Later duplicates win.
func EnvironmentFromList(entries []string) Environment {
	vars := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return Environment{vars: vars}
}

// CurrentEnvironment snapshots the environment of the running process.
func CurrentEnvironment() Environment {
	return EnvironmentFromList(os.Environ())
}

// Lookup returns the value of name and whether it is set.
func (e Environment) Lookup(name string) (string, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Get returns the value of name or "" when unset.
func (e Environment) Get(name string) string {
	return e.vars[name]
}

// GetOr returns the value of name or def when unset.
func (e Environment) GetOr(name, def string) string {
	if v, ok := e.vars[name]; ok {
		return v
	}
	return def
}

// With returns a new snapshot with name set to value.
func (e Environment) With(name, value string) Environment {
	next := NewEnvironment(e.vars)
	next.vars[name] = value
	return next
}

// Names returns the sorted variable names in the snapshot.
func (e Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
