package deps

import (
	"sort"

	"github.com/arthur-debert/ssmuse/pkg/compose"
	"github.com/arthur-debert/ssmuse/pkg/rules"
	"github.com/arthur-debert/ssmuse/pkg/types"
)

// Names returns the dependency variable names: every extra-dirs variable
// of the table plus the names its current value references as %NAME%.
// Discovery goes one level deep. The result is sorted.
func Names(table *rules.Table, env types.Environment) []string {
	set := make(map[string]bool)
	for _, name := range table.ExtraDirsVars() {
		set[name] = true
		for _, ref := range compose.PercentNames(env.Get(name)) {
			if ref != "" {
				set[ref] = true
			}
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entry is one captured variable.
type Entry struct {
	Name  string
	Value string
}

// Fingerprint is the ordered list of dependency values at one moment.
type Fingerprint []Entry

// Capture records the value of each name in env. Unset reads as empty.
func Capture(env types.Environment, names []string) Fingerprint {
	fp := make(Fingerprint, 0, len(names))
	for _, name := range names {
		fp = append(fp, Entry{Name: name, Value: env.Get(name)})
	}
	return fp
}

// Names returns the captured names in order.
func (f Fingerprint) Names() []string {
	names := make([]string, 0, len(f))
	for _, e := range f {
		names = append(names, e.Name)
	}
	return names
}

// Values returns the captured values in order.
func (f Fingerprint) Values() []string {
	values := make([]string, 0, len(f))
	for _, e := range f {
		values = append(values, e.Value)
	}
	return values
}

// Changed reports whether any captured variable has a different value in env.
func (f Fingerprint) Changed(env types.Environment) bool {
	for _, e := range f {
		if env.Get(e.Name) != e.Value {
			return true
		}
	}
	return false
}
