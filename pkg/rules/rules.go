package rules

import (
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/config"
	"github.com/spf13/afero"
)

// Accept names a directory acceptance predicate.
type Accept string

const (
	// Any accepts every candidate without looking at the filesystem.
	Any Accept = config.AcceptAny
	// Exists accepts existing directories.
	Exists Accept = config.AcceptExists
	// NonEmpty accepts existing directories with at least one entry.
	NonEmpty Accept = config.AcceptNonEmpty
	// Libraries accepts directories holding a library file.
	Libraries Accept = config.AcceptLibraries
)

// Rule maps a group of variables sharing one value to the subpaths it
// is composed from.
type Rule struct {
	Names        []string
	Subpaths     []string
	ExtraDirsVar string
	Accept       Accept
}

// Name is the first alias, used to identify the rule.
func (r Rule) Name() string {
	if len(r.Names) == 0 {
		return ""
	}
	return r.Names[0]
}

// Table is an ordered rule list plus the settings its predicates need.
type Table struct {
	Rules           []Rule
	LibrarySuffixes []string
}

// Default returns the built-in table.
func Default() *Table {
	return FromConfig(config.Default())
}

// FromConfig builds the effective table from cfg.
func FromConfig(cfg *config.Config) *Table {
	t := &Table{LibrarySuffixes: append([]string(nil), cfg.LibrarySuffixes...)}
	for _, rc := range cfg.EffectiveRules() {
		accept := Accept(rc.Accept)
		if accept == "" {
			accept = NonEmpty
		}
		t.Rules = append(t.Rules, Rule{
			Names:        append([]string(nil), rc.Names...),
			Subpaths:     normalizeSubpaths(rc.Subpaths),
			ExtraDirsVar: rc.ExtraDirsVar,
			Accept:       accept,
		})
	}
	return t
}

// Config converts the table back to its configuration form.
func (t *Table) Config() []config.Rule {
	out := make([]config.Rule, 0, len(t.Rules))
	for _, r := range t.Rules {
		out = append(out, config.Rule{
			Names:        r.Names,
			Subpaths:     r.Subpaths,
			ExtraDirsVar: r.ExtraDirsVar,
			Accept:       string(r.Accept),
		})
	}
	return out
}

// Managed returns every variable name the table sets, in table order.
func (t *Table) Managed() []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range t.Rules {
		for _, name := range r.Names {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// ExtraDirsVars returns the override variable names in table order.
func (t *Table) ExtraDirsVars() []string {
	var names []string
	for _, r := range t.Rules {
		if r.ExtraDirsVar != "" {
			names = append(names, r.ExtraDirsVar)
		}
	}
	return names
}

// Accepts reports whether dir passes the rule's predicate.
func (t *Table) Accepts(fs afero.Fs, r Rule, dir string) bool {
	switch r.Accept {
	case Any:
		return true
	case Exists:
		return isDir(fs, dir)
	case Libraries:
		return t.hasLibrary(fs, dir)
	default:
		return isNonEmptyDir(fs, dir)
	}
}

// IsLibrary reports whether name carries one of the library suffixes.
func (t *Table) IsLibrary(name string) bool {
	for _, suffix := range t.LibrarySuffixes {
		if suffix != "" && strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func (t *Table) hasLibrary(fs afero.Fs, dir string) bool {
	if !isDir(fs, dir) {
		return false
	}
	names, err := afero.ReadDir(fs, dir)
	if err != nil {
		return false
	}
	for _, fi := range names {
		if t.IsLibrary(fi.Name()) {
			return true
		}
	}
	return false
}

func isDir(fs afero.Fs, dir string) bool {
	ok, err := afero.IsDir(fs, dir)
	return err == nil && ok
}

func isNonEmptyDir(fs afero.Fs, dir string) bool {
	if !isDir(fs, dir) {
		return false
	}
	empty, err := afero.IsEmpty(fs, dir)
	return err == nil && !empty
}

// normalizeSubpaths strips leading slashes so "/bin" and "bin" mean the
// same thing.
func normalizeSubpaths(subpaths []string) []string {
	out := make([]string, 0, len(subpaths))
	for _, s := range subpaths {
		out = append(out, strings.TrimLeft(s, "/"))
	}
	return out
}
