package config

import (
	"github.com/arthur-debert/ssmuse/pkg/errors"
)

// Acceptance predicates a rule may name.
const (
	AcceptAny       = "any"
	AcceptExists    = "exists"
	AcceptNonEmpty  = "nonempty"
	AcceptLibraries = "libraries"
)

// Rule is the configuration form of one variable composition rule.
type Rule struct {
	Names        []string `koanf:"names" toml:"names" yaml:"names"`
	Subpaths     []string `koanf:"subpaths" toml:"subpaths" yaml:"subpaths"`
	ExtraDirsVar string   `koanf:"extra_dirs_var" toml:"extra_dirs_var,omitempty" yaml:"extra_dirs_var,omitempty"`
	Accept       string   `koanf:"accept" toml:"accept,omitempty" yaml:"accept,omitempty"`
}

// Entry names the commands the generated script uses to re-enter ssmuse.
type Entry struct {
	Sh  string `koanf:"sh"`
	Csh string `koanf:"csh"`
}

// Config is the fully merged ssmuse configuration.
type Config struct {
	PlatformsDir    string   `koanf:"platforms_dir"`
	PlatformsFile   string   `koanf:"platforms_file"`
	LibrarySuffixes []string `koanf:"library_suffixes"`
	Entry           Entry    `koanf:"entry"`
	Rules           []Rule   `koanf:"rules"`
	ExtraRules      []Rule   `koanf:"extra_rules"`

	// Sources lists the files that contributed, in load order.
	Sources []string `koanf:"-"`
}

// Default returns the embedded configuration alone.
func Default() *Config {
	cfg, err := load(Options{})
	if err != nil {
		panic(err)
	}
	return cfg
}

// EffectiveRules returns Rules with ExtraRules applied: an extra rule
// whose first name matches an existing rule replaces it in place,
// otherwise it is appended.
func (c *Config) EffectiveRules() []Rule {
	out := make([]Rule, len(c.Rules))
	copy(out, c.Rules)

	for _, extra := range c.ExtraRules {
		replaced := false
		for i := range out {
			if len(out[i].Names) > 0 && len(extra.Names) > 0 && out[i].Names[0] == extra.Names[0] {
				out[i] = extra
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, extra)
		}
	}
	return out
}

// Validate checks that every rule is usable.
func (c *Config) Validate() error {
	for i, r := range append(append([]Rule{}, c.Rules...), c.ExtraRules...) {
		if len(r.Names) == 0 {
			return errors.Newf(errors.ErrConfigValid, "rule %d has no variable names", i)
		}
		if len(r.Subpaths) == 0 && r.ExtraDirsVar == "" {
			return errors.Newf(errors.ErrConfigValid, "rule %s has no subpaths", r.Names[0]).
				WithDetail("rule", r.Names[0])
		}
		switch r.Accept {
		case "", AcceptAny, AcceptExists, AcceptNonEmpty, AcceptLibraries:
		default:
			return errors.Newf(errors.ErrConfigValid, "rule %s has unknown accept %q", r.Names[0], r.Accept).
				WithDetail("rule", r.Names[0])
		}
	}
	for _, entry := range []string{c.Entry.Sh, c.Entry.Csh} {
		if entry == "" {
			return errors.New(errors.ErrConfigValid, "entry commands must not be empty")
		}
	}
	return nil
}
