package compose

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/logging"
	"github.com/arthur-debert/ssmuse/pkg/paths"
	"github.com/arthur-debert/ssmuse/pkg/rules"
	"github.com/arthur-debert/ssmuse/pkg/types"
	"github.com/spf13/afero"
)

// Composer computes mutations from a rule table.
type Composer struct {
	FS    afero.Fs
	Table *rules.Table
	Env   types.Environment
}

// NewComposer creates a composer reading env.
func NewComposer(fs afero.Fs, table *rules.Table, env types.Environment) *Composer {
	return &Composer{FS: fs, Table: table, Env: env}
}

// Compose returns one mutation per variable alias for every rule that
// found at least one acceptable directory under base. Directories keep
// their candidate order in both modes.
func (c *Composer) Compose(mode types.PendMode, base string) []Mutation {
	logger := logging.GetLogger("compose.composer")

	var mutations []Mutation
	for _, rule := range c.Table.Rules {
		dirs := c.ruleDirs(rule, base)
		if len(dirs) == 0 {
			continue
		}
		logger.Debug().
			Str("rule", rule.Name()).
			Str("base", base).
			Strs("dirs", dirs).
			Msg("Rule matched")
		for _, name := range rule.Names {
			mutations = append(mutations, Mutation{
				Name: name,
				Mode: mode,
				Dirs: append([]string(nil), dirs...),
			})
		}
	}
	return mutations
}

// Candidates lists every directory the rule would consider under base,
// before the acceptance predicate runs.
func (c *Composer) Candidates(rule rules.Rule, base string) []string {
	extras := c.extraDirs(rule)

	subpaths := rule.Subpaths
	if len(subpaths) == 0 {
		subpaths = []string{""}
	}

	var out []string
	for _, sub := range subpaths {
		sub = ResolvePercentVars(sub, c.Env)
		if sub != "" {
			out = append(out, filepath.Join(base, sub))
		}
		for _, extra := range extras {
			if strings.HasPrefix(extra, "/") {
				out = append(out, filepath.Join(base, extra[1:]))
			} else {
				out = append(out, filepath.Join(base, sub, extra))
			}
		}
	}
	return out
}

func (c *Composer) ruleDirs(rule rules.Rule, base string) []string {
	var dirs []string
	for _, candidate := range c.Candidates(rule, base) {
		if c.Table.Accepts(c.FS, rule, candidate) {
			dirs = append(dirs, candidate)
		}
	}
	return dirs
}

func (c *Composer) extraDirs(rule rules.Rule) []string {
	if rule.ExtraDirsVar == "" {
		return nil
	}
	value := ResolvePercentVars(c.Env.Get(rule.ExtraDirsVar), c.Env)
	return paths.SplitList(value)
}
