package classify

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/logging"
	"github.com/arthur-debert/ssmuse/pkg/paths"
	"github.com/arthur-debert/ssmuse/pkg/platform"
	"github.com/arthur-debert/ssmuse/pkg/types"
	"github.com/spf13/afero"
)

// Resolved is a classified load target.
type Resolved struct {
	Raw  string
	Path string
	Kind types.PathKind
}

// Classifier resolves raw arguments against the base directory search
// list and the platform chain.
type Classifier struct {
	FS    afero.Fs
	Chain platform.Chain
	Env   types.Environment
	// Realpath canonicalises candidates; nil means paths.Realpath.
	Realpath func(string) string
}

// New creates a classifier.
func New(fs afero.Fs, chain platform.Chain, env types.Environment) *Classifier {
	return &Classifier{FS: fs, Chain: chain, Env: env}
}

// Classify finds the first candidate location of raw that is of the
// expected kind. KindAny tries package, then domain, then directory.
func (c *Classifier) Classify(raw string, expected types.PathKind) (Resolved, error) {
	logger := logging.GetLogger("classify")

	for _, candidate := range paths.Candidates(raw, c.Env) {
		path := c.realpath(candidate)
		kind, resolved, ok := c.classify(path, expected)
		if ok {
			logger.Debug().
				Str("raw", raw).
				Str("kind", kind.String()).
				Str("path", resolved).
				Msg("Classified path")
			return Resolved{Raw: raw, Path: resolved, Kind: kind}, nil
		}
		logger.Trace().Str("candidate", path).Str("kind", expected.String()).Msg("Candidate rejected")
	}

	return Resolved{}, errors.Newf(errors.ErrInvalidPath, "invalid %s (%s)", expected, raw).
		WithDetail("kind", expected.String()).
		WithDetail("path", raw)
}

func (c *Classifier) classify(path string, expected types.PathKind) (types.PathKind, string, bool) {
	switch expected {
	case types.KindDomain:
		return types.KindDomain, path, c.IsDomain(path)
	case types.KindPackage:
		pkg, ok := c.MatchPackage(path)
		return types.KindPackage, pkg, ok
	case types.KindDirectory:
		return types.KindDirectory, path, c.isDir(path)
	}

	if pkg, ok := c.MatchPackage(path); ok {
		return types.KindPackage, pkg, true
	}
	if c.IsDomain(path) {
		return types.KindDomain, path, true
	}
	if c.isDir(path) {
		return types.KindDirectory, path, true
	}
	return types.KindAny, "", false
}

// IsDomain reports whether path carries the domain marker directory.
func (c *Classifier) IsDomain(path string) bool {
	return c.isDir(filepath.Join(path, paths.DomainMarker))
}

// IsPackage reports whether path carries the package marker file.
func (c *Classifier) IsPackage(path string) bool {
	ok, err := afero.Exists(c.FS, filepath.Join(path, paths.PackageMarker))
	return err == nil && ok
}

// MatchPackage finds the package path matches on this platform.
//
// A path that carries the marker itself is taken as is. When its name
// ends in _<platform> for a platform of the chain, the same stem is
// tried with that platform and every less specific one. Otherwise
// <path>_<platform> is tried for the whole chain, best first.
func (c *Classifier) MatchPackage(path string) (string, bool) {
	if c.IsPackage(path) {
		return path, true
	}

	dir, name := filepath.Split(path)
	if i := strings.LastIndex(name, "_"); i > 0 {
		stem, suffix := name[:i], name[i+1:]
		if idx := c.Chain.Index(suffix); idx >= 0 {
			for _, p := range c.Chain[idx:] {
				candidate := filepath.Join(dir, stem+"_"+p)
				if c.IsPackage(candidate) {
					return candidate, true
				}
			}
			return "", false
		}
	}

	for _, p := range c.Chain {
		candidate := path + "_" + p
		if c.IsPackage(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (c *Classifier) isDir(path string) bool {
	ok, err := afero.IsDir(c.FS, path)
	return err == nil && ok
}

func (c *Classifier) realpath(p string) string {
	if c.Realpath != nil {
		return c.Realpath(p)
	}
	return paths.Realpath(p)
}
