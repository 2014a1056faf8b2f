package platform

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/logging"
	"github.com/spf13/afero"
)

// Universal fallback layers present at the end of every chain.
const (
	All   = "all"
	Multi = "multi"
)

// maxRecordHops bounds how many compatibility records a single resolution
// follows.
const maxRecordHops = 64

// Chain is an ordered platform list, most specific first.
type Chain []string

// Loading returns the chain in load order: least specific first.
func (c Chain) Loading() Chain {
	out := make(Chain, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// Primary returns the most specific platform, or "" for an empty chain.
func (c Chain) Primary() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Index returns the position of platform in the chain, or -1.
func (c Chain) Index(platform string) int {
	for i, p := range c {
		if p == platform {
			return i
		}
	}
	return -1
}

// Contains reports whether platform is part of the chain.
func (c Chain) Contains(platform string) bool {
	return c.Index(platform) >= 0
}

func (c Chain) String() string {
	return strings.Join(c, " ")
}

// ParseChain splits a whitespace-separated platform list.
func ParseChain(s string) Chain {
	return Chain(strings.Fields(s))
}

// Resolver expands a base platform using compatibility records stored as
// <RecordsDir>/<dist>/<platform>, each holding one line of the form
// "<compatible platforms>:<parent platform>".
type Resolver struct {
	FS         afero.Fs
	RecordsDir string
}

// NewResolver creates a resolver reading records from recordsDir.
func NewResolver(fs afero.Fs, recordsDir string) *Resolver {
	return &Resolver{FS: fs, RecordsDir: recordsDir}
}

// Resolve returns the compatibility chain for base. The chain contains
// base, holds each platform once and always ends with All and Multi. A
// missing or unreadable record ends the walk, and a parent that was already
// visited stops it, so malformed record sets still terminate.
func (r *Resolver) Resolve(base string) Chain {
	logger := logging.GetLogger("platform.resolver")

	var chain Chain
	seen := make(map[string]bool)
	platform := base
	for hops := 0; platform != "" && hops < maxRecordHops; hops++ {
		if seen[platform] {
			logger.Warn().Str("platform", platform).Msg("compatibility records loop, stopping")
			break
		}
		seen[platform] = true

		compatible, parent, ok := r.readRecord(platform)
		if !ok {
			break
		}
		for _, c := range compatible {
			if c != All && c != Multi && !chain.Contains(c) {
				chain = append(chain, c)
			}
		}
		platform = parent
	}

	if base != "" && !chain.Contains(base) {
		chain = append(Chain{base}, chain...)
	}
	chain = append(chain, All, Multi)

	logger.Debug().Str("base", base).Strs("chain", chain).Msg("resolved platform chain")
	return chain
}

func (r *Resolver) readRecord(platform string) ([]string, string, bool) {
	if r.FS == nil || r.RecordsDir == "" {
		return nil, "", false
	}
	dist, _, _ := strings.Cut(platform, "-")
	path := filepath.Join(r.RecordsDir, dist, platform)
	data, err := afero.ReadFile(r.FS, path)
	if err != nil {
		return nil, "", false
	}
	line := strings.TrimSpace(string(data))
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	compatible, parent, _ := strings.Cut(line, ":")
	return strings.Fields(compatible), strings.TrimSpace(parent), true
}
