package platform

import (
	"github.com/arthur-debert/ssmuse/pkg/logging"
	"github.com/arthur-debert/ssmuse/pkg/paths"
	"github.com/arthur-debert/ssmuse/pkg/types"
	"github.com/spf13/afero"
)

// Source decides where the host platform chain comes from.
type Source struct {
	FS afero.Fs

	// PlatformsFile lists the chain for the host, when present.
	PlatformsFile string

	// RecordsDir holds the compatibility records used when the chain has
	// to be resolved from the detected base platform.
	RecordsDir string

	// Detect returns the base platform; defaults to Detect on FS.
	Detect func(afero.Fs) (string, error)
}

// Chain returns the platform chain for the host. SSMUSE_PLATFORMS is used
// verbatim when set; otherwise the platforms file; otherwise the base
// platform is detected and resolved through the compatibility records. An
// undetectable host still gets the universal layers.
func (s *Source) Chain(env types.Environment) Chain {
	logger := logging.GetLogger("platform.source")

	if v, ok := env.Lookup(paths.EnvPlatforms); ok {
		logger.Debug().Str("source", paths.EnvPlatforms).Msg("using platform override")
		return ParseChain(v)
	}

	if s.PlatformsFile != "" {
		if data, err := afero.ReadFile(s.FS, s.PlatformsFile); err == nil {
			logger.Debug().Str("source", s.PlatformsFile).Msg("using platforms file")
			return ParseChain(string(data))
		}
	}

	detect := s.Detect
	if detect == nil {
		detect = Detect
	}
	base, err := detect(s.FS)
	if err != nil {
		logger.Warn().Err(err).Msg("base platform unknown, using universal layers only")
		base = ""
	}
	return NewResolver(s.FS, s.RecordsDir).Resolve(base)
}
