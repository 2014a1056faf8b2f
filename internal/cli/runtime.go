package cli

import (
	"io"
	"os"
	"time"

	"github.com/arthur-debert/ssmuse/internal/commands"
	"github.com/arthur-debert/ssmuse/pkg/config"
	"github.com/arthur-debert/ssmuse/pkg/logging"
	"github.com/arthur-debert/ssmuse/pkg/paths"
	"github.com/arthur-debert/ssmuse/pkg/platform"
	"github.com/arthur-debert/ssmuse/pkg/style"
	"github.com/arthur-debert/ssmuse/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Runtime carries the process inputs commands read. Tests swap in an
// in-memory filesystem, a fixed environment and buffers.
type Runtime struct {
	FS     afero.Fs
	Env    types.Environment
	Stdout io.Writer
	Stderr io.Writer

	// LoadConfig returns the merged configuration with overrides applied
	// last; nil reads the standard layers named by Env.
	LoadConfig func(overrides map[string]interface{}) (*config.Config, error)

	// Detect overrides host platform detection.
	Detect func(afero.Fs) (string, error)

	// Self is the ssmuse executable generated code calls back into.
	Self    string
	PID     int
	TempDir string

	Hostname string
	Now      func() time.Time
	Realpath func(string) string
}

// DefaultRuntime describes the running process.
func DefaultRuntime() *Runtime {
	return &Runtime{
		FS:     afero.NewOsFs(),
		Env:    types.CurrentEnvironment(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Self:   paths.SelfPath(),
		PID:    os.Getpid(),
	}
}

func (rt *Runtime) config(overrides map[string]interface{}) (*config.Config, error) {
	if rt.LoadConfig == nil {
		opts := config.DefaultOptions(rt.Env)
		opts.Overrides = overrides
		return config.Load(opts)
	}
	return rt.LoadConfig(overrides)
}

func (rt *Runtime) platformSource(cfg *config.Config) *platform.Source {
	records := cfg.PlatformsDir
	if records == "" {
		records = paths.DefaultPlatformsDir()
	}
	return &platform.Source{
		FS:            rt.FS,
		PlatformsFile: paths.ExpandHome(cfg.PlatformsFile),
		RecordsDir:    paths.ExpandHome(records),
		Detect:        rt.Detect,
	}
}

// openUsageLog opens the sink named by SSMUSE_LOG. A sink that cannot be
// opened costs the run its usage log, nothing more.
func (rt *Runtime) openUsageLog() *logging.UsageLog {
	spec := rt.Env.Get(paths.EnvLog)
	if spec == "" {
		return nil
	}
	usage, err := logging.OpenUsageLog(rt.FS, spec, rt.Env.Get(paths.EnvLogFilter))
	if err != nil {
		log.Debug().Err(err).Str("spec", spec).Msg("usage log unavailable")
		style.NewPrinter(rt.Stderr).Warning(commands.MsgNoLogging)
		return nil
	}
	return usage
}

func (rt *Runtime) now() time.Time {
	if rt.Now == nil {
		return time.Now()
	}
	return rt.Now()
}
