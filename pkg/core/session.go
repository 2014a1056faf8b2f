package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/ssmuse/pkg/classify"
	"github.com/arthur-debert/ssmuse/pkg/compose"
	"github.com/arthur-debert/ssmuse/pkg/deps"
	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/logging"
	"github.com/arthur-debert/ssmuse/pkg/paths"
	"github.com/arthur-debert/ssmuse/pkg/platform"
	"github.com/arthur-debert/ssmuse/pkg/rules"
	"github.com/arthur-debert/ssmuse/pkg/shell"
	"github.com/arthur-debert/ssmuse/pkg/types"
	"github.com/spf13/afero"
)

// headerEnvNames are echoed as comments at the top of every script.
var headerEnvNames = []string{
	paths.EnvBase,
	paths.EnvLog,
	paths.EnvSearchPath,
	paths.EnvPlatforms,
	paths.EnvXIncDirs,
	paths.EnvXLibDirs,
}

// Options configure a Session.
type Options struct {
	FS      afero.Fs
	Env     types.Environment
	Dialect string
	Chain   platform.Chain
	Table   *rules.Table
	// Entry is the command the dependency guard sources to re-enter.
	Entry string
	// CleanPath is the command prefix that deduplicates a path list.
	CleanPath []string
	Verbose   bool
	PID       int
	Hostname  string
	Now       time.Time
	Usage     *logging.UsageLog
	// Realpath overrides path canonicalisation; nil uses the host's.
	Realpath func(string) string
}

// Step records what one load did.
type Step struct {
	Kind     types.PathKind
	Mode     types.PendMode
	Raw      string
	Path     string
	Layers   []string
	Profiles []string
	Guarded  bool
}

// Result is the outcome of a Session run.
type Result struct {
	Script string
	Steps  []Step
	// Env is the environment the script leaves behind, as far as this
	// process can predict it. Profile scripts and dedup are not applied.
	Env types.Environment
}

// Session turns one request stream into a script.
type Session struct {
	opts       Options
	emitter    shell.Emitter
	classifier *classify.Classifier
	composer   *compose.Composer
	snapshot   deps.Fingerprint
	predicted  types.Environment
	forced     *types.PendMode
	verbose    bool
	steps      []Step
}

// NewSession validates opts and prepares a session.
func NewSession(opts Options) (*Session, error) {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Table == nil {
		opts.Table = rules.Default()
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Hostname == "" {
		opts.Hostname, _ = os.Hostname()
	}

	emitter, err := shell.New(opts.Dialect, shell.Options{
		Verbose:   opts.Verbose,
		PID:       opts.PID,
		CleanPath: opts.CleanPath,
	})
	if err != nil {
		return nil, err
	}

	classifier := classify.New(opts.FS, opts.Chain, opts.Env)
	classifier.Realpath = opts.Realpath

	names := deps.Names(opts.Table, opts.Env)
	s := &Session{
		opts:       opts,
		emitter:    emitter,
		classifier: classifier,
		composer:   compose.NewComposer(opts.FS, opts.Table, opts.Env),
		snapshot:   deps.Capture(opts.Env, names),
		predicted:  opts.Env,
		verbose:    opts.Verbose,
	}

	if pend, ok := opts.Env.Lookup(paths.EnvPendMode); ok {
		if mode, err := types.ParsePendMode(pend); err == nil {
			s.forced = &mode
		}
	}
	return s, nil
}

// Run processes args and returns the rendered script. Nothing is
// rendered when any token fails.
func (s *Session) Run(args []string) (*Result, error) {
	logger := logging.GetLogger("core.session")
	defer logging.LogOperationStart(logger, "run")()

	reqs, err := Parse(args)
	if err != nil {
		return nil, err
	}

	s.header()

	for _, req := range reqs {
		switch req.Op {
		case OpVerbose:
			s.verbose = true
			s.emitter.SetVerbose(true)
		case OpForceMode:
			mode := req.Mode
			s.forced = &mode
			s.emitter.Echo("pendmode: " + mode.String())
		case OpLoad:
			if err := s.load(req); err != nil {
				return nil, err
			}
		}
	}

	s.emitter.UnsetVar(paths.EnvPendMode)
	s.emitter.Echo("deduppaths:")
	for _, name := range s.opts.Table.Managed() {
		s.emitter.DedupPath(name)
	}

	return &Result{
		Script: s.emitter.Render(),
		Steps:  s.steps,
		Env:    s.predicted,
	}, nil
}

func (s *Session) header() {
	e := s.emitter
	e.Comment("host (" + s.opts.Hostname + ")")
	e.Comment("date (" + s.opts.Now.Format(time.ANSIC) + ")")
	e.Comment("platforms (" + s.opts.Chain.String() + ")")
	e.Comment("depnames (" + strings.Join(s.snapshot.Names(), " ") + ")")
	for _, name := range headerEnvNames {
		e.Comment("env (" + name + ") (" + s.opts.Env.GetOr(name, "-") + ")")
	}
}

func (s *Session) load(req Request) error {
	mode := req.Mode
	if s.forced != nil {
		mode = *s.forced
	}

	resolved, err := s.classifier.Classify(req.Path, req.Kind)
	if err != nil {
		logger := logging.GetLogger("core.session")
		logger.Debug().Err(err).Str("path", req.Path).Msg("Classification failed")
		return errors.Newf(errors.ErrInvalidPath, "%s: invalid %s (%s)",
			loadOp(req.Kind), req.Kind, req.Path).
			WithDetail("kind", req.Kind.String()).
			WithDetail("path", req.Path)
	}

	step := Step{Kind: resolved.Kind, Mode: mode, Raw: req.Path, Path: resolved.Path}

	switch resolved.Kind {
	case types.KindDomain:
		s.emitter.ExportVar(paths.EnvPendMode, mode.String())
		s.loadDomain(&step)
	case types.KindPackage:
		s.emitter.ExportVar(paths.EnvPendMode, mode.String())
		s.loadPackage(&step)
	default:
		s.emitter.UnsetVar(paths.EnvPendMode)
		s.loadDirectory(&step)
	}

	if resolved.Kind != types.KindDirectory && len(req.Rest) > 0 {
		step.Guarded = s.guard(req.Rest, len(step.Profiles) > 0)
	}
	s.steps = append(s.steps, step)
	return nil
}

// guard emits the dependency check when the step may have changed a
// dependency variable.
func (s *Session) guard(rest []string, sourced bool) bool {
	if !sourced && !s.snapshot.Changed(s.predicted) {
		logger := logging.GetLogger("core.session")
		logger.Debug().Msg("Dependencies unchanged, continuing inline")
		return false
	}

	var args []string
	if s.verbose {
		args = append(args, "-v")
	}
	if s.forced != nil {
		args = append(args, "--"+s.forced.String())
	}
	args = append(args, rest...)

	s.emitter.UnsetVar(paths.EnvPendMode)
	s.emitter.Guard(shell.Guard{
		Names:  s.snapshot.Names(),
		Values: s.snapshot.Values(),
		Entry:  s.opts.Entry,
		Args:   args,
	})
	return true
}

func (s *Session) loadDomain(step *Step) {
	logger := logging.GetLogger("core.domain")
	defer logging.LogOperationStart(logger, "loaddomain")()

	s.emitter.Echo("loaddomain: (" + step.Mode.String() + ") (" + step.Path + ")")
	for _, layer := range s.opts.Chain.Loading() {
		layerPath := filepath.Join(step.Path, layer)
		if !s.isDir(layerPath) {
			continue
		}
		s.emitter.Echo("dompath: (" + step.Mode.String() + ") (" + step.Path + ") (" + layer + ")")
		s.apply(s.composer.Compose(step.Mode, layerPath))
		step.Profiles = append(step.Profiles, s.domainProfiles(layerPath)...)
		step.Layers = append(step.Layers, layer)
	}

	s.record(loadOp(types.KindDomain), step)
}

func (s *Session) loadPackage(step *Step) {
	logger := logging.GetLogger("core.package")
	defer logging.LogOperationStart(logger, "loadpackage")()

	s.emitter.Echo("loadpackage: (" + step.Mode.String() + ") (" + step.Path + ")")
	s.apply(s.composer.Compose(step.Mode, step.Path))

	name := filepath.Base(step.Path)
	profile := filepath.Join(step.Path, paths.ProfileDir, name+"."+s.emitter.Dialect())
	if ok, err := afero.Exists(s.opts.FS, profile); err == nil && ok {
		s.emitter.SourceFile(profile)
		step.Profiles = append(step.Profiles, profile)
	}

	s.record(loadOp(types.KindPackage), step)
}

func (s *Session) loadDirectory(step *Step) {
	s.emitter.Echo("loaddirectory: (" + step.Mode.String() + ") (" + step.Path + ")")
	s.apply(s.composer.Compose(step.Mode, step.Path))
	s.record(loadOp(types.KindDirectory), step)
}

// domainProfiles sources <layer>/etc/profile.d/*.<dialect> in name order.
func (s *Session) domainProfiles(layerPath string) []string {
	s.emitter.Echo("loadprofiles: (" + layerPath + ")")

	root := filepath.Join(layerPath, paths.ProfileDir)
	entries, err := afero.ReadDir(s.opts.FS, root)
	if err != nil {
		return nil
	}

	suffix := "." + s.emitter.Dialect()
	var sourced []string
	for _, fi := range entries {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), suffix) {
			continue
		}
		path := filepath.Join(root, fi.Name())
		s.emitter.SourceFile(path)
		sourced = append(sourced, path)
	}
	return sourced
}

func (s *Session) apply(mutations []compose.Mutation) {
	for _, m := range mutations {
		s.emitter.ExportPath(m.Name, m.Mode, m.Value())
	}
	s.predicted = compose.Apply(s.predicted, mutations)
}

func (s *Session) record(op string, step *Step) {
	ev := logging.UsageEvent{
		Op:       op,
		User:     s.opts.Env.Get(paths.EnvLogname),
		Host:     s.opts.Hostname,
		Platform: s.opts.Chain.Primary(),
		Shell:    s.opts.Dialect,
		Pend:     step.Mode.String(),
		Raw:      step.Raw,
		Resolved: step.Path,
	}
	if step.Kind == types.KindDomain {
		ev.Platforms = append([]string{}, step.Layers...)
	}
	s.opts.Usage.Record(step.Path, ev)
}

func (s *Session) isDir(path string) bool {
	ok, err := afero.IsDir(s.opts.FS, path)
	return err == nil && ok
}

// loadOp names the load operation for kind in traces and the usage log.
func loadOp(kind types.PathKind) string {
	if kind == types.KindAny {
		return "loadauto"
	}
	return "load" + kind.String()
}
