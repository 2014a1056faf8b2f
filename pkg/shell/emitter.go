package shell

import (
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/types"
)

// Supported dialects.
const (
	DialectSh  = "sh"
	DialectCsh = "csh"
)

// Emitter accumulates the statements of one generated script.
type Emitter interface {
	// Dialect is the shell type, which is also the profile file suffix.
	Dialect() string
	Comment(s string)
	// Echo writes a trace line to stderr when the script runs. It emits
	// nothing unless verbose output is enabled.
	Echo(s string)
	SetVerbose(verbose bool)
	ExportVar(name, value string)
	// ExportPath adds value to name, or sets name to value when it is
	// unset or empty.
	ExportPath(name string, mode types.PendMode, value string)
	UnsetVar(name string)
	SourceFile(path string)
	// DedupPath rewrites name through the cleanpath helper.
	DedupPath(name string)
	// Guard re-enters ssmuse with the remaining arguments when the
	// dependency fingerprint changed, skipping the rest of the script.
	Guard(g Guard)
	Execute(line string)
	Render() string
}

// Guard describes a dependency change check.
type Guard struct {
	Names  []string
	Values []string
	Entry  string
	Args   []string
}

// Options configure an emitter.
type Options struct {
	Verbose bool
	// PID tags trace lines.
	PID int
	// CleanPath is the command prefix that deduplicates a path list,
	// e.g. "/usr/bin/ssmuse cleanpath".
	CleanPath []string
}

// New returns the emitter for dialect.
func New(dialect string, opts Options) (Emitter, error) {
	switch dialect {
	case DialectSh:
		return &shEmitter{script: newScript(opts)}, nil
	case DialectCsh:
		return &cshEmitter{script: newScript(opts)}, nil
	}
	return nil, errors.Newf(errors.ErrShellType, "bad shell type (%s)", dialect).
		WithDetail("dialect", dialect)
}

// IsDialect reports whether s names a supported dialect.
func IsDialect(s string) bool {
	return s == DialectSh || s == DialectCsh
}

// script holds the state shared by both dialects.
type script struct {
	b    strings.Builder
	opts Options
}

func newScript(opts Options) script {
	return script{opts: opts}
}

func (s *script) line(format string) {
	s.b.WriteString(format)
	s.b.WriteByte('\n')
}

func (s *script) SetVerbose(verbose bool) {
	s.opts.Verbose = verbose
}

func (s *script) Comment(c string) {
	if c == "" {
		s.line("#")
		return
	}
	s.line("# " + strings.ReplaceAll(c, "\n", " "))
}

func (s *script) Execute(l string) {
	s.line(l)
}

func (s *script) Render() string {
	return s.b.String()
}

func (s *script) cleanPathCommand() string {
	parts := make([]string, 0, len(s.opts.CleanPath))
	for _, p := range s.opts.CleanPath {
		parts = append(parts, SingleQuote(p))
	}
	return strings.Join(parts, " ")
}

// SingleQuote quotes s for both dialects.
func SingleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quoteAll(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		quoted = append(quoted, SingleQuote(a))
	}
	return strings.Join(quoted, " ")
}

// NoEval wraps a rendered script so that sourcing it prints the script
// instead of running it.
func NoEval(rendered string) string {
	const marker = "__SSMUSE_EOF__"
	return "cat <<'" + marker + "'\n" + rendered + marker + "\n"
}
