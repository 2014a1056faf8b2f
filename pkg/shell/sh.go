package shell

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/types"
)

// shEmitter writes Bourne shell family syntax.
type shEmitter struct {
	script
}

var shEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

func shQuote(s string) string {
	return `"` + shEscaper.Replace(s) + `"`
}

func (e *shEmitter) Dialect() string { return DialectSh }

func (e *shEmitter) Echo(msg string) {
	if !e.opts.Verbose {
		return
	}
	e.line(fmt.Sprintf("echo %s 1>&2", shQuote(fmt.Sprintf("[%d] %s", e.opts.PID, msg))))
}

func (e *shEmitter) ExportVar(name, value string) {
	e.line(fmt.Sprintf("export %s=%s", name, shQuote(value)))
}

func (e *shEmitter) ExportPath(name string, mode types.PendMode, value string) {
	escaped := shEscaper.Replace(value)
	var combined string
	if mode == types.Append {
		combined = fmt.Sprintf(`"${%s}:%s"`, name, escaped)
	} else {
		combined = fmt.Sprintf(`"%s:${%s}"`, escaped, name)
	}
	e.line(fmt.Sprintf(`if [ -n "${%s}" ]; then`, name))
	e.line(fmt.Sprintf("    export %s=%s", name, combined))
	e.line("else")
	e.line(fmt.Sprintf("    export %s=%s", name, shQuote(value)))
	e.line("fi")
}

func (e *shEmitter) UnsetVar(name string) {
	e.line("unset " + name)
}

func (e *shEmitter) SourceFile(path string) {
	e.line(". " + shQuote(path))
}

func (e *shEmitter) DedupPath(name string) {
	e.line(fmt.Sprintf(`if [ -n "${%s}" ]; then`, name))
	e.line(fmt.Sprintf(`    export %s="$(%s "${%s}")"`, name, e.cleanPathCommand(), name))
	e.line("fi")
}

func (e *shEmitter) Guard(g Guard) {
	refs := make([]string, 0, len(g.Names))
	for _, name := range g.Names {
		refs = append(refs, "${"+name+"}")
	}
	e.line(fmt.Sprintf(`if [ "%s" != %s ]; then`,
		strings.Join(refs, "::"), SingleQuote(strings.Join(g.Values, "::"))))
	e.line(fmt.Sprintf("    . %s %s", g.Entry, quoteAll(g.Args)))
	e.line("    return")
	e.line("fi")
}
