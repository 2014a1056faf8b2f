package shell

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/types"
)

// cshEmitter writes C shell family syntax. csh has no return from a
// sourced file, so a guard opens an else branch that holds the rest of
// the script; Render closes every open branch.
type cshEmitter struct {
	script
	depth int
}

// cshQuote single-quotes s and escapes ! against history substitution.
func cshQuote(s string) string {
	return strings.ReplaceAll(SingleQuote(s), "!", `\!`)
}

func (e *cshEmitter) Dialect() string { return DialectCsh }

func (e *cshEmitter) Echo(msg string) {
	if !e.opts.Verbose {
		return
	}
	e.line(fmt.Sprintf("echo %s > /dev/stderr", cshQuote(fmt.Sprintf("[%d] %s", e.opts.PID, msg))))
}

func (e *cshEmitter) ExportVar(name, value string) {
	e.line(fmt.Sprintf("setenv %s %s", name, cshQuote(value)))
}

func (e *cshEmitter) ExportPath(name string, mode types.PendMode, value string) {
	quoted := cshQuote(value)
	var combined string
	if mode == types.Append {
		combined = fmt.Sprintf(`"${%s}"%s`, name, cshQuote(":"+value))
	} else {
		combined = fmt.Sprintf(`%s"${%s}"`, cshQuote(value+":"), name)
	}
	e.line(fmt.Sprintf("if ( $?%s == 0 ) then", name))
	e.line(fmt.Sprintf("    setenv %s %s", name, quoted))
	e.line("else")
	e.line(fmt.Sprintf(`    if ( "${%s}" != "" ) then`, name))
	e.line(fmt.Sprintf("        setenv %s %s", name, combined))
	e.line("    else")
	e.line(fmt.Sprintf("        setenv %s %s", name, quoted))
	e.line("    endif")
	e.line("endif")
}

func (e *cshEmitter) UnsetVar(name string) {
	e.line("unsetenv " + name)
}

func (e *cshEmitter) SourceFile(path string) {
	e.line("source " + cshQuote(path))
}

func (e *cshEmitter) DedupPath(name string) {
	e.line(fmt.Sprintf("if ( $?%s == 1 ) then", name))
	e.line(fmt.Sprintf("    setenv %s \"`%s ${%s}`\"", name, e.cleanPathCommand(), name))
	e.line("endif")
}

func (e *cshEmitter) Guard(g Guard) {
	refs := make([]string, 0, len(g.Names))
	for _, name := range g.Names {
		refs = append(refs, "`printenv "+name+"`")
	}
	e.line(fmt.Sprintf(`if ( "%s" != %s ) then`,
		strings.Join(refs, "::"), cshQuote(strings.Join(g.Values, "::"))))
	e.line(fmt.Sprintf("    source %s %s", g.Entry, cshQuoteAll(g.Args)))
	e.line("else")
	e.depth++
}

func cshQuoteAll(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		quoted = append(quoted, cshQuote(a))
	}
	return strings.Join(quoted, " ")
}

func (e *cshEmitter) Render() string {
	out := e.script.Render()
	return out + strings.Repeat("endif\n", e.depth)
}
