package style

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Printer writes styled diagnostics. Styling is dropped when the
// destination is not a terminal or NO_COLOR is set.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer

	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	mutedStyle   lipgloss.Style
}

// NewPrinter creates a printer for w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	if !IsTerminal(w) || os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:            w,
		r:            r,
		errorStyle:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		warningStyle: r.NewStyle().Foreground(WarningColor).Bold(true),
		mutedStyle:   r.NewStyle().Foreground(MutedColor),
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Error writes msg as an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, p.errorStyle.Render(msg))
}

// Warning writes "warning: msg".
func (p *Printer) Warning(msg string) {
	fmt.Fprintln(p.w, p.warningStyle.Render("warning:")+" "+msg)
}

// Hint writes a muted informational line.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.w, p.mutedStyle.Render(msg))
}
