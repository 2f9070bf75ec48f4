// Package ui renders scrub's console report. The text is the same in every
// format; the terminal format only adds color.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Console lines
const (
	MsgHeader      = "Files marked for deletion:"
	MsgAborted     = "Aborted by user."
	MsgDeleted     = "Deleted: %s"
	MsgSkipped     = "Skipped (not found): %s"
	MsgFailed      = "Failed to delete %s: %v"
	MsgWouldDelete = "Would delete: %s"
	MsgError       = "Error: %v"
)

// Renderer writes report lines to an output stream
type Renderer struct {
	out    io.Writer
	styled bool

	header  lipgloss.Style
	deleted lipgloss.Style
	skipped lipgloss.Style
	failed  lipgloss.Style
	aborted lipgloss.Style
}

// NewRenderer creates a renderer for the given format. FormatAuto inspects
// the writer to decide.
func NewRenderer(format Format, out io.Writer) (*Renderer, error) {
	if format == FormatAuto {
		format = DetectFormat(out)
	}

	r := &Renderer{out: out}
	switch format {
	case FormatText:
		return r, nil
	case FormatTerminal:
		r.styled = true
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}

	// a forced terminal format on a non-terminal writer detects as Ascii
	profile := termenv.NewOutput(out).ColorProfile()
	if profile == termenv.Ascii {
		profile = termenv.ANSI
	}
	lr := lipgloss.NewRenderer(out)
	lr.SetColorProfile(profile)

	r.header = lr.NewStyle().Bold(true)
	r.deleted = lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00875F", Dark: "#5FD787"})
	r.skipped = lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#9E9E9E"})
	r.failed = lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}).Bold(true)
	r.aborted = lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD75F"})
	return r, nil
}

// Styled reports whether the renderer emits ANSI styling
func (r *Renderer) Styled() bool {
	return r.styled
}

// Header prints the header followed by one line per path
func (r *Renderer) Header(paths []string) {
	r.line(r.header, MsgHeader)
	for _, p := range paths {
		fmt.Fprintln(r.out, p)
	}
}

// Aborted prints the abort notice
func (r *Renderer) Aborted() {
	r.line(r.aborted, MsgAborted)
}

// Deleted reports a removed path
func (r *Renderer) Deleted(path string) {
	r.line(r.deleted, fmt.Sprintf(MsgDeleted, path))
}

// WouldDelete reports a path that a real run would remove
func (r *Renderer) WouldDelete(path string) {
	r.line(r.deleted, fmt.Sprintf(MsgWouldDelete, path))
}

// Skipped reports a path that did not exist
func (r *Renderer) Skipped(path string) {
	r.line(r.skipped, fmt.Sprintf(MsgSkipped, path))
}

// Failed reports a path that could not be removed and why
func (r *Renderer) Failed(path string, reason error) {
	r.line(r.failed, fmt.Sprintf(MsgFailed, path, reason))
}

// Error prints a command-level error
func (r *Renderer) Error(err error) {
	r.line(r.failed, fmt.Sprintf(MsgError, err))
}

func (r *Renderer) line(style lipgloss.Style, s string) {
	if r.styled {
		s = style.Render(s)
	}
	fmt.Fprintln(r.out, s)
}
