// Package tui renders list state for the interactive demo.
package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/latticekit/lattice/pkg/domain"
)

// Renderer writes a colored view of a list snapshot.
type Renderer struct {
	out     io.Writer
	profile termenv.Profile
}

// NewRenderer creates a renderer detecting the terminal's color profile.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, profile: termenv.ColorProfile()}
}

// NewPlainRenderer creates a renderer without color output, for tests and
// non-TTY destinations.
func NewPlainRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, profile: termenv.Ascii}
}

// Render writes the visible items and a summary footer.
func (r *Renderer) Render(list domain.List) {
	visible := list.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(r.out, r.dim("  (no items)"))
	}
	for _, item := range visible {
		check := "[ ]"
		title := item.Title
		if item.Completed {
			check = "[x]"
			title = r.dim(title)
		}
		fmt.Fprintf(r.out, "  %s %2d  %s\n", check, item.ID, title)
	}

	fmt.Fprintf(r.out, "%s\n", r.dim(fmt.Sprintf("  %d active / %d total, filter: %s",
		list.ActiveCount(), len(list.Items), filterName(list.Filter))))
}

func (r *Renderer) dim(s string) string {
	if r.profile == termenv.Ascii {
		return s
	}
	return termenv.String(s).Foreground(r.profile.Color("#6b7280")).String()
}

func filterName(f domain.Filter) string {
	if f == "" {
		return string(domain.FilterAll)
	}
	return string(f)
}
