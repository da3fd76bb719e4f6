package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds lipgloss styles bound to a renderer for one output stream,
// so colour is only emitted when that stream supports it.
type styles struct {
	header lipgloss.Style
	pass   lipgloss.Style
	fail   lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true),
		pass:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e")),
		fail:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#71717a")),
	}
}

// badge renders a PASS/FAIL marker.
func (s styles) badge(ok bool) string {
	if ok {
		return s.pass.Render("PASS")
	}
	return s.fail.Render("FAIL")
}
