package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles used in rendered reports. They are bound to a renderer so colour is
// dropped automatically on writers that are not terminals.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Name   lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
}

// NewRenderer returns a renderer for w. plain forces the ASCII profile.
func NewRenderer(w io.Writer, plain bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles builds the report styles on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true).
			Padding(0, 1),
		Cell: r.NewStyle().Padding(0, 1),
		Name: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true).
			Padding(0, 1),
		Good: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Warn: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Border: r.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}
