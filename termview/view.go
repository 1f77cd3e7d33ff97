package termview

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	borderCol = lipgloss.Color("#243141")
	accentFg  = lipgloss.Color("#7C3AED")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// Options control Render.
type Options struct {
	Columns   int    // width of the drawing, in cells; 0 means 80
	Threshold uint8  // see Braille; 0 means 1
	Title     string // optional header
}

// Render returns a framed braille view of `img`, ready to be printed.
func Render(img image.Image, opts Options) string {
	if opts.Columns <= 0 {
		opts.Columns = 80
	}
	if opts.Threshold == 0 {
		opts.Threshold = 1
	}
	lines := Braille(img, opts.Columns, opts.Threshold)
	b := img.Bounds()
	body := lipgloss.NewStyle().Width(maxWidth(lines)).Render(strings.Join(lines, "\n"))
	footer := dimStyle.Render(fmt.Sprintf("%dx%d", b.Dx(), b.Dy()))
	parts := []string{body, footer}
	if opts.Title != "" {
		parts = append([]string{titleStyle.Render(opts.Title)}, parts...)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Plain returns the braille drawing without styling, trailing
// spaces removed.
func Plain(img image.Image, columns int) string {
	return strings.Join(trimRight(Braille(img, columns, 1)), "\n")
}

func maxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return w
}
