package widget

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - accents and selection
	colorWhite = lipgloss.Color("255") // Bright white - slide bodies
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// Styles bundles the lipgloss styles used by the widget. DefaultStyles gives
// the stock look; callers can swap individual entries before starting the
// program.
type Styles struct {
	// Slide is the box around every slide.
	Slide lipgloss.Style

	// SelectedSlide overrides Slide for the selected slide.
	SelectedSlide lipgloss.Style

	// SlideTitle renders the slide's title line.
	SlideTitle lipgloss.Style

	// Title renders the deck title in the header.
	Title lipgloss.Style

	// Status renders the footer position indicator.
	Status lipgloss.Style

	// Arrow renders an enabled prev/next indicator.
	Arrow lipgloss.Style

	// ArrowDisabled renders a disabled prev/next indicator.
	ArrowDisabled lipgloss.Style
}

// DefaultStyles returns the stock widget styling.
func DefaultStyles() Styles {
	return Styles{
		Slide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			Foreground(colorWhite),
		SelectedSlide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Padding(0, 1).
			Foreground(colorWhite),
		SlideTitle:    lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		Title:         lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		Status:        lipgloss.NewStyle().Foreground(colorGray),
		Arrow:         lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
		ArrowDisabled: lipgloss.NewStyle().Foreground(colorDim),
	}
}
