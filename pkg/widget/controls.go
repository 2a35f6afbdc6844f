package widget

// indicator is a prev/next arrow wired into the engine as a control. The
// engine pushes enabled state through SetDisabled; the widget only renders
// what it was told.
type indicator struct {
	glyph    string
	disabled bool
}

// SetDisabled implements carousel.Control.
func (ind *indicator) SetDisabled(disabled bool) {
	ind.disabled = disabled
}

func (ind *indicator) render(s Styles) string {
	if ind.disabled {
		return s.ArrowDisabled.Render(ind.glyph)
	}
	return s.Arrow.Render(ind.glyph)
}
