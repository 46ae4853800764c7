package render

// DrawHUD writes the two pre-composed status lines over the bottom rows of
// the frame. Text composition (localization, tags) is the engine's job.
func DrawHUD(f *Frame, style *Style, line1, line2 string) {
	h := f.Height()
	if h < 2 {
		return
	}
	f.WriteString(0, h-2, line1, style.HUD)
	f.WriteString(0, h-1, line2, style.HUD)
}
