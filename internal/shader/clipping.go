package shader

// clipHighlight and clipShadow are the indicator colors RAW editors
// conventionally use for highlight/shadow clipping warnings.
var (
	clipHighlight = RGB{R: 1, G: 0, B: 0}
	clipShadow    = RGB{R: 0, G: 0, B: 1}
)

// ApplyClippingIndicator replaces the pixel with a solid warning color,
// when enabled (spec.md §4.2 step 15, "Clipping indication"): red if any
// channel is above 0.998, otherwise blue if any channel is below 0.002.
// It is a no-op when showClipping is false.
func ApplyClippingIndicator(pixel RGB, showClipping bool) RGB {
	if !showClipping {
		return pixel
	}
	if pixel.R > 0.998 || pixel.G > 0.998 || pixel.B > 0.998 {
		return clipHighlight
	}
	if pixel.R < 0.002 || pixel.G < 0.002 || pixel.B < 0.002 {
		return clipShadow
	}
	return pixel
}
