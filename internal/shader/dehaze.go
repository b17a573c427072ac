package shader

import "github.com/gogpu/rawshade/internal/color"

// ApplyDehaze removes (amount > 0) or adds (amount < 0) atmospheric
// haze using a dark-channel prior estimate, scaled by amount in
// [-100, 100] (spec.md §3 "Dehaze").
func ApplyDehaze(pixel RGB, darkChannel float32, amount float64) RGB {
	if amount == 0 {
		return pixel
	}
	c := color.ColorF32{R: float32(pixel.R), G: float32(pixel.G), B: float32(pixel.B), A: 1}
	out := color.Dehaze(c, darkChannel, float32(amount)/100)
	return RGB{R: float64(out.R), G: float64(out.G), B: float64(out.B)}
}
