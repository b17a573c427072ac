package rawshade

// GradingZone is one of the three tonal zones (shadows, midtones,
// highlights) of a ColorGrading record (spec.md §3).
type GradingZone struct {
	Hue        float64 // [0,360)
	Saturation float64 // [0,1]
	Luminance  float64 // [-1,1]
}

// ColorGrading is the three-way color grading record (spec.md §3,
// "Color grading" sub-operator contract): shadows/midtones/highlights
// tint zones plus a blending feather and a shadow/highlight crossover
// balance.
type ColorGrading struct {
	Shadows   GradingZone
	Midtones  GradingZone
	Highlights GradingZone
	Blending  float64 // [0,1]
	Balance   float64 // [-1,1]
}
