package rawshade

// HSLBandCount is the number of fixed hue bands in the HSL panel.
const HSLBandCount = 8

// HSLBand is one band of the eight-band HSL panel (spec.md §3): hue,
// saturation, and luminance offsets, each in [-1,1].
type HSLBand struct {
	Hue        float64
	Saturation float64
	Luminance  float64
}

// HSLBandCenter and HSLBandWidth give the fixed hue center (degrees) and
// falloff width (degrees) for each of the eight bands, in the order
// red, orange, yellow, green, aqua, blue, purple, magenta
// (spec.md §4.2, HSL panel sub-operator contract).
var (
	HSLBandCenter = [HSLBandCount]float64{358, 25, 60, 115, 180, 225, 280, 330}
	HSLBandWidth  = [HSLBandCount]float64{35, 45, 40, 90, 60, 60, 55, 50}
)

// HSLAdjustments is the fixed-layout record of all eight HSL bands.
type HSLAdjustments [HSLBandCount]HSLBand
