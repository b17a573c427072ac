package shader

import "github.com/gogpu/rawshade/internal/color"

// Inputs bundles everything Shade needs to render one output texel: the
// absolute pixel coordinate, the source sampler (needed only for the
// chromatic-aberration resample), every auxiliary value the rest of the
// pipeline's operators read, and the adjustment parameters themselves.
// A tile dispatch (spec.md §4.2 "tile grid") builds one Inputs per texel
// from its bound textures; the CPU and GPU paths agree because they
// both reduce to this same set of scalar reads before Shade runs.
type Inputs struct {
	AbsX, AbsY int
	ImgW, ImgH int
	Alpha      float64

	Source Sampler

	SharpnessBlur, ClarityBlur, StructureBlur RGB
	BrightBlur                                RGB
	FlareSample                               RGB
	DarkChannel                               float32
	NRNeighbors                               []NoiseSample

	Global GlobalParams
	Curves PreparedCurves
	LUT    *color.LUT3D

	Masks       []MaskEntry
	MaskAuxes   []MaskAux
	MaskCurves  []PreparedCurves
}
