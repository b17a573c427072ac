// Package shader implements the CPU reference kernel for the per-pixel
// shading pipeline: the ordered sequence of chromatic aberration
// correction, local contrast, exposure, the global and per-mask
// adjustment stacks, tone-mapping, curves, LUT application, grain,
// vignette, clipping indication, and dither.
//
// Shade is a pure function of its inputs, mirroring the GPU kernel the
// same parameters drive in gpucore/shaders/raw_pipeline.wgsl (minus the
// LUT and chromatic-aberration stages, which stay CPU-only): the CPU
// path is the one both NativeAccelerator and the dispatcher's own
// fallback agree against, since internal/parallel dispatches this
// function whenever no accelerator can take the tile.
package shader

// Curve mirrors rawshade.ToneCurve's shape without importing the root
// package (the root package imports this one).
type Curve struct {
	PointsX, PointsY [16]float64
	Count            int
}

// IsIdentity reports whether the curve is the two-point identity.
func (c Curve) IsIdentity() bool {
	return c.Count == 2 && c.PointsX[0] == 0 && c.PointsY[0] == 0 &&
		c.PointsX[1] == 255 && c.PointsY[1] == 255
}

// Matrix3 mirrors rawshade.Matrix3.
type Matrix3 [3][3]float64

func (m Matrix3) mul(r, g, b float64) (float64, float64, float64) {
	return m[0][0]*r + m[0][1]*g + m[0][2]*b,
		m[1][0]*r + m[1][1]*g + m[1][2]*b,
		m[2][0]*r + m[2][1]*g + m[2][2]*b
}

// GradingZone mirrors rawshade.GradingZone.
type GradingZone struct {
	Hue, Saturation, Luminance float64
}

// Grading mirrors rawshade.ColorGrading.
type Grading struct {
	Shadows, Midtones, Highlights GradingZone
	Blending, Balance             float64
}

// PrimaryAdjustment mirrors rawshade.PrimaryAdjustment.
type PrimaryAdjustment struct {
	Hue, Saturation float64
}

// Calibration mirrors rawshade.ColorCalibration.
type Calibration struct {
	ShadowTint         float64
	Red, Green, Blue   PrimaryAdjustment
}

// HSLBand mirrors rawshade.HSLBand.
type HSLBand struct {
	Hue, Saturation, Luminance float64
}

// HSLBandCenter and HSLBandWidth match rawshade.HSLBandCenter/Width.
var (
	HSLBandCenter = [8]float64{358, 25, 60, 115, 180, 225, 280, 330}
	HSLBandWidth  = [8]float64{35, 45, 40, 90, 60, 60, 55, 50}
)

// GlobalParams mirrors the mask-applicable and global-only fields of
// rawshade.GlobalAdjustments.
type GlobalParams struct {
	Exposure, Brightness, Contrast            float64
	Highlights, Shadows, Whites, Blacks       float64
	Temperature, Tint                         float64
	Saturation, Vibrance                      float64
	Sharpness, Clarity, Structure, Centre     float64
	LumaNR, ColorNR                           float64
	Dehaze                                    float64
	VignetteAmount, VignetteMidpoint          float64
	VignetteRoundness, VignetteFeather        float64
	GrainAmount, GrainSize, GrainRoughness    float64
	CARedCyan, CABlueYellow                   float64
	TonemapperFilmic                          bool
	IsRaw, ShowClipping, HasLUT               bool
	LUTIntensity                              float64
	Grading                                   Grading
	Calibration                               Calibration
	Glow, Halation, Flare                     float64
	HSL                                       [8]HSLBand
	CurveLuma, CurveRed, CurveGreen, CurveBlue Curve
	AgXMatrix, AgXMatrixInverse               Matrix3
}

// MaskParams mirrors rawshade.MaskAdjustments.
type MaskParams struct {
	Exposure, Brightness, Contrast      float64
	Highlights, Shadows, Whites, Blacks float64
	Temperature, Tint                   float64
	Saturation, Vibrance                float64
	Sharpness, Clarity, Structure       float64
	Dehaze                              float64
	Grading                             Grading
	Glow, Halation, Flare               float64
	HSL                                 [8]HSLBand
	CurveLuma, CurveRed, CurveGreen, CurveBlue Curve
}

// MaskEntry pairs a mask's parameters with its influence sampler.
type MaskEntry struct {
	Params    MaskParams
	Influence func(absX, absY int) float32
}
