package rawshade

import (
	"fmt"

	"github.com/gogpu/rawshade/internal/color"
	"github.com/gogpu/rawshade/internal/parallel"
	"github.com/gogpu/rawshade/internal/shader"
)

// TileInputs is the full set of host-owned, read-only resources bound
// for one dispatch: the input texture, the four local-contrast blur
// buffers, up to MaxMasks influence textures, the optional 3D LUT and
// flare texture, and the parameter uniform (spec.md §2, §3). TileOffsetX
// and TileOffsetY in Uniform locate this tile's local (0,0) within the
// full image for center-weighted operators (vignette, grain, CA,
// flare).
type TileInputs struct {
	Input *ColorTexture
	Blurs BlurBuffers
	Masks [MaxMasks]*ScalarTexture

	LUT   *LUT3D
	Flare *FlareTexture

	Uniform PipelineUniform

	// ImgWidth, ImgHeight are the full image's dimensions, needed by
	// center-weighted operators even when Input covers only a tile.
	ImgWidth, ImgHeight int
}

// dispatchState is the Dispatcher's internal state machine (spec.md
// §4.2 "State machine"): idle -> bound -> dispatched -> idle.
type dispatchState int

const (
	stateIdle dispatchState = iota
	stateBound
	stateDispatched
)

// Dispatcher drives one dispatch end to end: validating bound
// resources, trying the registered GPU accelerator, and transparently
// falling back to the CPU reference kernel in internal/shader.
type Dispatcher struct {
	opts  dispatcherOptions
	pool  *parallel.WorkerPool
	state dispatchState
}

// NewDispatcher creates a Dispatcher configured by opts.
func NewDispatcher(opts ...PipelineOption) *Dispatcher {
	o := defaultDispatcherOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		SetLogger(o.logger)
	}
	return &Dispatcher{
		opts:  o,
		pool:  parallel.NewWorkerPool(0),
		state: stateIdle,
	}
}

// Close releases the Dispatcher's worker pool.
func (d *Dispatcher) Close() {
	d.pool.Close()
}

// Dispatch validates ti and renders it into a new ShadeTarget, trying
// the configured accelerator first (unless WithCPUFallback forced CPU)
// and falling back to the CPU reference kernel on ErrFallbackToCPU or
// any GPU error (spec.md §4.2 "State machine", §7 "Failure semantics").
func (d *Dispatcher) Dispatch(ti TileInputs) (*ShadeTarget, error) {
	const op = "Dispatcher.Dispatch"
	if d.state != stateIdle {
		return nil, newPipelineError(ErrDeviceLost, op, fmt.Errorf("dispatcher not idle"))
	}
	d.state = stateBound

	if err := d.validate(ti); err != nil {
		d.state = stateIdle
		return nil, err
	}

	d.state = stateDispatched
	defer func() { d.state = stateIdle }()

	target := &ShadeTarget{
		Data:   make([]uint8, ti.Input.Width()*ti.Input.Height()*4),
		Width:  ti.Input.Width(),
		Height: ti.Input.Height(),
		Stride: ti.Input.Width() * 4,
	}

	accel := d.opts.accelerator
	if accel == nil {
		accel = Accelerator()
	}
	if !d.opts.useCPUFallback && accel != nil && accel.CanAccelerate(ti.Input.Width(), ti.Input.Height()) {
		if err := accel.Dispatch(target, ti); err == nil {
			return target, nil
		} else if err != ErrFallbackToCPU {
			Logger().Warn("gpu dispatch failed, falling back to cpu", "error", err)
		}
	}

	d.shadeCPU(target, ti)
	return target, nil
}

func (d *Dispatcher) validate(ti TileInputs) error {
	const op = "Dispatcher.Dispatch"
	if ti.Input == nil {
		return newPipelineError(ErrMissingResource, op, fmt.Errorf("input texture not bound"))
	}
	if err := ti.Uniform.Validate(); err != nil {
		return err
	}
	if err := ti.Blurs.Validate(ti.Input, op); err != nil {
		return err
	}
	for i := 0; i < ti.Uniform.MaskCount; i++ {
		m := ti.Masks[i]
		if m == nil {
			return newPipelineError(ErrMissingResource, op, fmt.Errorf("mask %d not bound", i))
		}
		if m.Width() != ti.Input.Width() || m.Height() != ti.Input.Height() {
			return newPipelineError(ErrDimensionMismatch, op, fmt.Errorf("mask %d size mismatch", i))
		}
	}
	if ti.Uniform.Global.HasLUT && ti.LUT == nil {
		return newPipelineError(ErrMissingResource, op, fmt.Errorf("lut not bound"))
	}
	if ti.Uniform.Global.Flare > 0 && ti.Flare == nil {
		return newPipelineError(ErrMissingResource, op, fmt.Errorf("flare texture not bound"))
	}
	return nil
}

// shadeCPU runs the CPU reference kernel over every texel of the tile,
// distributing rows across the worker pool.
func (d *Dispatcher) shadeCPU(target *ShadeTarget, ti TileInputs) {
	w, h := ti.Input.Width(), ti.Input.Height()
	src := &colorTextureSampler{t: ti.Input}

	global := convertGlobalParams(ti.Uniform.Global)
	curves := shader.PreparedCurves{
		Luma:  shader.PrepareCurve(convertCurve(ti.Uniform.Global.CurveLuma)),
		Red:   shader.PrepareCurve(convertCurve(ti.Uniform.Global.CurveRed)),
		Green: shader.PrepareCurve(convertCurve(ti.Uniform.Global.CurveGreen)),
		Blue:  shader.PrepareCurve(convertCurve(ti.Uniform.Global.CurveBlue)),
	}

	masks := make([]shader.MaskEntry, ti.Uniform.MaskCount)
	maskCurves := make([]shader.PreparedCurves, ti.Uniform.MaskCount)
	for i := 0; i < ti.Uniform.MaskCount; i++ {
		mp := convertMaskParams(ti.Uniform.Masks[i])
		tex := ti.Masks[i]
		masks[i] = shader.MaskEntry{
			Params: mp,
			Influence: func(absX, absY int) float32 {
				return tex.At(absX, absY)
			},
		}
		mc := ti.Uniform.Masks[i]
		maskCurves[i] = shader.PreparedCurves{
			Luma:  shader.PrepareCurve(convertCurve(mc.CurveLuma)),
			Red:   shader.PrepareCurve(convertCurve(mc.CurveRed)),
			Green: shader.PrepareCurve(convertCurve(mc.CurveGreen)),
			Blue:  shader.PrepareCurve(convertCurve(mc.CurveBlue)),
		}
	}

	work := make([]func(), h)
	for row := 0; row < h; row++ {
		y := row
		work[row] = func() {
			for x := 0; x < w; x++ {
				absX := x + int(ti.Uniform.TileOffsetX)
				absY := y + int(ti.Uniform.TileOffsetY)

				in := shader.Inputs{
					AbsX: absX, AbsY: absY,
					ImgW: ti.ImgWidth, ImgH: ti.ImgHeight,
					Alpha: float64(ti.Input.At(x, y).A),
					Source: src,

					SharpnessBlur: colorF32ToRGB(ti.Blurs.Sharpness.At(x, y)),
					ClarityBlur:   colorF32ToRGB(ti.Blurs.Clarity.At(x, y)),
					StructureBlur: colorF32ToRGB(ti.Blurs.Structure.At(x, y)),
					BrightBlur:    colorF32ToRGB(ti.Blurs.Tonal.At(x, y)),
					FlareSample:   flareSample(ti.Flare, x, y, w, h),
					DarkChannel:   localDarkChannel(ti.Input, x, y),
					NRNeighbors:   neighborSamples(ti.Input, x, y),

					Global: global,
					Curves: curves,
					LUT:    ti.LUT,

					Masks:      masks,
					MaskAuxes:  maskAuxes(ti, x, y, ti.Uniform.MaskCount),
					MaskCurves: maskCurves,
				}

				r, g, b, a := shader.Shade(in)
				off := y*target.Stride + x*4
				target.Data[off+0] = r
				target.Data[off+1] = g
				target.Data[off+2] = b
				target.Data[off+3] = a
			}
		}
	}
	d.pool.ExecuteAll(work)
}

func maskAuxes(ti TileInputs, x, y, count int) []shader.MaskAux {
	auxes := make([]shader.MaskAux, count)
	for i := 0; i < count; i++ {
		auxes[i] = shader.MaskAux{
			SharpnessBlur: colorF32ToRGB(ti.Blurs.Sharpness.At(x, y)),
			ClarityBlur:   colorF32ToRGB(ti.Blurs.Clarity.At(x, y)),
			StructureBlur: colorF32ToRGB(ti.Blurs.Structure.At(x, y)),
			BrightBlur:    colorF32ToRGB(ti.Blurs.Tonal.At(x, y)),
			FlareSample:   flareSample(ti.Flare, x, y, ti.Input.Width(), ti.Input.Height()),
			DarkChannel:   localDarkChannel(ti.Input, x, y),
		}
	}
	return auxes
}

func flareSample(f *FlareTexture, x, y, w, h int) shader.RGB {
	if f == nil || w == 0 || h == 0 {
		return shader.RGB{}
	}
	c := f.SampleBilinear(float32(x)/float32(w), float32(y)/float32(h))
	return colorF32ToRGB(c)
}

func localDarkChannel(t *ColorTexture, x, y int) float32 {
	samples := make([]color.ColorF32, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			samples = append(samples, t.At(x+dx, y+dy))
		}
	}
	return color.DarkChannelWindow(samples)
}

var gaussianWeights3x3 = [3][3]float64{
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
	{2.0 / 16, 4.0 / 16, 2.0 / 16},
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
}

func neighborSamples(t *ColorTexture, x, y int) []shader.NoiseSample {
	samples := make([]shader.NoiseSample, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := t.At(x+dx, y+dy)
			samples = append(samples, shader.NoiseSample{
				Color:  colorF32ToRGB(c),
				Weight: gaussianWeights3x3[dy+1][dx+1],
			})
		}
	}
	return samples
}

func colorF32ToRGB(c color.ColorF32) shader.RGB {
	return shader.RGB{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// colorTextureSampler adapts a ColorTexture to internal/shader.Sampler
// with bilinear filtering, the only place a pipeline stage resamples at
// non-integer coordinates (the chromatic-aberration pass).
type colorTextureSampler struct {
	t *ColorTexture
}

func (s *colorTextureSampler) Sample(x, y float64) shader.RGB {
	x0, y0 := int(x), int(y)
	fx, fy := x-float64(x0), y-float64(y0)

	c00 := s.t.At(x0, y0)
	c10 := s.t.At(x0+1, y0)
	c01 := s.t.At(x0, y0+1)
	c11 := s.t.At(x0+1, y0+1)

	top := color.LerpColorF32(c00, c10, float32(fx))
	bottom := color.LerpColorF32(c01, c11, float32(fx))
	return colorF32ToRGB(color.LerpColorF32(top, bottom, float32(fy)))
}

func (s *colorTextureSampler) Width() int  { return s.t.Width() }
func (s *colorTextureSampler) Height() int { return s.t.Height() }

// convertCurve maps a ToneCurve to its internal/shader mirror.
func convertCurve(c ToneCurve) shader.Curve {
	out := shader.Curve{Count: c.Count}
	for i := 0; i < c.Count; i++ {
		out.PointsX[i] = c.Points[i].X
		out.PointsY[i] = c.Points[i].Y
	}
	return out
}

func convertMatrix3(m Matrix3) shader.Matrix3 {
	return shader.Matrix3(m)
}

func convertGradingZone(z GradingZone) shader.GradingZone {
	return shader.GradingZone{
		Hue:        z.Hue,
		Saturation: z.Saturation * percentScale,
		Luminance:  z.Luminance * percentScale,
	}
}

func convertGrading(g ColorGrading) shader.Grading {
	return shader.Grading{
		Shadows:    convertGradingZone(g.Shadows),
		Midtones:   convertGradingZone(g.Midtones),
		Highlights: convertGradingZone(g.Highlights),
		Blending:   g.Blending * 100,
		Balance:    g.Balance * 100,
	}
}

func convertPrimary(p PrimaryAdjustment) shader.PrimaryAdjustment {
	return shader.PrimaryAdjustment{Hue: p.Hue, Saturation: p.Saturation}
}

func convertCalibration(c ColorCalibration) shader.Calibration {
	return shader.Calibration{
		ShadowTint: c.ShadowTint,
		Red:        convertPrimary(c.Red),
		Green:      convertPrimary(c.Green),
		Blue:       convertPrimary(c.Blue),
	}
}

// hslHueRangeDeg is the maximum hue rotation a single HSL band slider
// can apply, matching the conventional +-30 degree range of a hue wheel.
const hslHueRangeDeg = 30

func convertHSL(h HSLAdjustments) [8]shader.HSLBand {
	var out [8]shader.HSLBand
	for i := 0; i < 8; i++ {
		out[i] = shader.HSLBand{
			Hue:        h[i].Hue * hslHueRangeDeg,
			Saturation: h[i].Saturation * percentScale,
			Luminance:  h[i].Luminance * percentScale,
		}
	}
	return out
}

// percentScale rescales rawshade's normalized [-1,1]/[0,1] adjustment
// fields into the [-100,100]-ish "amount" convention internal/shader's
// operators are written against.
const percentScale = 100

func convertGlobalParams(g GlobalAdjustments) shader.GlobalParams {
	return shader.GlobalParams{
		Exposure:   g.Exposure,
		Brightness: g.Brightness * percentScale,
		Contrast:   g.Contrast * percentScale,
		Highlights: g.Highlights * percentScale,
		Shadows:    g.Shadows * percentScale,
		Whites:     g.Whites * percentScale,
		Blacks:     g.Blacks * percentScale,

		Temperature: g.Temperature * percentScale,
		Tint:        g.Tint * percentScale,

		Saturation: g.Saturation * percentScale,
		Vibrance:   g.Vibrance * percentScale,

		Sharpness: g.Sharpness * percentScale,
		Clarity:   g.Clarity * percentScale,
		Structure: g.Structure * percentScale,
		Centre:    g.Centre * percentScale,

		LumaNR:  g.LumaNR * percentScale,
		ColorNR: g.ColorNR * percentScale,

		Dehaze: g.Dehaze * percentScale,

		VignetteAmount:    g.Vignette.Amount * percentScale,
		VignetteMidpoint:  g.Vignette.Midpoint * percentScale,
		VignetteRoundness: g.Vignette.Roundness * percentScale,
		VignetteFeather:   g.Vignette.Feather * percentScale,

		GrainAmount:    g.Grain.Amount * percentScale,
		GrainSize:      g.Grain.Size,
		GrainRoughness: g.Grain.Roughness * percentScale,

		CARedCyan:    g.ChromaticAberration.RedCyan,
		CABlueYellow: g.ChromaticAberration.BlueYellow,

		TonemapperFilmic: g.TonemapperMode == TonemapperFilmic,
		IsRaw:            g.IsRaw,
		ShowClipping:     g.ShowClipping,
		HasLUT:           g.HasLUT,
		LUTIntensity:     g.LUTIntensity * percentScale,

		Grading:     convertGrading(g.ColorGrading),
		Calibration: convertCalibration(g.ColorCalibration),

		Glow:     g.Glow * percentScale,
		Halation: g.Halation * percentScale,
		Flare:    g.Flare * percentScale,

		HSL: convertHSL(g.HSL),

		CurveLuma:  convertCurve(g.CurveLuma),
		CurveRed:   convertCurve(g.CurveRed),
		CurveGreen: convertCurve(g.CurveGreen),
		CurveBlue:  convertCurve(g.CurveBlue),

		AgXMatrix:        convertMatrix3(g.AgXMatrix),
		AgXMatrixInverse: convertMatrix3(g.AgXMatrixInverse),
	}
}

func convertMaskParams(m MaskAdjustments) shader.MaskParams {
	return shader.MaskParams{
		Exposure:   m.Exposure,
		Brightness: m.Brightness * percentScale,
		Contrast:   m.Contrast * percentScale,
		Highlights: m.Highlights * percentScale,
		Shadows:    m.Shadows * percentScale,
		Whites:     m.Whites * percentScale,
		Blacks:     m.Blacks * percentScale,

		Temperature: m.Temperature * percentScale,
		Tint:        m.Tint * percentScale,

		Saturation: m.Saturation * percentScale,
		Vibrance:   m.Vibrance * percentScale,

		Sharpness: m.Sharpness * percentScale,
		Clarity:   m.Clarity * percentScale,
		Structure: m.Structure * percentScale,

		Dehaze: m.Dehaze * percentScale,

		Grading: convertGrading(m.ColorGrading),

		Glow:     m.Glow * percentScale,
		Halation: m.Halation * percentScale,
		Flare:    m.Flare * percentScale,

		HSL: convertHSL(m.HSL),

		CurveLuma:  convertCurve(m.CurveLuma),
		CurveRed:   convertCurve(m.CurveRed),
		CurveGreen: convertCurve(m.CurveGreen),
		CurveBlue:  convertCurve(m.CurveBlue),
	}
}
