package native

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/rawshade"
	"github.com/gogpu/rawshade/gpucore"
)

// percentScale rescales rawshade's normalized [-1,1]/[0,1] adjustment
// fields into the same [-100,100]-ish convention internal/shader's
// operators use, so the GPU and CPU paths agree on parameter meaning
// (see dispatcher.go's convertGlobalParams).
const percentScale = 100

func colorTextureBytes(t *rawshade.ColorTexture) []byte {
	data := t.Data()
	buf := make([]byte, len(data)*16)
	for i, c := range data {
		off := i * 16
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(c.R))
		binary.LittleEndian.PutUint32(buf[off+4:off+8], math.Float32bits(c.G))
		binary.LittleEndian.PutUint32(buf[off+8:off+12], math.Float32bits(c.B))
		binary.LittleEndian.PutUint32(buf[off+12:off+16], math.Float32bits(c.A))
	}
	return buf
}

func scalarTextureBytes(t *rawshade.ScalarTexture) []byte {
	data := t.Data()
	buf := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(v))
	}
	return buf
}

func convertCurveGPU(c rawshade.ToneCurve) gpucore.CurveGPU {
	var out gpucore.CurveGPU
	out.Count = uint32(c.Count)
	for i := 0; i < c.Count; i++ {
		out.PointsX[i] = float32(c.Points[i].X)
		out.PointsY[i] = float32(c.Points[i].Y)
	}
	return out
}

func convertMatrix3GPU(m rawshade.Matrix3) gpucore.Matrix3GPU {
	return gpucore.Matrix3GPU{
		Row0: [4]float32{float32(m[0][0]), float32(m[0][1]), float32(m[0][2]), 0},
		Row1: [4]float32{float32(m[1][0]), float32(m[1][1]), float32(m[1][2]), 0},
		Row2: [4]float32{float32(m[2][0]), float32(m[2][1]), float32(m[2][2]), 0},
	}
}

// convertGlobalParamsGPU narrows a GlobalAdjustments record to the scalar
// subset GlobalParamsGPU carries. Brightness, Centre, LumaNR/ColorNR,
// chromatic aberration, color grading/calibration, HSL, and the creative
// glow/halation/flare/LUT-intensity fields have no GPU-side counterpart
// yet (see gpucore.GlobalParamsGPU's doc comment); a tile whose uniform
// uses any of those is routed to the CPU path by NativeAccelerator before
// this conversion ever runs.
func convertGlobalParamsGPU(g rawshade.GlobalAdjustments) gpucore.GlobalParamsGPU {
	out := gpucore.GlobalParamsGPU{
		Exposure:       float32(g.Exposure),
		Contrast:       float32(g.Contrast) * percentScale,
		Sharpness:      float32(g.Sharpness) * percentScale,
		Clarity:        float32(g.Clarity) * percentScale,
		Structure:      float32(g.Structure) * percentScale,
		Temperature:    float32(g.Temperature) * percentScale,
		Tint:           float32(g.Tint) * percentScale,
		Saturation:     float32(g.Saturation) * percentScale,
		Vibrance:       float32(g.Vibrance) * percentScale,
		Shadows:        float32(g.Shadows) * percentScale,
		Highlights:     float32(g.Highlights) * percentScale,
		Whites:         float32(g.Whites) * percentScale,
		Blacks:         float32(g.Blacks) * percentScale,
		Dehaze:         float32(g.Dehaze) * percentScale,
		VignetteAmount: float32(g.Vignette.Amount) * percentScale,
		GrainAmount:    float32(g.Grain.Amount) * percentScale,
	}
	if g.IsRaw {
		out.IsRaw = 1
	}
	if g.TonemapperMode == rawshade.TonemapperFilmic {
		out.TonemapperFilmic = 1
	}
	if g.HasLUT {
		out.HasLUT = 1
	}
	if g.ShowClipping {
		out.ShowClipping = 1
	}
	return out
}

func convertMaskParamsGPU(m rawshade.MaskAdjustments) gpucore.MaskParamsGPU {
	return gpucore.MaskParamsGPU{
		Exposure:    float32(m.Exposure),
		Contrast:    float32(m.Contrast) * percentScale,
		Sharpness:   float32(m.Sharpness) * percentScale,
		Clarity:     float32(m.Clarity) * percentScale,
		Structure:   float32(m.Structure) * percentScale,
		Temperature: float32(m.Temperature) * percentScale,
		Tint:        float32(m.Tint) * percentScale,
		Saturation:  float32(m.Saturation) * percentScale,
		Vibrance:    float32(m.Vibrance) * percentScale,
		Shadows:     float32(m.Shadows) * percentScale,
		Highlights:  float32(m.Highlights) * percentScale,
		Whites:      float32(m.Whites) * percentScale,
		Blacks:      float32(m.Blacks) * percentScale,
		Dehaze:      float32(m.Dehaze) * percentScale,
		Glow:        float32(m.Glow) * percentScale,
		Halation:    float32(m.Halation) * percentScale,
	}
}
