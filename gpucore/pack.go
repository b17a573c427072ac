package gpucore

import (
	"encoding/binary"
	"math"
)

// Bytes packs g into the std140-compatible layout raw_pipeline.wgsl's
// GlobalParamsGPU binding expects: 16 little-endian floats followed by
// 4 little-endian u32 flags.
func (g GlobalParamsGPU) Bytes() []byte {
	buf := make([]byte, 80)
	floats := []float32{
		g.Exposure, g.Contrast, g.Sharpness, g.Clarity,
		g.Structure, g.Temperature, g.Tint, g.Saturation,
		g.Vibrance, g.Shadows, g.Highlights, g.Whites,
		g.Blacks, g.Dehaze, g.VignetteAmount, g.GrainAmount,
	}
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(f))
	}
	flags := []uint32{g.IsRaw, g.TonemapperFilmic, g.HasLUT, g.ShowClipping}
	off := len(floats) * 4
	for i, v := range flags {
		binary.LittleEndian.PutUint32(buf[off+i*4:off+i*4+4], v)
	}
	return buf
}

// Bytes packs m into MaskParamsGPU's binding layout: 16 little-endian floats.
func (m MaskParamsGPU) Bytes() []byte {
	buf := make([]byte, 64)
	floats := []float32{
		m.Exposure, m.Contrast, m.Sharpness, m.Clarity,
		m.Structure, m.Temperature, m.Tint, m.Saturation,
		m.Vibrance, m.Shadows, m.Highlights, m.Whites,
		m.Blacks, m.Dehaze, m.Glow, m.Halation,
	}
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(f))
	}
	return buf
}

// PackMaskParamsArray packs the mask parameter array for upload to the storage buffer
// bound at group(2) binding(0).
func PackMaskParamsArray(masks [MaxMasks]MaskParamsGPU) []byte {
	buf := make([]byte, 0, 64*MaxMasks)
	for _, m := range masks {
		buf = append(buf, m.Bytes()...)
	}
	return buf
}

// Bytes packs c into CurveGPU's layout: two 16-float arrays of points,
// each grouped into vec4s, followed by the count and three padding u32s.
func (c CurveGPU) Bytes() []byte {
	buf := make([]byte, 16*4+16*4+16)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(c.PointsX[i]))
	}
	off := 16 * 4
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[off+i*4:off+i*4+4], math.Float32bits(c.PointsY[i]))
	}
	off += 16 * 4
	binary.LittleEndian.PutUint32(buf[off:off+4], c.Count)
	binary.LittleEndian.PutUint32(buf[off+4:off+8], c.Padding1)
	binary.LittleEndian.PutUint32(buf[off+8:off+12], c.Padding2)
	binary.LittleEndian.PutUint32(buf[off+12:off+16], c.Padding3)
	return buf
}

// Bytes packs m into Matrix3GPU's layout: three vec4-padded rows.
func (m Matrix3GPU) Bytes() []byte {
	buf := make([]byte, 48)
	rows := [][4]float32{m.Row0, m.Row1, m.Row2}
	for r, row := range rows {
		for c, v := range row {
			off := r*16 + c*4
			binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
		}
	}
	return buf
}

// Bytes packs t into TileDispatchConfig's layout: 8 little-endian u32s.
func (t TileDispatchConfig) Bytes() []byte {
	buf := make([]byte, 32)
	vals := []uint32{
		t.ViewportWidth, t.ViewportHeight, t.TileOffsetX, t.TileOffsetY,
		t.TileWidth, t.TileHeight, t.MaskCount, t.AtlasCols,
	}
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], v)
	}
	return buf
}
