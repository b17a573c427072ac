package rawshade

import (
	"fmt"

	"github.com/gogpu/rawshade/internal/color"
)

// ColorTexture is a floating-point RGBA texture: the input texture, one
// of the four blur buffers, or the output of a CPU-side dispatch before
// quantization to rgba8unorm (spec.md §6). Values are not assumed to be
// in any particular range; color space (linear vs sRGB-encoded) is a
// property of how the texture is used, tracked separately by the
// dispatcher's is_raw flag.
type ColorTexture struct {
	width, height int
	data          []color.ColorF32
}

// NewColorTexture creates a zeroed (transparent black) texture of the
// given dimensions.
func NewColorTexture(width, height int) *ColorTexture {
	return &ColorTexture{width: width, height: height, data: make([]color.ColorF32, width*height)}
}

// Width returns the texture width in pixels.
func (t *ColorTexture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *ColorTexture) Height() int { return t.height }

// SameDimensions reports whether t and other share width and height,
// the check the Dispatcher runs before binding (spec.md §7
// DimensionMismatch).
func (t *ColorTexture) SameDimensions(other *ColorTexture) bool {
	return t.width == other.width && t.height == other.height
}

// At returns the color at absolute pixel (x, y). Out-of-bounds reads
// clamp to the nearest edge pixel, matching a clamp-to-edge sampler.
func (t *ColorTexture) At(x, y int) color.ColorF32 {
	x = clampInt(x, 0, t.width-1)
	y = clampInt(y, 0, t.height-1)
	return t.data[y*t.width+x]
}

// Set stores the color at (x, y). Out-of-bounds writes are ignored.
func (t *ColorTexture) Set(x, y int, c color.ColorF32) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.data[y*t.width+x] = c
}

// Data returns the underlying row-major pixel data.
func (t *ColorTexture) Data() []color.ColorF32 { return t.data }

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BlurBuffers holds the four precomputed same-size blurred copies of a
// tile's input the shader core consumes as read-only local-contrast
// inputs (spec.md §2.2). Generating them is the external collaborator's
// job; the core only validates their dimensions against the input.
type BlurBuffers struct {
	Sharpness *ColorTexture
	Tonal     *ColorTexture
	Clarity   *ColorTexture
	Structure *ColorTexture
}

// Validate checks that all four blur buffers are present and match the
// input's dimensions, returning a MissingResource PipelineError for a nil
// buffer and a DimensionMismatch PipelineError for a size mismatch
// (spec.md §7).
func (b BlurBuffers) Validate(input *ColorTexture, op string) error {
	bufs := map[string]*ColorTexture{
		"sharpness": b.Sharpness,
		"tonal":     b.Tonal,
		"clarity":   b.Clarity,
		"structure": b.Structure,
	}
	for name, buf := range bufs {
		if buf == nil {
			return newPipelineError(ErrMissingResource, op, fmt.Errorf("blur buffer %q not bound", name))
		}
		if !buf.SameDimensions(input) {
			return newPipelineError(ErrDimensionMismatch, op, fmt.Errorf("blur buffer %q size mismatch", name))
		}
	}
	return nil
}

// FlareTexture is the host-provided flare source sampled at normalized
// UV coordinates by the creative "flare" operator (spec.md §4.2 step 7).
type FlareTexture struct {
	width, height int
	data          []color.ColorF32
}

// NewFlareTexture creates a zeroed flare texture of the given dimensions.
func NewFlareTexture(width, height int) *FlareTexture {
	return &FlareTexture{width: width, height: height, data: make([]color.ColorF32, width*height)}
}

// Set stores the color at (x, y).
func (f *FlareTexture) Set(x, y int, c color.ColorF32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.data[y*f.width+x] = c
}

// SampleBilinear samples the texture at normalized UV in [0,1]^2 with
// bilinear filtering and clamp-to-edge addressing.
func (f *FlareTexture) SampleBilinear(u, v float32) color.ColorF32 {
	if f.width == 0 || f.height == 0 {
		return color.ColorF32{}
	}
	fx := clamp01f32(u)*float32(f.width-1)
	fy := clamp01f32(v)*float32(f.height-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := clampInt(x0+1, 0, f.width-1), clampInt(y0+1, 0, f.height-1)
	tx, ty := fx-float32(x0), fy-float32(y0)

	c00 := f.data[y0*f.width+x0]
	c10 := f.data[y0*f.width+x1]
	c01 := f.data[y1*f.width+x0]
	c11 := f.data[y1*f.width+x1]

	top := color.LerpColorF32(c00, c10, tx)
	bottom := color.LerpColorF32(c01, c11, tx)
	return color.LerpColorF32(top, bottom, ty)
}

func clamp01f32(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// LUT3D re-exports internal/color's 3D LUT so hosts can build and bind
// one without importing the internal package directly.
type LUT3D = color.LUT3D

// NewIdentityLUT3D builds an identity LUT of the given side length.
func NewIdentityLUT3D(size int) *LUT3D { return color.NewIdentityLUT3D(size) }
