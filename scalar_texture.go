package rawshade

import "image"

// ScalarTexture is a single-channel floating texture giving per-pixel
// strength in [0,1] (spec.md §2.3, "Mask Influence Textures"). The
// pipeline treats it as a read-only, host-owned input: geometry to
// influence rasterization (radial, linear, brush, AI subject/sky,
// luminance, color range, quick-eraser) is the external collaborator's
// job (spec.md §9).
type ScalarTexture struct {
	width  int
	height int
	data   []float32
}

// NewScalarTexture creates a new scalar texture with the given
// dimensions, initialized to 0 (no influence) everywhere.
func NewScalarTexture(width, height int) *ScalarTexture {
	return &ScalarTexture{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// NewScalarTextureFromAlpha builds a mask influence texture from an
// image's alpha channel, normalized from [0,65535] to [0,1].
func NewScalarTextureFromAlpha(img image.Image) *ScalarTexture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tex := NewScalarTexture(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			tex.data[y*w+x] = float32(a) / 65535
		}
	}

	return tex
}

// Bounds returns the texture dimensions as an image.Rectangle.
func (t *ScalarTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.width, t.height)
}

// Width returns the texture width.
func (t *ScalarTexture) Width() int { return t.width }

// Height returns the texture height.
func (t *ScalarTexture) Height() int { return t.height }

// At returns the stored influence value at absolute pixel (x, y); it
// does not clamp. Returns 0 for coordinates outside the texture bounds, matching
// "no influence outside the mask's extent".
func (t *ScalarTexture) At(x, y int) float32 {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return 0
	}
	return t.data[y*t.width+x]
}

// Set sets the influence value at (x, y), clamping to [0,1].
// Coordinates outside the texture bounds are ignored.
func (t *ScalarTexture) Set(x, y int, value float32) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	t.data[y*t.width+x] = value
}

// Fill fills the entire texture with a value in [0,1].
func (t *ScalarTexture) Fill(value float32) {
	for i := range t.data {
		t.data[i] = value
	}
}

// Invert inverts all influence values (1 - value).
func (t *ScalarTexture) Invert() {
	for i := range t.data {
		t.data[i] = 1 - t.data[i]
	}
}

// Clear resets the texture to 0 (no influence) everywhere.
func (t *ScalarTexture) Clear() {
	for i := range t.data {
		t.data[i] = 0
	}
}

// Clone creates a copy of the texture.
func (t *ScalarTexture) Clone() *ScalarTexture {
	clone := NewScalarTexture(t.width, t.height)
	copy(clone.data, t.data)
	return clone
}

// Data returns the underlying influence data slice, row-major.
func (t *ScalarTexture) Data() []float32 {
	return t.data
}
