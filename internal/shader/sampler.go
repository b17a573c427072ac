package shader

// Sampler provides bilinear-filtered, clamp-to-edge reads of a texture
// at absolute image pixel coordinates (spec.md §6 coordinate
// conventions). rawshade.ColorTexture implements this via a thin
// adapter in dispatcher.go so this package never imports the root
// package.
type Sampler interface {
	Sample(x, y float64) RGB
	Width() int
	Height() int
}

// ScalarSampler reads a single-channel [0,1] texture at absolute pixel
// coordinates (mask influence, spec.md §2.3).
type ScalarSampler interface {
	Sample(x, y int) float32
}
