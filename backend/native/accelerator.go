package native

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/types"

	"github.com/gogpu/rawshade"
	"github.com/gogpu/rawshade/backend"
	"github.com/gogpu/rawshade/gpucore"
)

// HALDeviceProvider supplies an already-opened HAL device and queue to a
// NativeAccelerator, so it can share a device with an external window or
// surface owner instead of opening its own (gogpu-gg's corpus never
// demonstrates opening a hal.Device outside a windowing surface, so
// NativeAccelerator never tries; it waits for SetDeviceProvider instead).
type HALDeviceProvider interface {
	Device() hal.Device
	Queue() hal.Queue
	Limits() *types.Limits
}

// init registers the native backend factory, mirroring
// backend/rust/stub.go's pattern of registering under the name
// unconditionally, leaving CanAccelerate to report false until a device
// provider is supplied.
func init() {
	backend.Register(backend.BackendNative, func() backend.Backend {
		return NewNativeAccelerator()
	})
}

// bindGroupSet holds the three bind groups raw_pipeline.wgsl declares,
// rebuilt once per dispatch since the bound textures/buffers differ per
// tile.
type bindGroupSet struct {
	image gpucore.BindGroupID
	blurs gpucore.BindGroupID
	masks gpucore.BindGroupID
}

// NativeAccelerator implements rawshade.ShaderAccelerator over a
// HALAdapter, driving the raw_pipeline.wgsl compute kernel through
// gpucore.ShadePipeline (spec.md §4.1/§4.2).
//
// It owns no GPU device itself: SetDeviceProvider must be called with a
// HALDeviceProvider before Dispatch can do anything but fall back to
// CPU, following the rawshade.DeviceProviderAware device-sharing
// contract.
type NativeAccelerator struct {
	mu sync.Mutex

	logger *slog.Logger

	adapter  *HALAdapter
	pipeline *gpucore.ShadePipeline

	imageLayout gpucore.BindGroupLayoutID
	blursLayout gpucore.BindGroupLayoutID
	masksLayout gpucore.BindGroupLayoutID
	layout      gpucore.PipelineLayoutID

	width, height int
	initialized   bool
	ready         bool
}

// NewNativeAccelerator creates an uninitialized native accelerator.
func NewNativeAccelerator() *NativeAccelerator {
	return &NativeAccelerator{}
}

// Name returns the accelerator's registry name.
func (n *NativeAccelerator) Name() string {
	return backend.BackendNative
}

// SetLogger satisfies the loggerSetter interface rawshade.propagateLogger
// looks for, so logs from this accelerator route through the caller's
// configured slog.Logger.
func (n *NativeAccelerator) SetLogger(l *slog.Logger) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.logger = l
}

func (n *NativeAccelerator) log() *slog.Logger {
	if n.logger != nil {
		return n.logger
	}
	return slog.Default()
}

// Init marks the accelerator ready to accept a device provider. No GPU
// resources exist yet.
func (n *NativeAccelerator) Init() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.initialized = true
	return nil
}

// SetDeviceProvider builds the HALAdapter, bind group layouts, pipeline
// layout, and compiles the shading kernel against the device the
// provider exposes. Called once by the host after it has opened its GPU
// device (e.g. alongside a windowing surface), per
// rawshade.DeviceProviderAware.
func (n *NativeAccelerator) SetDeviceProvider(provider any) error {
	hdp, ok := provider.(HALDeviceProvider)
	if !ok {
		return fmt.Errorf("native: device provider %T does not implement HALDeviceProvider", provider)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return ErrNotInitialized
	}

	adapter := NewHALAdapter(hdp.Device(), hdp.Queue(), hdp.Limits())
	if !adapter.SupportsCompute() {
		return ErrNoGPU
	}

	imageLayout, err := adapter.CreateBindGroupLayout(&gpucore.BindGroupLayoutDesc{
		Label: "raw_pipeline_image",
		Entries: []gpucore.BindGroupLayoutEntry{
			{Binding: 0, Type: gpucore.BindingTypeSampledTexture},
			{Binding: 1, Type: gpucore.BindingTypeStorageTexture},
			{Binding: 2, Type: gpucore.BindingTypeUniformBuffer, MinBindingSize: 32},
			{Binding: 3, Type: gpucore.BindingTypeUniformBuffer, MinBindingSize: 80},
			{Binding: 4, Type: gpucore.BindingTypeUniformBuffer, MinBindingSize: 144},
			{Binding: 5, Type: gpucore.BindingTypeUniformBuffer, MinBindingSize: 48},
			{Binding: 6, Type: gpucore.BindingTypeUniformBuffer, MinBindingSize: 48},
		},
	})
	if err != nil {
		return fmt.Errorf("native: image bind group layout: %w", err)
	}

	blursLayout, err := adapter.CreateBindGroupLayout(&gpucore.BindGroupLayoutDesc{
		Label: "raw_pipeline_blurs",
		Entries: []gpucore.BindGroupLayoutEntry{
			{Binding: 0, Type: gpucore.BindingTypeSampledTexture},
			{Binding: 1, Type: gpucore.BindingTypeSampledTexture},
			{Binding: 2, Type: gpucore.BindingTypeSampledTexture},
			{Binding: 3, Type: gpucore.BindingTypeSampledTexture},
		},
	})
	if err != nil {
		adapter.DestroyBindGroupLayout(imageLayout)
		return fmt.Errorf("native: blurs bind group layout: %w", err)
	}

	maskEntries := make([]gpucore.BindGroupLayoutEntry, 0, 1+gpucore.MaxMasks)
	maskEntries = append(maskEntries, gpucore.BindGroupLayoutEntry{
		Binding: 0, Type: gpucore.BindingTypeReadOnlyStorageBuffer, MinBindingSize: 64 * gpucore.MaxMasks,
	})
	for i := 0; i < gpucore.MaxMasks; i++ {
		maskEntries = append(maskEntries, gpucore.BindGroupLayoutEntry{
			Binding: uint32(1 + i), Type: gpucore.BindingTypeSampledTexture,
		})
	}
	masksLayout, err := adapter.CreateBindGroupLayout(&gpucore.BindGroupLayoutDesc{
		Label:   "raw_pipeline_masks",
		Entries: maskEntries,
	})
	if err != nil {
		adapter.DestroyBindGroupLayout(imageLayout)
		adapter.DestroyBindGroupLayout(blursLayout)
		return fmt.Errorf("native: masks bind group layout: %w", err)
	}

	pipelineLayout, err := adapter.CreatePipelineLayout([]gpucore.BindGroupLayoutID{
		imageLayout, blursLayout, masksLayout,
	})
	if err != nil {
		adapter.DestroyBindGroupLayout(imageLayout)
		adapter.DestroyBindGroupLayout(blursLayout)
		adapter.DestroyBindGroupLayout(masksLayout)
		return fmt.Errorf("native: pipeline layout: %w", err)
	}

	width, height := n.width, n.height
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	pipeline, err := gpucore.NewShadePipeline(adapter, &gpucore.PipelineConfig{
		Width: width, Height: height, MaxMasks: gpucore.MaxMasks,
	})
	if err != nil {
		adapter.DestroyPipelineLayout(pipelineLayout)
		adapter.DestroyBindGroupLayout(imageLayout)
		adapter.DestroyBindGroupLayout(blursLayout)
		adapter.DestroyBindGroupLayout(masksLayout)
		return fmt.Errorf("native: new shade pipeline: %w", err)
	}
	if err := pipeline.Compile(gpucore.RawPipelineWGSL, gpucore.ShadeEntryPoint, pipelineLayout); err != nil {
		pipeline.Destroy()
		return fmt.Errorf("native: compile shader: %w", err)
	}

	n.adapter = adapter
	n.pipeline = pipeline
	n.imageLayout = imageLayout
	n.blursLayout = blursLayout
	n.masksLayout = masksLayout
	n.layout = pipelineLayout
	n.ready = true

	n.log().Info("native accelerator device ready", "maxTextureDimension", adapter.Capabilities().MaxTextureDimension)
	return nil
}

// Close releases the compiled pipeline and its layouts. Safe to call
// when no device has been provided.
func (n *NativeAccelerator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.pipeline != nil {
		n.pipeline.Destroy()
		n.pipeline = nil
	}
	if n.adapter != nil {
		n.adapter.DestroyPipelineLayout(n.layout)
		n.adapter.DestroyBindGroupLayout(n.imageLayout)
		n.adapter.DestroyBindGroupLayout(n.blursLayout)
		n.adapter.DestroyBindGroupLayout(n.masksLayout)
		n.adapter = nil
	}
	n.ready = false
}

// CanAccelerate reports whether a device provider has been set and the
// requested tile fits within the adapter's texture limits.
func (n *NativeAccelerator) CanAccelerate(width, height int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.ready {
		return false
	}
	caps := n.adapter.Capabilities()
	return width > 0 && height > 0 &&
		uint32(width) <= caps.MaxTextureDimension &&
		uint32(height) <= caps.MaxTextureDimension
}

// gpuUnsupported reports whether tile's uniform uses a feature
// the compute kernel does not apply (brightness, centre, noise-reduction
// thresholds, chromatic aberration, color grading/calibration, HSL bands,
// R/G/B curves, glow/halation/flare, mask curves, or a bound LUT/flare
// texture) — see convert.go's convertGlobalParamsGPU
// doc comment. Such tiles fall back to the CPU kernel, which implements
// the full operator set.
func gpuUnsupported(u *rawshade.PipelineUniform, tile *rawshade.TileInputs) bool {
	var zeroHSL rawshade.HSLAdjustments
	var zeroGrading rawshade.ColorGrading
	var zeroCalibration rawshade.ColorCalibration

	g := u.Global
	if g.Brightness != 0 || g.Centre != 0 || g.LumaNR != 0 || g.ColorNR != 0 ||
		g.ChromaticAberration.RedCyan != 0 || g.ChromaticAberration.BlueYellow != 0 ||
		g.Glow != 0 || g.Halation != 0 || g.Flare != 0 ||
		g.HSL != zeroHSL || g.ColorGrading != zeroGrading || g.ColorCalibration != zeroCalibration {
		return true
	}
	if !g.CurveRed.IsIdentity() || !g.CurveGreen.IsIdentity() || !g.CurveBlue.IsIdentity() {
		return true
	}
	if g.HasLUT || tile.LUT != nil || tile.Flare != nil {
		return true
	}
	if tile.Blurs.Sharpness == nil || tile.Blurs.Clarity == nil ||
		tile.Blurs.Structure == nil || tile.Blurs.Tonal == nil {
		return true
	}
	for i := 0; i < u.MaskCount; i++ {
		m := u.Masks[i]
		if m.Brightness != 0 || m.Flare != 0 || m.HSL != zeroHSL || m.ColorGrading != zeroGrading ||
			m.Glow != 0 || m.Halation != 0 || !m.CurveLuma.IsIdentity() ||
			!m.CurveRed.IsIdentity() || !m.CurveGreen.IsIdentity() || !m.CurveBlue.IsIdentity() {
			return true
		}
	}
	return false
}

// Dispatch shades one tile on the GPU. It returns rawshade.ErrFallbackToCPU
// whenever the tile's adjustments use a field the compute kernel does not
// bind (see gpuUnsupported), or whenever no device has been provided,
// letting the dispatcher's CPU path carry the full operator set.
func (n *NativeAccelerator) Dispatch(target *rawshade.ShadeTarget, tile rawshade.TileInputs) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.ready {
		return rawshade.ErrFallbackToCPU
	}
	if target == nil || tile.Input == nil {
		return ErrNilTarget
	}
	if gpuUnsupported(&tile.Uniform, &tile) {
		return rawshade.ErrFallbackToCPU
	}

	width, height := uint32(tile.Input.Width()), uint32(tile.Input.Height())
	if width == 0 || height == 0 {
		return ErrInvalidDimensions
	}
	if n.width != int(width) || n.height != int(height) {
		if err := n.pipeline.Resize(int(width), int(height)); err != nil {
			return fmt.Errorf("native: resize: %w", err)
		}
		n.width, n.height = int(width), int(height)
	}

	resources, err := n.uploadResources(&tile, width, height)
	if err != nil {
		return err
	}
	defer n.releaseResources(resources)

	groups, err := n.buildBindGroups(resources)
	if err != nil {
		return err
	}
	defer n.releaseBindGroups(groups)

	if err := n.pipeline.Execute(groups.image, groups.blurs, groups.masks); err != nil {
		return fmt.Errorf("native: execute: %w", err)
	}

	out, err := n.adapter.ReadTexture(resources.output, width, height)
	if err != nil {
		return fmt.Errorf("native: read output: %w", err)
	}
	copy(target.Data, out)
	target.Width, target.Height = int(width), int(height)
	target.Stride = int(width) * 4
	return nil
}
