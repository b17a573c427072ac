// Package rawshade implements the host-side half of a RAW/sRGB photo
// shading pipeline: the parameter bundle, mask and blur texture types,
// and the Dispatcher that binds them and drives a per-pixel compute
// kernel over an output tile.
//
// # Overview
//
// rawshade renders a final sRGB image from an input image (RAW-linear or
// sRGB-encoded) and a structured bundle of adjustments. The per-pixel
// kernel itself lives in internal/shader and gpucore's embedded WGSL
// (gpucore/shaders/raw_pipeline.wgsl); this package owns the data model those consume and the
// Dispatcher that schedules work across tiles.
//
// # Quick Start
//
//	import "github.com/gogpu/rawshade"
//
//	d := rawshade.NewDispatcher()
//	u := rawshade.DefaultPipelineUniform()
//	u.Global.Exposure = 1.0
//
//	target, err := d.Dispatch(rawshade.TileInputs{
//	    Input:   input,
//	    Blurs:   blurs,
//	    Uniform: u,
//	})
//
// # Backends
//
// The library includes both a CPU reference kernel and a GPU-accelerated
// backend:
//   - CPU reference kernel in internal/shader, used when no accelerator
//     is registered or WithCPUFallback is set.
//   - GPU dispatch via gogpu/wgpu, registered by blank-importing
//     github.com/gogpu/rawshade/gpu.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Dispatcher, PipelineUniform, GlobalAdjustments,
//     MaskAdjustments, ColorTexture, ScalarTexture, LUT3D
//   - Internal: color (sRGB/linear/AgX/dehaze math), shader (the
//     per-pixel pipeline), tonecurve (monotone cubic interpolation),
//     parallel (CPU tile scheduling), filter (calibration matrices)
//   - Backends: native (GPU accelerator over gogpu/wgpu's HAL), wgpu
//     (placeholder whose factory returns nil)
//
// # Coordinate System
//
// Absolute pixel coordinates are tile_offset + local pixel index, per
// spec.md §4.1/§6; all spatial operators (vignette, centre contrast,
// chromatic aberration, grain, flare) key off this absolute coordinate,
// not the tile-local one.
//
// # Correctness
//
// Dispatch is a pure function of its bound inputs and uniform: identical
// inputs produce identical output, with no hidden state and no
// cross-tile communication.
package rawshade
