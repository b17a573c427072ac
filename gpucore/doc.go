// Package gpucore provides shared GPU abstractions for the raw shading
// pipeline.
//
// This package defines the [GPUAdapter] interface, which abstracts over
// different GPU backend implementations. Its one implementation is
// backend/native's HALAdapter, which runs the compute kernel under:
//   - gogpu/wgpu (Pure Go WebGPU via HAL)
//
// There is no CPU implementation of GPUAdapter; the CPU path is the Go
// kernel in internal/shader (see CPU Fallback below).
//
// # Architecture
//
// gpucore implements a shared-core-plus-thin-adapters split: the tile
// dispatch bookkeeping around the shading kernel is implemented once in
// this package's [ShadePipeline], while thin adapters translate between
// the [GPUAdapter] interface and a specific backend's device/queue API.
//
//	               +-----------------+
//	               |     gpucore     |
//	               |  (ShadePipeline)|
//	               +--------+--------+
//	                        |
//	               +--------v--------+
//	               |   HALAdapter    |
//	               | (backend/native)|
//	               +--------+--------+
//	                        |
//	               +--------v--------+
//	               |   gogpu/wgpu    |
//	               |   (Pure Go)     |
//	               +-----------------+
//
// # Dispatch
//
// [ShadePipeline] compiles the shading kernel's WGSL source into a
// single compute pipeline and dispatches it over a grid of
// [WorkgroupSize]x[WorkgroupSize] workgroups sized to cover the output
// image. Unlike a multi-pass rasterizer, there is exactly one pass per
// dispatch: every invocation computes one output pixel by running the
// ordered operator chain (local contrast through dither) against
// the bound input texture, blur buffers, mask-influence textures, and
// uniform adjustment parameters.
//
// # Resource Management
//
// GPU resources are managed via opaque IDs ([BufferID], [TextureID],
// etc.). The [GPUAdapter] interface provides creation and destruction
// methods for each resource type. Adapters are responsible for tracking
// the mapping between IDs and actual GPU resources.
//
// # CPU Fallback
//
// When GPU compute is unavailable, or for debugging, the caller runs
// entirely on CPU instead of calling [ShadePipeline.Execute]. Set
// [PipelineConfig.UseCPUFallback] to true to force this regardless of
// what the adapter reports.
//
// # Usage Example
//
//	adapter := native.NewHALAdapter(device, queue, limits)
//
//	config := &gpucore.PipelineConfig{Width: 1920, Height: 1080}
//	pipeline, err := gpucore.NewShadePipeline(adapter, config)
//	if err != nil {
//	    return err
//	}
//	defer pipeline.Destroy()
//
//	if err := pipeline.Compile(wgslSource, "shade", layout); err != nil {
//	    return err
//	}
//	if err := pipeline.Execute(bindGroup); err != nil {
//	    return err
//	}
package gpucore
