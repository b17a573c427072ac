package gpucore

import _ "embed"

// RawPipelineWGSL is the compute kernel source for the shading pipeline
// (spec.md §4.2's ordered operator chain), compiled by any GPUAdapter
// via CreateShaderModule. backend/native compiles it; the CPU path does
// not use this source but runs the Go kernel in internal/shader.
//
//go:embed shaders/raw_pipeline.wgsl
var RawPipelineWGSL string

// ShadeEntryPoint is the compute entry point RawPipelineWGSL exports.
const ShadeEntryPoint = "shade"
