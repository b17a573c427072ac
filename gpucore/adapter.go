package gpucore

// GPUAdapter abstracts the GPU operations the shading pipeline needs
// over a specific backend (gogpu/wgpu's HAL, or another WebGPU
// implementation), so gpucore's pipeline orchestration stays backend-
// agnostic. backend/native's HALAdapter implements this interface.
type GPUAdapter interface {
	// SupportsCompute reports whether this adapter can dispatch compute
	// shaders at all. A false result forces the pipeline onto its CPU
	// fallback.
	SupportsCompute() bool

	// Capabilities reports the adapter's resource limits.
	Capabilities() AdapterCapabilities

	// CreateBuffer allocates a GPU buffer of size bytes with the given
	// usage flags.
	CreateBuffer(size uint64, usage BufferUsage) (BufferID, error)

	// WriteBuffer uploads data to a buffer at the given byte offset.
	WriteBuffer(id BufferID, offset uint64, data []byte) error

	// ReadBuffer reads size bytes back from a buffer at offset. Intended
	// for small staging reads (dispatch results), not bulk transfer.
	ReadBuffer(id BufferID, offset uint64, size uint64) ([]byte, error)

	// DestroyBuffer releases a buffer. Safe to call with InvalidID.
	DestroyBuffer(id BufferID)

	// CreateTexture allocates a 2D GPU texture.
	CreateTexture(width, height uint32, format TextureFormat, usage TextureUsage) (TextureID, error)

	// WriteTexture uploads row-major pixel data into a texture.
	WriteTexture(id TextureID, data []byte, bytesPerRow uint32) error

	// ReadTexture reads a texture's pixel data back as row-major bytes.
	ReadTexture(id TextureID, width, height uint32) ([]byte, error)

	// DestroyTexture releases a texture. Safe to call with InvalidID.
	DestroyTexture(id TextureID)

	// CreateShaderModule compiles WGSL source into a shader module.
	CreateShaderModule(label string, wgslSource string) (ShaderModuleID, error)

	// DestroyShaderModule releases a compiled shader module.
	DestroyShaderModule(id ShaderModuleID)

	// CreateBindGroupLayout declares the binding layout a compute
	// pipeline expects.
	CreateBindGroupLayout(desc *BindGroupLayoutDesc) (BindGroupLayoutID, error)

	// DestroyBindGroupLayout releases a bind group layout.
	DestroyBindGroupLayout(id BindGroupLayoutID)

	// CreatePipelineLayout builds a pipeline layout from one or more
	// bind group layouts.
	CreatePipelineLayout(layouts []BindGroupLayoutID) (PipelineLayoutID, error)

	// DestroyPipelineLayout releases a pipeline layout.
	DestroyPipelineLayout(id PipelineLayoutID)

	// CreateBindGroup binds concrete resources to a bind group layout.
	CreateBindGroup(layout BindGroupLayoutID, entries []BindGroupEntry) (BindGroupID, error)

	// DestroyBindGroup releases a bind group.
	DestroyBindGroup(id BindGroupID)

	// CreateComputePipeline compiles a compute pipeline from a shader
	// module and pipeline layout.
	CreateComputePipeline(desc *ComputePipelineDesc) (ComputePipelineID, error)

	// DestroyComputePipeline releases a compute pipeline.
	DestroyComputePipeline(id ComputePipelineID)

	// BeginComputePass opens a command encoder for recording dispatches,
	// returning an encoder bound to this adapter's device and queue.
	BeginComputePass() (ComputePassEncoder, error)

	// Submit submits recorded commands to the GPU queue and blocks
	// until they complete.
	Submit() error
}

// ComputePassEncoder records the sequence of pipeline/bind-group binds
// and dispatches that make up one compute pass (spec.md §4.1 "tile
// grid": one dispatch per tile, 8x8 workgroups).
type ComputePassEncoder interface {
	// SetPipeline binds the compute pipeline to use for subsequent
	// Dispatch calls.
	SetPipeline(id ComputePipelineID)

	// SetBindGroup binds resources at the given bind group index.
	SetBindGroup(index uint32, id BindGroupID)

	// Dispatch issues workgroups over the (x, y, z) grid.
	Dispatch(x, y, z uint32)

	// End finishes recording this pass.
	End()
}

// AdapterCapabilities describes what a GPUAdapter implementation
// supports, queried by the dispatcher before committing to the GPU
// path.
type AdapterCapabilities struct {
	// MaxTextureDimension is the largest width/height a texture may have.
	MaxTextureDimension uint32

	// MaxComputeWorkgroupsPerDimension bounds how many workgroups a
	// single dispatch call may issue along one axis.
	MaxComputeWorkgroupsPerDimension uint32

	// SupportsStorageTextures reports whether the adapter can bind
	// textures for direct read/write in a compute shader, required by
	// the shading kernel's output texture.
	SupportsStorageTextures bool
}
