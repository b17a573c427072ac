package gpucore

// Resource IDs
//
// These opaque IDs represent GPU resources. Each adapter implementation
// maintains a mapping between IDs and actual backend resources.
// IDs are uint64 to accommodate various backend handle sizes.

// BufferID is an opaque handle to a GPU buffer.
type BufferID uint64

// TextureID is an opaque handle to a GPU texture.
type TextureID uint64

// ShaderModuleID is an opaque handle to a compiled shader module.
type ShaderModuleID uint64

// ComputePipelineID is an opaque handle to a compute pipeline.
type ComputePipelineID uint64

// BindGroupLayoutID is an opaque handle to a bind group layout.
type BindGroupLayoutID uint64

// BindGroupID is an opaque handle to a bind group.
type BindGroupID uint64

// PipelineLayoutID is an opaque handle to a pipeline layout.
type PipelineLayoutID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// BufferUsage is a bitmask specifying how a buffer will be used.
type BufferUsage uint32

// Buffer usage flags.
const (
	// BufferUsageMapRead indicates the buffer can be mapped for reading.
	BufferUsageMapRead BufferUsage = 1 << 0

	// BufferUsageMapWrite indicates the buffer can be mapped for writing.
	BufferUsageMapWrite BufferUsage = 1 << 1

	// BufferUsageCopySrc indicates the buffer can be used as a copy source.
	BufferUsageCopySrc BufferUsage = 1 << 2

	// BufferUsageCopyDst indicates the buffer can be used as a copy destination.
	BufferUsageCopyDst BufferUsage = 1 << 3

	// BufferUsageIndex indicates the buffer can be used as an index buffer.
	BufferUsageIndex BufferUsage = 1 << 4

	// BufferUsageVertex indicates the buffer can be used as a vertex buffer.
	BufferUsageVertex BufferUsage = 1 << 5

	// BufferUsageUniform indicates the buffer can be used as a uniform buffer.
	BufferUsageUniform BufferUsage = 1 << 6

	// BufferUsageStorage indicates the buffer can be used as a storage buffer.
	BufferUsageStorage BufferUsage = 1 << 7

	// BufferUsageIndirect indicates the buffer can be used for indirect dispatch/draw.
	BufferUsageIndirect BufferUsage = 1 << 8
)

// TextureFormat specifies the format of texture data.
type TextureFormat uint32

// Texture formats.
const (
	// TextureFormatRGBA8Unorm is 8-bit RGBA, normalized unsigned integer.
	TextureFormatRGBA8Unorm TextureFormat = iota + 1

	// TextureFormatRGBA8UnormSRGB is 8-bit RGBA, normalized unsigned integer in sRGB color space.
	TextureFormatRGBA8UnormSRGB

	// TextureFormatBGRA8Unorm is 8-bit BGRA, normalized unsigned integer.
	TextureFormatBGRA8Unorm

	// TextureFormatBGRA8UnormSRGB is 8-bit BGRA, normalized unsigned integer in sRGB color space.
	TextureFormatBGRA8UnormSRGB

	// TextureFormatR8Unorm is 8-bit red channel only, normalized unsigned integer.
	TextureFormatR8Unorm

	// TextureFormatR32Float is 32-bit red channel only, floating point.
	TextureFormatR32Float

	// TextureFormatRG32Float is 32-bit RG, floating point.
	TextureFormatRG32Float

	// TextureFormatRGBA32Float is 32-bit RGBA, floating point.
	TextureFormatRGBA32Float
)

// TextureUsage is a bitmask specifying how a texture will be used.
type TextureUsage uint32

// Texture usage flags.
const (
	// TextureUsageCopySrc indicates the texture can be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << 0

	// TextureUsageCopyDst indicates the texture can be used as a copy destination.
	TextureUsageCopyDst TextureUsage = 1 << 1

	// TextureUsageTextureBinding indicates the texture can be bound as a sampled texture.
	TextureUsageTextureBinding TextureUsage = 1 << 2

	// TextureUsageStorageBinding indicates the texture can be bound as a storage texture.
	TextureUsageStorageBinding TextureUsage = 1 << 3

	// TextureUsageRenderAttachment indicates the texture can be used as a render target.
	TextureUsageRenderAttachment TextureUsage = 1 << 4
)

// BindingType specifies the type of a shader binding.
type BindingType uint32

// Binding types.
const (
	// BindingTypeUniformBuffer is a uniform buffer binding.
	BindingTypeUniformBuffer BindingType = iota + 1

	// BindingTypeStorageBuffer is a storage buffer binding (read-write).
	BindingTypeStorageBuffer

	// BindingTypeReadOnlyStorageBuffer is a read-only storage buffer binding.
	BindingTypeReadOnlyStorageBuffer

	// BindingTypeSampler is a texture sampler binding.
	BindingTypeSampler

	// BindingTypeSampledTexture is a sampled texture binding.
	BindingTypeSampledTexture

	// BindingTypeStorageTexture is a storage texture binding.
	BindingTypeStorageTexture
)

// ComputePipelineDesc describes a compute pipeline.
type ComputePipelineDesc struct {
	// Label is an optional debug label.
	Label string

	// Layout is the pipeline layout.
	Layout PipelineLayoutID

	// ShaderModule contains the compute shader.
	ShaderModule ShaderModuleID

	// EntryPoint is the name of the shader entry point function.
	EntryPoint string
}

// BindGroupLayoutDesc describes a bind group layout.
type BindGroupLayoutDesc struct {
	// Label is an optional debug label.
	Label string

	// Entries defines the bindings in this layout.
	Entries []BindGroupLayoutEntry
}

// BindGroupLayoutEntry describes a single binding in a bind group layout.
type BindGroupLayoutEntry struct {
	// Binding is the binding index.
	Binding uint32

	// Type is the type of resource bound at this index.
	Type BindingType

	// MinBindingSize is the minimum buffer size for buffer bindings.
	// Set to 0 for non-buffer bindings.
	MinBindingSize uint64
}

// BindGroupEntry describes a single binding in a bind group.
type BindGroupEntry struct {
	// Binding is the binding index.
	Binding uint32

	// Buffer is the buffer to bind (for buffer bindings).
	Buffer BufferID

	// Offset is the offset into the buffer.
	Offset uint64

	// Size is the size of the buffer range to bind.
	// Use 0 to bind the entire buffer from offset.
	Size uint64

	// Texture is the texture to bind (for texture bindings).
	Texture TextureID
}

// BindGroupDesc describes a bind group.
type BindGroupDesc struct {
	// Label is an optional debug label.
	Label string

	// Layout is the bind group layout.
	Layout BindGroupLayoutID

	// Entries are the resource bindings.
	Entries []BindGroupEntry
}

// GPU Data Structures
//
// These structures match the raw_pipeline.wgsl uniform and storage
// buffer layouts and are used for CPU-GPU data transfer. All
// structures use explicit padding to satisfy WGSL's std140-style
// alignment rules (vec4/16-byte boundaries for struct members that
// themselves contain vec3s or arrays).

// WorkgroupSize is the compute shader's local_size_x/y. Every tile
// dispatched to the GPU is WorkgroupSize x WorkgroupSize pixels. (The
// dispatcher's CPU path does not use it; it splits work by rows.)
const WorkgroupSize = 8

// MaxMasks is the maximum number of nested mask adjustment stacks a
// single dispatch's uniform buffer carries, matching rawshade.MaxMasks.
const MaxMasks = 8

// TileDispatchConfig describes one compute dispatch over a sub-region
// of the output image. ShadePipeline computes its tile columns/rows
// from the image dimensions, and Execute issues a single Dispatch call
// covering all of those workgroups.
type TileDispatchConfig struct {
	ViewportWidth  uint32 // Output image width in pixels
	ViewportHeight uint32 // Output image height in pixels
	TileOffsetX    uint32 // Absolute X of this dispatch's origin
	TileOffsetY    uint32 // Absolute Y of this dispatch's origin
	TileWidth      uint32 // Width of this dispatch's region in pixels
	TileHeight     uint32 // Height of this dispatch's region in pixels
	MaskCount      uint32 // Number of active mask entries this dispatch
	AtlasCols      uint32 // Columns in the mask-influence texture atlas
}

// CurveGPU mirrors rawshade.ToneCurve for upload into the uniform
// buffer: a fixed-size array of control points plus a count, since
// WGSL has no dynamically sized uniform arrays.
type CurveGPU struct {
	PointsX  [16]float32
	PointsY  [16]float32
	Count    uint32
	Padding1 uint32
	Padding2 uint32
	Padding3 uint32
}

// Matrix3GPU mirrors rawshade.Matrix3, laid out row-major with each
// row padded to a vec4 to satisfy WGSL's array<vec3<f32>> stride.
type Matrix3GPU struct {
	Row0 [4]float32
	Row1 [4]float32
	Row2 [4]float32
}

// GlobalParamsGPU mirrors the scalar fields of rawshade.GlobalAdjustments
// that the compute kernel reads directly, packed for a std140 uniform
// buffer binding. The luma curve (CurveGPU) and the AgX matrices
// (Matrix3GPU) are uploaded as separate bindings rather than inlined
// here; the R/G/B curves and the HSL bands are not uploaded at all.
// This keeps the struct small enough to update per-adjustment
// without re-uploading the whole pipeline state.
type GlobalParamsGPU struct {
	Exposure    float32
	Contrast    float32
	Sharpness   float32
	Clarity     float32
	Structure   float32
	Temperature float32
	Tint        float32
	Saturation  float32

	Vibrance       float32
	Shadows        float32
	Highlights     float32
	Whites         float32
	Blacks         float32
	Dehaze         float32
	VignetteAmount float32
	GrainAmount    float32

	IsRaw            uint32
	TonemapperFilmic uint32
	HasLUT           uint32
	ShowClipping     uint32
}

// MaskParamsGPU mirrors rawshade.MaskAdjustments' scalar fields for one
// nested mask stack entry.
type MaskParamsGPU struct {
	Exposure    float32
	Contrast    float32
	Sharpness   float32
	Clarity     float32
	Structure   float32
	Temperature float32
	Tint        float32
	Saturation  float32

	Vibrance   float32
	Shadows    float32
	Highlights float32
	Whites     float32
	Blacks     float32
	Dehaze     float32
	Glow       float32
	Halation   float32
}
