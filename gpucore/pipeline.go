package gpucore

import (
	"fmt"
	"sync"
	"time"
)

// PipelineConfig configures a ShadePipeline.
type PipelineConfig struct {
	// Width is the output image width in pixels.
	Width int

	// Height is the output image height in pixels.
	Height int

	// MaxMasks is the maximum number of nested mask stacks a dispatch's
	// bind group carries. If 0, defaults to gpucore.MaxMasks.
	MaxMasks int

	// UseCPUFallback forces the caller onto its CPU path regardless of
	// adapter capability. Useful for debugging or when GPU compute is
	// unreliable.
	UseCPUFallback bool
}

// ShadePipeline owns the compiled compute pipeline for the shading
// kernel and drives tile dispatch over an adapter.
//
// Unlike a rasterizer's multi-stage flatten/coarse/fine pipeline, the
// shading kernel is a single compute pass: one invocation per output
// pixel, reading the bound input texture, blur buffers, mask-influence
// textures, and the uniform adjustment parameters, writing straight to
// the bound output texture (spec.md §4.1 "tile grid", §4.2 the ordered
// operator chain). ShadePipeline's job is bookkeeping around that one
// pass: computing the tile grid, tracking whether GPU compute is
// available, and issuing SetPipeline/SetBindGroup/Dispatch through the
// adapter's ComputePassEncoder.
type ShadePipeline struct {
	mu sync.Mutex

	adapter GPUAdapter
	config  PipelineConfig

	tileColumns int
	tileRows    int
	tileCount   int

	shaderModule ShaderModuleID
	pipeline     ComputePipelineID
	layout       PipelineLayoutID

	initialized bool
	useGPU      bool
}

// NewShadePipeline creates a new shading pipeline bound to adapter.
func NewShadePipeline(adapter GPUAdapter, config *PipelineConfig) (*ShadePipeline, error) {
	if adapter == nil {
		return nil, fmt.Errorf("gpucore: adapter is required")
	}
	if config == nil {
		return nil, fmt.Errorf("gpucore: config is required")
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("gpucore: invalid viewport size: %dx%d", config.Width, config.Height)
	}

	cfg := *config
	if cfg.MaxMasks <= 0 {
		cfg.MaxMasks = MaxMasks
	}

	tileColumns := (cfg.Width + WorkgroupSize - 1) / WorkgroupSize
	tileRows := (cfg.Height + WorkgroupSize - 1) / WorkgroupSize
	tileCount := tileColumns * tileRows

	useGPU := !cfg.UseCPUFallback && adapter.SupportsCompute()

	p := &ShadePipeline{
		adapter:     adapter,
		config:      cfg,
		tileColumns: tileColumns,
		tileRows:    tileRows,
		tileCount:   tileCount,
		useGPU:      useGPU,
	}

	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}

	return p, nil
}

func (p *ShadePipeline) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.initialized = true
	return nil
}

// Compile compiles wgslSource and builds the compute pipeline the
// kernel runs under, bound to layout (built by the caller from the
// bind group layouts the shader's uniform/storage/texture bindings
// require). Must be called once before Execute when UseGPU is true.
func (p *ShadePipeline) Compile(wgslSource, entryPoint string, layout PipelineLayoutID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return fmt.Errorf("gpucore: pipeline not initialized")
	}
	if !p.useGPU {
		return fmt.Errorf("gpucore: pipeline is running in CPU fallback mode, compile not required")
	}

	mod, err := p.adapter.CreateShaderModule("raw_pipeline", wgslSource)
	if err != nil {
		return fmt.Errorf("gpucore: compile shader: %w", err)
	}

	pipeline, err := p.adapter.CreateComputePipeline(&ComputePipelineDesc{
		Label:        "raw_pipeline_shade",
		Layout:       layout,
		ShaderModule: mod,
		EntryPoint:   entryPoint,
	})
	if err != nil {
		p.adapter.DestroyShaderModule(mod)
		return fmt.Errorf("gpucore: create compute pipeline: %w", err)
	}

	p.shaderModule = mod
	p.layout = layout
	p.pipeline = pipeline
	return nil
}

// Execute dispatches the compiled kernel over the tile grid, binding
// each of bindGroups at its slice index (raw_pipeline.wgsl declares
// three groups: image/uniform bindings at group(0), blur buffers at
// group(1), and mask params/influence at group(2)), then submits and
// blocks until the GPU finishes.
func (p *ShadePipeline) Execute(bindGroups ...BindGroupID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return fmt.Errorf("gpucore: pipeline not initialized")
	}
	if !p.useGPU {
		return fmt.Errorf("gpucore: pipeline is running in CPU fallback mode, Execute not applicable")
	}
	if p.pipeline == InvalidID {
		return fmt.Errorf("gpucore: pipeline not compiled, call Compile first")
	}

	pass, err := p.adapter.BeginComputePass()
	if err != nil {
		return fmt.Errorf("gpucore: begin compute pass: %w", err)
	}

	pass.SetPipeline(p.pipeline)
	for i, bg := range bindGroups {
		pass.SetBindGroup(uint32(i), bg)
	}
	pass.Dispatch(uint32(p.tileColumns), uint32(p.tileRows), 1)
	pass.End()

	if err := p.adapter.Submit(); err != nil {
		return fmt.Errorf("gpucore: submit: %w", err)
	}
	return nil
}

// Resize updates the pipeline for a new output image size.
func (p *ShadePipeline) Resize(width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if width <= 0 || height <= 0 {
		return fmt.Errorf("gpucore: invalid viewport size: %dx%d", width, height)
	}

	p.config.Width = width
	p.config.Height = height
	p.tileColumns = (width + WorkgroupSize - 1) / WorkgroupSize
	p.tileRows = (height + WorkgroupSize - 1) / WorkgroupSize
	p.tileCount = p.tileColumns * p.tileRows

	return nil
}

// UseGPU returns whether the pipeline is using GPU acceleration.
func (p *ShadePipeline) UseGPU() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.useGPU
}

// SetUseCPUFallback enables or disables CPU fallback mode. When
// enabled, the caller is expected to shade on the CPU instead of
// calling Execute.
func (p *ShadePipeline) SetUseCPUFallback(useCPU bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.config.UseCPUFallback = useCPU
	p.useGPU = !useCPU && p.adapter.SupportsCompute()
}

// Config returns a copy of the pipeline configuration.
func (p *ShadePipeline) Config() PipelineConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config
}

// TileColumns returns the number of 8x8 workgroup columns.
func (p *ShadePipeline) TileColumns() int {
	return p.tileColumns
}

// TileRows returns the number of 8x8 workgroup rows.
func (p *ShadePipeline) TileRows() int {
	return p.tileRows
}

// TileCount returns the total number of workgroups one Execute issues.
func (p *ShadePipeline) TileCount() int {
	return p.tileCount
}

// IsInitialized returns whether the pipeline is initialized.
func (p *ShadePipeline) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Destroy releases the compiled pipeline and shader module.
func (p *ShadePipeline) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pipeline != InvalidID {
		p.adapter.DestroyComputePipeline(p.pipeline)
		p.pipeline = InvalidID
	}
	if p.shaderModule != InvalidID {
		p.adapter.DestroyShaderModule(p.shaderModule)
		p.shaderModule = InvalidID
	}
	if p.layout != InvalidID {
		p.adapter.DestroyPipelineLayout(p.layout)
		p.layout = InvalidID
	}
	p.initialized = false
}

// PipelineStats contains pipeline execution statistics.
type PipelineStats struct {
	// TileCount is the number of workgroups dispatched.
	TileCount int

	// DispatchTimeNS is the time spent recording and submitting the
	// compute pass, in nanoseconds.
	DispatchTimeNS int64

	// UsedGPU indicates whether GPU compute was used for this execution.
	UsedGPU bool
}

// ExecuteWithStats runs Execute and returns basic execution statistics.
func (p *ShadePipeline) ExecuteWithStats(bindGroups ...BindGroupID) (*PipelineStats, error) {
	start := time.Now()
	if err := p.Execute(bindGroups...); err != nil {
		return nil, err
	}
	elapsed := time.Since(start).Nanoseconds()

	p.mu.Lock()
	defer p.mu.Unlock()
	return &PipelineStats{
		TileCount:      p.tileCount,
		DispatchTimeNS: elapsed,
		UsedGPU:        p.useGPU,
	}, nil
}
