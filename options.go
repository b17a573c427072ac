package rawshade

import "log/slog"

// PipelineOption configures a Dispatcher during creation.
// Use functional options to customize dispatcher behavior.
//
// Example:
//
//	// Default: CPU reference kernel
//	d := rawshade.NewDispatcher()
//
//	// GPU-accelerated dispatch (dependency injection)
//	d := rawshade.NewDispatcher(rawshade.WithAccelerator(nativeAccel))
type PipelineOption func(*dispatcherOptions)

// dispatcherOptions holds optional configuration for Dispatcher creation.
type dispatcherOptions struct {
	accelerator    ShaderAccelerator
	logger         *slog.Logger
	tileSize       int
	useCPUFallback bool
}

// defaultDispatcherOptions returns the default dispatcher options.
func defaultDispatcherOptions() dispatcherOptions {
	return dispatcherOptions{
		accelerator:    nil, // resolved to the registered global accelerator, if any
		tileSize:       8,   // spec workgroup size
		useCPUFallback: false,
	}
}

// WithAccelerator sets a custom GPU accelerator for the Dispatcher,
// overriding the globally registered one (see RegisterAccelerator).
//
// Example:
//
//	d := rawshade.NewDispatcher(rawshade.WithAccelerator(myAccel))
func WithAccelerator(a ShaderAccelerator) PipelineOption {
	return func(o *dispatcherOptions) {
		o.accelerator = a
	}
}

// WithTileSize overrides the dispatcher's tile edge length in pixels.
// The shader core always dispatches in 8x8 workgroups per spec.md §4.1;
// tileSize controls how many workgroups compose one tile and must be a
// positive multiple of 8.
func WithTileSize(pixels int) PipelineOption {
	return func(o *dispatcherOptions) {
		o.tileSize = pixels
	}
}

// WithLogger sets a per-Dispatcher logger, overriding the package-level
// logger configured via SetLogger for this dispatcher only.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(o *dispatcherOptions) {
		o.logger = l
	}
}

// WithCPUFallback forces the Dispatcher onto the CPU reference kernel in
// internal/shader, bypassing any registered GPU accelerator. Useful for
// golden-output comparisons and for environments without GPU compute.
func WithCPUFallback(useCPU bool) PipelineOption {
	return func(o *dispatcherOptions) {
		o.useCPUFallback = useCPU
	}
}
