package rawshade

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the GPU accelerator cannot dispatch this tile.
// The caller should transparently fall back to the CPU reference path.
var ErrFallbackToCPU = errors.New("rawshade: falling back to CPU shading")

// ShaderAccelerator is a GPU-backed implementation of the shading pipeline.
//
// When registered via RegisterAccelerator, the Dispatcher tries GPU
// dispatch first. If Dispatch returns ErrFallbackToCPU or any error, the
// dispatcher transparently falls back to the CPU reference kernel in
// internal/shader.
//
// The implementation is provided by backend/native (backend/wgpu only
// registers a nil placeholder factory). Users opt in via blank import:
//
//	import _ "github.com/gogpu/rawshade/gpu" // enables GPU acceleration
type ShaderAccelerator interface {
	// Name returns the accelerator name (e.g., "wgpu", "native").
	Name() string

	// Init initializes GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// CanAccelerate reports whether the accelerator can dispatch a tile
	// of the given dimensions. A fast check used to skip GPU entirely
	// when the device cannot satisfy the dispatch.
	CanAccelerate(width, height int) bool

	// Dispatch shades one tile, writing the result into target.
	// Returns ErrFallbackToCPU if the tile cannot be GPU-dispatched.
	Dispatch(target *ShadeTarget, tile TileInputs) error
}

// ShadeTarget is the output storage texture for one dispatch: rgba8unorm,
// same extent as the tile's input region.
type ShadeTarget struct {
	Data          []uint8 // rgba8unorm, row-major, 4 bytes per pixel
	Width, Height int
	Stride        int // bytes per row
}

// DeviceProviderAware is implemented by accelerators that can share a GPU
// device with an external provider instead of creating their own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider any) error
}

var (
	accelMu sync.RWMutex
	accel   ShaderAccelerator
)

// RegisterAccelerator registers a GPU accelerator for tile dispatch.
//
// Only one accelerator can be registered at a time; subsequent calls
// replace the previous one. Init() is called during registration; if it
// fails, the accelerator is not registered and the error is returned.
//
// Typical usage via blank import in a GPU backend package:
//
//	func init() {
//	    rawshade.RegisterAccelerator(NewNativeAccelerator())
//	}
func RegisterAccelerator(a ShaderAccelerator) error {
	if a == nil {
		return errors.New("rawshade: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	propagateLogger(a, Logger())
	return nil
}

// Accelerator returns the currently registered GPU accelerator, or nil.
func Accelerator() ShaderAccelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// CloseAccelerator shuts down the global GPU accelerator, releasing all
// GPU resources. After this call, [Accelerator] returns nil and dispatch
// falls back to CPU. Safe to call when no accelerator is registered.
func CloseAccelerator() {
	accelMu.Lock()
	a := accel
	accel = nil
	accelMu.Unlock()
	if a != nil {
		a.Close()
	}
}

// SetAcceleratorDeviceProvider passes a device provider to the registered
// accelerator, enabling GPU device sharing with an external window/surface
// owner. No-op if no accelerator is registered or it doesn't support
// device sharing.
func SetAcceleratorDeviceProvider(provider any) error {
	a := Accelerator()
	if a == nil {
		return nil
	}
	if dpa, ok := a.(DeviceProviderAware); ok {
		return dpa.SetDeviceProvider(provider)
	}
	return nil
}
