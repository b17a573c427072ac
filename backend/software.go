package backend

import "github.com/gogpu/rawshade"

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU reference backend.
	BackendSoftware = "software"
	// BackendNative is the name of the Pure Go GPU backend (gogpu/wgpu) run
	// through gogpu's native HAL device.
	BackendNative = "native"
	// BackendWGPU is the name reserved for a backend on gogpu/wgpu's core
	// API; backend/wgpu registers only a nil-returning factory under it.
	BackendWGPU = "wgpu"
)

// SoftwareBackend is the always-available CPU reference backend. It
// never accelerates a tile itself: rawshade.Dispatcher already embeds
// the full CPU reference kernel (internal/shader.Shade driven by
// internal/parallel.WorkerPool) as its own fallback path, so a second
// copy of that orchestration here would just be dead weight. Selecting
// "software" as the active backend is equivalent to registering no
// accelerator at all and leaning on the dispatcher's built-in fallback.
type SoftwareBackend struct {
	initialized bool
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() Backend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software reference backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// CanAccelerate always reports false: this backend exists to satisfy
// the registry's "software" entry, not to race the dispatcher's own
// CPU fallback.
func (b *SoftwareBackend) CanAccelerate(width, height int) bool {
	return false
}

// Dispatch always defers to the dispatcher's CPU fallback.
func (b *SoftwareBackend) Dispatch(target *rawshade.ShadeTarget, tile rawshade.TileInputs) error {
	return rawshade.ErrFallbackToCPU
}
