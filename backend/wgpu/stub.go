//go:build !wgpu

package wgpu

import "github.com/gogpu/rawshade/backend"

// init registers a nil-returning factory when the wgpu tag is not set.
// This allows code to compile without a real wgpu backend while still
// letting backend.Get(backend.BackendWGPU) return nil gracefully.
func init() {
	backend.Register(backend.BackendWGPU, func() backend.Backend {
		return nil
	})
}
