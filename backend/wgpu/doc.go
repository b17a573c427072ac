// Package wgpu is a placeholder slot for a second, core-API-based GPU
// backend alongside backend/native's HAL-based one.
//
// github.com/gogpu/wgpu/core doesn't demonstrate compute pipeline support
// anywhere in the retrieved corpus, the same gap that ruled out
// backend/gogpu's adapter (see DESIGN.md), so there is nothing genuine to
// build here yet. Without the wgpu build tag this package registers a nil
// factory under backend.BackendWGPU so callers can probe for it and fall
// through to backend.BackendNative or backend.BackendSoftware.
package wgpu
