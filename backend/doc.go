// Package backend provides a pluggable rawshade.ShaderAccelerator
// registry.
//
// The backend package lets callers select an accelerator
// implementation by name at runtime rather than constructing one
// directly and passing it to rawshade.WithAccelerator.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software entry is automatically registered on import:
//
//	import _ "github.com/gogpu/rawshade/backend"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b := backend.Default()
//	b := backend.Get("native")
//
// # Usage
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	dispatcher := rawshade.NewDispatcher(rawshade.WithAccelerator(b))
//
// # Available Backends
//
//   - "software": always registered, defers every tile to the
//     dispatcher's own CPU fallback.
//   - "native": gogpu's native HAL device, when the backend/native
//     package is imported.
//   - "wgpu": a placeholder registered by the backend/wgpu package; its
//     factory returns nil, so Get("wgpu") returns nil and Default skips it.
package backend
