// Package backend provides a pluggable accelerator registry for the
// shading pipeline, letting callers select a rawshade.ShaderAccelerator
// implementation by name instead of wiring one up directly.
package backend

import (
	"errors"

	"github.com/gogpu/rawshade"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend is a named, registrable accelerator. It is exactly a
// rawshade.ShaderAccelerator; the alias exists so this package's
// registry can talk about accelerators without forcing every call
// site to spell out the root package's name.
type Backend = rawshade.ShaderAccelerator
