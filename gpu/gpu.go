//go:build !nogpu

// Package gpu registers the native GPU accelerator for hardware-
// accelerated shading.
//
// Import this package to enable GPU compute dispatch of the shading
// pipeline's ordered operator chain. The accelerator is
// registered eagerly, but it stays inert until SetDeviceProvider is
// called with an already-opened device: gogpu-gg's corpus never shows a
// hal.Device being constructed outside a windowing surface, so this
// package never tries either. Until a device is supplied, every tile
// falls back to the CPU reference kernel transparently.
//
// Usage:
//
//	import _ "github.com/gogpu/rawshade/gpu" // enable GPU acceleration
//	gpu.SetDeviceProvider(myHALDeviceProvider)
package gpu

import (
	"github.com/gogpu/rawshade"
	"github.com/gogpu/rawshade/backend"
	_ "github.com/gogpu/rawshade/backend/native"
)

func init() {
	accel := backend.Get(backend.BackendNative)
	if accel == nil {
		return
	}
	if err := rawshade.RegisterAccelerator(accel); err != nil {
		rawshade.Logger().Warn("native GPU accelerator not available", "err", err)
	}
}

// SetDeviceProvider configures the registered GPU accelerator to share a
// device opened by an external caller (e.g. a windowing surface or
// another gogpu-based renderer), per native.HALDeviceProvider. Until
// this is called, every dispatch falls back to the CPU kernel.
func SetDeviceProvider(provider any) error {
	return rawshade.SetAcceleratorDeviceProvider(provider)
}
