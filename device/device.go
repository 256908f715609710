// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device reports the compute accelerators reachable by Born.
//
// Probes load vendor libraries at runtime (no cgo), so a binary built on a
// machine without CUDA still answers correctly on one that has it.
//
// Example:
//
//	if device.CUDAIsAvailable() {
//	    fmt.Println("CUDA devices:", device.CUDADeviceCount())
//	}
package device

import "github.com/born-ml/bornffi/internal/device"

// Kind represents a class of compute device.
type Kind = device.Kind

// Info describes one detected device.
type Info = device.Info

// Options configures the probes.
type Options = device.Options

// Supported compute devices.
const (
	CPU    = device.CPU
	CUDA   = device.CUDA
	Vulkan = device.Vulkan
	Metal  = device.Metal
	WebGPU = device.WebGPU
)

// CUDAIsAvailable reports whether at least one CUDA device is usable.
func CUDAIsAvailable() bool {
	return device.CUDAIsAvailable()
}

// CuDNNIsAvailable reports whether cuDNN is present and usable.
func CuDNNIsAvailable() bool {
	return device.CuDNNIsAvailable()
}

// CUDADeviceCount returns the number of CUDA devices, 0 if none.
func CUDADeviceCount() int {
	return device.CUDADeviceCount()
}

// IsAvailable reports whether a device of kind k is usable.
func IsAvailable(k Kind) bool {
	return device.Default().IsAvailable(k)
}

// List returns every detected device, CPU first.
func List() []Info {
	return device.Default().All()
}

// Configure replaces the probe options and discards cached results.
func Configure(opts Options) {
	device.Configure(opts)
}
