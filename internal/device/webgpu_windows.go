//go:build windows

package device

import (
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
)

type webgpuProbe struct{}

func newWebGPUProbe() Probe {
	return webgpuProbe{}
}

func (webgpuProbe) Kind() Kind { return WebGPU }

// Devices requests the default adapter. WebGPU has no adapter
// enumeration, so at most one device is reported.
func (webgpuProbe) Devices() ([]Info, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return nil, errors.Wrap(err, "webgpu: no adapters available")
	}
	adapter.Release()

	return []Info{{Kind: WebGPU, Index: 0, Name: "WebGPU adapter"}}, nil
}
