//go:build !windows

package device

import "github.com/pkg/errors"

type webgpuProbe struct{}

func newWebGPUProbe() Probe {
	return webgpuProbe{}
}

func (webgpuProbe) Kind() Kind { return WebGPU }

func (webgpuProbe) Devices() ([]Info, error) {
	return nil, errors.Wrap(ErrUnsupported, "webgpu")
}
