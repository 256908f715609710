package device

import "errors"

// ErrUnsupported is returned by probes that cannot run on this platform.
var ErrUnsupported = errors.New("device: probe not supported on this platform")

// ErrDisabled is returned by probes turned off through Options.
var ErrDisabled = errors.New("device: probe disabled by configuration")
