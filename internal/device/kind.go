// Package device reports which compute accelerators the engine can reach.
package device

// Kind represents a class of compute device.
type Kind int

// Supported compute devices.
const (
	CPU Kind = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (k Kind) String() string {
	switch k {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// Info describes one detected device.
type Info struct {
	Kind  Kind
	Index int
	Name  string
}
