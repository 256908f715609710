//go:build !linux && !windows && !darwin

package lasterr

// threadID has no portable kernel thread id source here; all threads
// share one slot.
func threadID() uint64 {
	return 0
}
