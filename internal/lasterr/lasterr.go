// Package lasterr keeps the most recent boundary error per OS thread.
//
// Callers on the far side of the C boundary cannot receive Go errors, so
// failures are parked here and polled with GetAndReset. Entries are keyed by
// the kernel thread id of the caller. Calls arriving through cgo run on the
// calling C thread for their whole duration, so a C thread always sees its
// own slot. Go callers must pin their goroutine with runtime.LockOSThread
// between Set and GetAndReset to get the same guarantee.
//
// Slots are not reclaimed when a thread exits, and the kernel may reuse its
// id. Boundary calls therefore Clear the slot on entry, so a new thread
// never reads an error it did not cause.
package lasterr

import "sync"

var (
	mu    sync.Mutex
	slots = make(map[uint64]string)
)

// Set records msg as the calling thread's last error, replacing any
// previous message. An empty msg clears the slot.
func Set(msg string) {
	tid := threadID()

	mu.Lock()
	defer mu.Unlock()
	if msg == "" {
		delete(slots, tid)
		return
	}
	slots[tid] = msg
}

// SetError records err.Error(); a nil err is ignored.
func SetError(err error) {
	if err == nil {
		return
	}
	Set(err.Error())
}

// GetAndReset returns the calling thread's last error and clears it.
// ok is false when no error is pending.
func GetAndReset() (msg string, ok bool) {
	tid := threadID()

	mu.Lock()
	defer mu.Unlock()
	msg, ok = slots[tid]
	if ok {
		delete(slots, tid)
	}
	return msg, ok
}

// Clear drops the calling thread's pending error, if any.
func Clear() {
	Set("")
}
