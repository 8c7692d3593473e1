// Package proctable checks window owner pids against the OS process table.
package proctable

import "errors"

// ErrUnsupported is returned where no process table lookup exists.
var ErrUnsupported = errors.New("process lookup not supported on this platform")

// Running reports whether a process with the given pid currently exists.
// Pid 0 is never a window owner and always reports false.
func Running(pid uint32) (bool, error) {
	if pid == 0 {
		return false, nil
	}
	return running(pid)
}

// Checker adapts Running for filters that cannot handle errors. A failed
// lookup counts as running so that nothing is flagged on a guess.
func Checker(pid uint32) bool {
	ok, err := Running(pid)
	return ok || err != nil
}
