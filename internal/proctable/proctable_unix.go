//go:build unix

package proctable

import (
	"errors"
	"math"

	"golang.org/x/sys/unix"
)

// running probes the pid with signal 0, which checks existence and
// permission without delivering anything.
func running(pid uint32) (bool, error) {
	if pid > math.MaxInt32 {
		return false, nil
	}
	err := unix.Kill(int(pid), 0)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, unix.ESRCH):
		return false, nil
	case errors.Is(err, unix.EPERM):
		// Exists but belongs to another user.
		return true, nil
	}
	return false, err
}
