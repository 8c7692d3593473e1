//go:build !unix && !windows

package proctable

func running(uint32) (bool, error) {
	return false, ErrUnsupported
}
