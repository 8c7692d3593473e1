//go:build windows

package proctable

import (
	"fmt"

	"github.com/StackExchange/wmi"
)

type win32Process struct {
	ProcessID uint32
}

func running(pid uint32) (bool, error) {
	var dst []win32Process
	q := fmt.Sprintf("SELECT ProcessID FROM Win32_Process WHERE ProcessID=%d", pid)
	if err := wmi.Query(q, &dst); err != nil {
		return false, fmt.Errorf("wmi query: %w", err)
	}
	return len(dst) > 0, nil
}
