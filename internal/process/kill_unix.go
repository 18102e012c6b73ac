//go:build !windows

package process

import "syscall"

// killTree sends SIGKILL to the process group (negative PID).
func killTree(pid int) {
	// Best-effort; the launcher's own Kill is the fallback
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
