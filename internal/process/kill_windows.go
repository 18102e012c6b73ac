//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// killTree uses taskkill. /F forces, /T terminates the child tree.
func killTree(pid int) {
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
