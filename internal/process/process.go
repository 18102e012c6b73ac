// Package process cleans up the headless Chrome process tree left behind by
// the PDF renderer.
package process

// KillTree terminates pid and every child it spawned.
// Non-positive PIDs are ignored: on Unix, signalling -0 would hit the
// caller's own process group.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	killTree(pid)
}
