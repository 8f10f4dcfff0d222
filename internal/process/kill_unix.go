//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, taking the
// browser's renderer and GPU helpers down with it. pid <= 0 is ignored:
// kill(0) and kill(-1) would target this process's own group or every process.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Errors are ignored: the group may already be gone.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
