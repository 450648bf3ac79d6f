package cmd

import (
	"os/exec"
)

// findExecutable locates an external tool such as git on PATH.
func findExecutable(name string) (string, error) {
	return exec.LookPath(name)
}

// execCommand builds the command for an external tool. Tests may replace it.
var execCommand = func(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}
