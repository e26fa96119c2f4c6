// Package shell runs the external commands the deployment tasks are
// built from. Commands are opaque strings handed to the system shell;
// this tool never parses them.
package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner executes a single shell command. Failure is a boolean
// signal: a non-nil error means the command reported failure, with no
// further classification.
type Runner interface {
	Run(command string) error
}

// Local runs commands on the local system through `sh -c`, streaming
// output to the configured writers.
type Local struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewLocal returns a Local wired to the process's stdout and stderr.
func NewLocal() *Local {
	return &Local{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (l *Local) Run(command string) error {
	cmd := exec.Command("sh", "-c", command)
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", command, err)
	}
	return nil
}
