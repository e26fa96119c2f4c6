// Package confirm implements the continue-or-abort checkpoint used by
// the deployment tasks: run a command, and if it fails, ask the
// operator whether the run should carry on.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jbarone/django-skel/internal/shell"
)

// ErrAborted is returned when the operator declines to continue past
// a failed command. It terminates the whole run.
var ErrAborted = errors.New("Stopped execution per user request.")

// Outcome is the result of a confirmation decision.
type Outcome int

const (
	Proceed Outcome = iota
	Abort
)

// Decide is the confirmation rule, separated from command execution
// and terminal I/O. A successful command always proceeds. A failed
// command proceeds when no question was supplied, or when the operator
// accepted; it aborts only on an explicit decline.
func Decide(failed bool, question string, accepted bool) Outcome {
	if !failed || question == "" || accepted {
		return Proceed
	}
	return Abort
}

// Executor runs commands for a task, with an operator on the other
// end of In/Out for confirmation checkpoints.
type Executor struct {
	runner    shell.Runner
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// New returns an Executor reading operator answers from in and
// writing prompts to out. With assumeYes set, every checkpoint is
// auto-accepted and in is never read.
func New(runner shell.Runner, in io.Reader, out io.Writer, assumeYes bool) *Executor {
	return &Executor{
		runner:    runner,
		in:        bufio.NewReader(in),
		out:       out,
		assumeYes: assumeYes,
	}
}

// Run executes command unconditionally; a failure propagates to the
// caller and halts the task.
func (e *Executor) Run(command string) error {
	return e.runner.Run(command)
}

// RunOrConfirm executes command, and on failure asks the operator
// question. Question should be phrased so that "y" means carrying on
// despite the failure. A decline returns ErrAborted; an accept (or an
// empty question) swallows the failure and the caller proceeds.
func (e *Executor) RunOrConfirm(command, question string) error {
	err := e.runner.Run(command)
	if err == nil || question == "" {
		return nil
	}
	if Decide(true, question, e.ask(question)) == Abort {
		return ErrAborted
	}
	return nil
}

// ask prompts once and reads one line. Anything not starting with "y"
// counts as a decline, as does end of input.
func (e *Executor) ask(question string) bool {
	if e.assumeYes {
		return true
	}
	fmt.Fprintf(e.out, "%s [y/n]: ", question)
	line, _ := e.in.ReadString('\n')
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}
