package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"
)

// IsExitCode reports whether err wraps an *exec.ExitError with the given exit code.
func IsExitCode(err error, code int) bool {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode() == code
	}
	return false
}

//go:generate moq -out exec_mock.go . Executor

// Executor abstracts command execution for testing.
type Executor interface {
	LookPath(name string) error
	Output(ctx context.Context, name string, args ...string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
}

var _ Executor = (*DefaultExecutor)(nil)

// DefaultExecutor implements Executor using os/exec.
// Commands run in Dir when it is set, otherwise in the process working directory.
type DefaultExecutor struct {
	Dir string
}

func NewDefaultExecutor() *DefaultExecutor {
	return &DefaultExecutor{}
}

// InDir returns a copy of the executor that runs commands in dir.
func (e *DefaultExecutor) InDir(dir string) *DefaultExecutor {
	return &DefaultExecutor{Dir: dir}
}

func (e *DefaultExecutor) LookPath(name string) error {
	_, err := osexec.LookPath(name)
	if err != nil {
		return fmt.Errorf("command not found: %s", name)
	}
	return nil
}

func wrapExecError(err error, stderr string) error {
	errMsg := strings.TrimSpace(stderr)
	if errMsg != "" {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	return err
}

func (e *DefaultExecutor) command(ctx context.Context, name string, args ...string) *osexec.Cmd {
	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	return cmd
}

func (e *DefaultExecutor) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := e.command(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", wrapExecError(err, stderr.String())
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}

func (e *DefaultExecutor) Run(ctx context.Context, name string, args ...string) error {
	cmd := e.command(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return wrapExecError(err, stderr.String())
	}
	return nil
}
