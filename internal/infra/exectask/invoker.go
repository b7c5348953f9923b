package exectask

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"taskloop/internal/domain"
	"taskloop/internal/ports"
	"time"

	"github.com/google/uuid"
)

var _ ports.Invoker = (*Invoker)(nil)

// Invoker runs one external script per call, e.g. "python update.py".
// The child inherits the parent's stdout and stderr; whatever it prints
// lands on the shared streams unwrapped.
type Invoker struct {
	Interpreter string
	Script      string
	Args        []string
	WorkDir     string

	Stdout *os.File
	Stderr *os.File
}

func New(interpreter, script, workDir string, args ...string) *Invoker {
	if workDir == "" {
		workDir = filepath.Dir(script)
	}
	return &Invoker{
		Interpreter: interpreter,
		Script:      script,
		Args:        args,
		WorkDir:     workDir,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// Invoke starts the child and blocks until it exits or ctx is cancelled.
// A non-zero exit is reported in the Run record, not as an error. On
// cancellation the whole process group is killed so a hung child cannot
// outlive the runner.
func (v *Invoker) Invoke(ctx context.Context) (domain.Run, error) {
	run := domain.Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Status:    domain.StatusRunning,
	}

	argv := append([]string{v.Script}, v.Args...)
	cmd := exec.Command(v.Interpreter, argv...)
	cmd.Dir = v.WorkDir
	cmd.Stdout = v.Stdout
	cmd.Stderr = v.Stderr

	// Own process group, so cancellation can kill the whole tree.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		run.FinishedAt = time.Now()
		run.Status = domain.StatusNotStarted
		run.StartError = err.Error()
		return run, fmt.Errorf("starting %s %s: %w", v.Interpreter, v.Script, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		<-done
		run.FinishedAt = time.Now()
		run.Status = domain.StatusFailed
		run.ExitCode = -1
		return run, ctx.Err()
	case err := <-done:
		run.FinishedAt = time.Now()
		if err == nil {
			run.Status = domain.StatusDone
			return run, nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			run.ExitCode = exitErr.ExitCode()
			run.Status = domain.StatusFailed
			return run, nil
		}
		run.Status = domain.StatusNotStarted
		run.StartError = err.Error()
		return run, fmt.Errorf("running %s %s: %w", v.Interpreter, v.Script, err)
	}
}
