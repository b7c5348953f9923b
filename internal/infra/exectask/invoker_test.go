package exectask

import (
	"context"
	"os"
	"path/filepath"
	"taskloop/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func openOut(t *testing.T, dir string) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestInvokeSuccess(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "task.sh", `echo hello`)

	inv := New("/bin/sh", script, "")
	out := openOut(t, dir)
	inv.Stdout = out

	run, err := inv.Invoke(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.StatusDone, run.Status)
	require.Equal(t, 0, run.ExitCode)
	require.NotEmpty(t, run.ID)
	require.False(t, run.FinishedAt.Before(run.StartedAt))

	b, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(b))
}

func TestInvokeNonZeroExitIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "task.sh", `exit 7`)

	inv := New("/bin/sh", script, "")
	run, err := inv.Invoke(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.StatusFailed, run.Status)
	require.Equal(t, 7, run.ExitCode)
}

func TestInvokeMissingInterpreter(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "task.sh", `exit 0`)

	inv := New(filepath.Join(dir, "no-such-interpreter"), script, "")
	run, err := inv.Invoke(context.Background())
	require.Error(t, err)
	require.Equal(t, domain.StatusNotStarted, run.Status)
	require.NotEmpty(t, run.StartError)
}

func TestInvokeDefaultsToScriptDirectory(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "task.sh", `pwd > "$1"`)
	outPath := filepath.Join(dir, "cwd.txt")

	inv := New("/bin/sh", script, "", outPath)
	run, err := inv.Invoke(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.StatusDone, run.Status)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)

	got, err := filepath.EvalSymlinks(string(b[:len(b)-1]))
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestInvokeCancelKillsChild(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "task.sh", `sleep 30`)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	inv := New("/bin/sh", script, "")
	start := time.Now()
	run, err := inv.Invoke(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, domain.StatusFailed, run.Status)
	require.Less(t, time.Since(start), 5*time.Second)
}
