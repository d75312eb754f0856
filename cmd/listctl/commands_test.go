package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenalist/infra/logging"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := execute(t, args...)
	return out, err
}

// execute runs the command tree and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { logging.SetLogger(nil) })

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "push_front 0  [0 1 2] size=3")
	assert.Contains(t, out, "pop_back      [0 1] size=2")
}

func TestDemo_ArenaTooSmall(t *testing.T) {
	_, err := run(t, "demo", "--arena-bytes", "8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "push_back 1")
}

func TestFill(t *testing.T) {
	out, err := run(t, "fill", "--count", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "built 3 elements")
	assert.Contains(t, out, "allocations=3 outstanding=3")
}

func TestFill_RollsBack(t *testing.T) {
	out, logs, err := execute(t, "fill", "--count", "100", "--arena-bytes", "256", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "rolled back")
	assert.Contains(t, out, "outstanding=0")

	assert.Contains(t, logs, "arena exhausted")
	assert.Contains(t, logs, `msg="list: rolling back"`)
	assert.Contains(t, logs, "op=NewN")
}

func TestFill_QuietByDefault(t *testing.T) {
	_, logs, err := execute(t, "fill", "--count", "100", "--arena-bytes", "256")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestNegativeArenaBytes(t *testing.T) {
	tests := map[string][]string{
		"demo":          {"demo", "--arena-bytes", "-1"},
		"fill":          {"fill", "--arena-bytes", "-1"},
		"snapshot load": {"snapshot", "load", "seq", "--dir", "", "--arena-bytes", "-1"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if args[0] == "snapshot" {
				args[4] = t.TempDir()
			}
			var err error
			require.NotPanics(t, func() { _, err = run(t, args...) })
			require.Error(t, err)
			assert.Contains(t, err.Error(), "arena-bytes must not be negative")
		})
	}
}

func TestFill_NegativeCount(t *testing.T) {
	_, err := run(t, "fill", "--count", "-1")
	assert.Error(t, err)
}

func TestSnapshotCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "snapshot", "save", "seq", "--dir", dir, "--values", "3,1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "saved seq: 3 elements")

	out, err = run(t, "snapshot", "load", "seq", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "seq [3 1 2]")

	out, err = run(t, "snapshot", "ls", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "seq\t3\t")

	_, err = run(t, "snapshot", "load", "seq", "--dir", dir, "--arena-bytes", "16")
	assert.Error(t, err)

	_, err = run(t, "snapshot", "rm", "seq", "--dir", dir)
	require.NoError(t, err)
	_, err = run(t, "snapshot", "load", "seq", "--dir", dir)
	assert.Error(t, err)
}

func TestLogLevelFlag(t *testing.T) {
	_, err := run(t, "demo", "--log-level", "loud")
	assert.Error(t, err)

	var f levelFlag
	require.NoError(t, f.Set("debug"))
	assert.Equal(t, "debug", f.String())
	assert.Equal(t, "level", f.Type())
}
