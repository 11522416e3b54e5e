package executor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/futureCreator/checkrun/internal/log"
)

func newObservedLogger(t *testing.T) (*log.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return log.Wrap(zap.New(core)), logs
}

func TestRunSuccessNoOutput(t *testing.T) {
	lg, logs := newObservedLogger(t)
	r := &Runner{}

	err := r.Run(context.Background(), lg, Command{
		Program:     "sh",
		Args:        []string{"-c", "exit 0"},
		Description: "Doing nothing.",
	})
	require.NoError(t, err)

	records := logs.All()
	require.Len(t, records, 1)
	assert.Equal(t, zapcore.InfoLevel, records[0].Level)
	assert.Equal(t, "Doing nothing.", records[0].Message)
}

func TestRunSuccessLogsStdout(t *testing.T) {
	lg, logs := newObservedLogger(t)
	r := &Runner{}

	err := r.Run(context.Background(), lg, Command{
		Program:     "sh",
		Args:        []string{"-c", "echo hello"},
		Description: "Greeting.",
	})
	require.NoError(t, err)

	records := logs.All()
	require.Len(t, records, 1)
	assert.Equal(t, "Greeting.\nhello\n", records[0].Message)
}

func TestRunFailureLogsStderrAtErrorLevel(t *testing.T) {
	lg, logs := newObservedLogger(t)
	r := &Runner{}

	err := r.Run(context.Background(), lg, Command{
		Program:     "sh",
		Args:        []string{"-c", "echo boom >&2; exit 1"},
		Description: "Exploding.",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))

	records := logs.All()
	require.Len(t, records, 1)
	assert.Equal(t, zapcore.ErrorLevel, records[0].Level)
	assert.Equal(t, "Exploding.\nboom\n", records[0].Message)
}

func TestRunLaunchFailure(t *testing.T) {
	lg, logs := newObservedLogger(t)
	r := &Runner{}

	err := r.Run(context.Background(), lg, Command{
		Program:     "checkrun-no-such-binary",
		Description: "Launching a missing program.",
	})
	require.Error(t, err)

	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Equal(t, "checkrun-no-such-binary", launchErr.Program)
	assert.False(t, errors.Is(err, ErrCommandFailed))

	// Environment errors are escalated by the caller, not logged as outcomes.
	assert.Empty(t, logs.All())
}

func TestRunRespectsDirAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), nil, 0o644))

	lg := log.NewNop()
	r := &Runner{Dir: dir, Env: []string{"CHECKRUN_PROBE=yes"}}

	err := r.Run(context.Background(), lg, Command{
		Program:     "sh",
		Args:        []string{"-c", `test -f marker && test "$CHECKRUN_PROBE" = yes`},
		Description: "Probing the working directory and environment.",
	})
	require.NoError(t, err)
}
