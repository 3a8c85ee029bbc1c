package executor

import (
	"errors"
	"io"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func fxExecutor(t *testing.T, opts ...Option) (Executor, *observer.ObservedLogs) {
	var e Executor
	core, recorded := observer.New(zap.DebugLevel)
	logger := zap.New(core).Sugar()

	fxtest.New(t,
		fx.Provide(
			func() Executor {
				return NewExecutor(append([]Option{WithLogger(logger)}, opts...)...)
			},
		),
		fx.Populate(&e),
	).RequireStart().RequireStop()

	return e, recorded
}

func TestRun(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no sh available")
	}
	e, recorded := fxExecutor(t)

	cmd := exec.Command("sh", "-c", "echo out; echo err 1>&2; exit 3")
	cmd.Dir = "/"
	stdout, stderr, code, err := e.Run(cmd)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "out\n", stdout)
	assert.Equal(t, "err\n", stderr)
	assert.Equal(t, 3, code)

	entries := recorded.FilterMessage("exec").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/", entries[0].ContextMap()["dir"])
}

func TestRun_Stdin(t *testing.T) {
	var seen []byte
	e, recorded := fxExecutor(t, WithExecFunc(func(cmd *exec.Cmd) error {
		var err error
		seen, err = io.ReadAll(cmd.Stdin)
		return err
	}))

	cmd := exec.Command("cat")
	cmd.Stdin = strings.NewReader("payload")
	_, _, code, err := e.Run(cmd)
	require.NoError(t, err)
	assert.Equal(t, -1, code, "no process state without a real execution")
	assert.Equal(t, "payload", string(seen), "stdin is restored after logging")
	assert.Equal(t, "payload", recorded.FilterMessage("exec").All()[0].ContextMap()["stdin"])
}

func TestStart(t *testing.T) {
	started := false
	e, recorded := fxExecutor(t, WithStartFunc(func(cmd *exec.Cmd) error {
		started = true
		return nil
	}))

	require.NoError(t, e.Start(exec.Command("java", "-jar", "server.jar")))
	assert.True(t, started)
	assert.Equal(t, 1, recorded.FilterMessage("exec").Len())

	failing, _ := fxExecutor(t, WithStartFunc(func(cmd *exec.Cmd) error {
		return errors.New("fork failed")
	}))
	assert.EqualError(t, failing.Start(exec.Command("java")), "fork failed")
}
