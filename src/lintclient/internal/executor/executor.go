package executor

import (
	"bytes"
	"io"
	"os/exec"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides a module to inject using fx.
var Module = fx.Provide(func(logger *zap.SugaredLogger) Executor {
	return NewExecutor(WithLogger(logger.Named("exec")))
})

// Executor wraps the execution of "os/exec".Cmd's to log every invocation and to make callers testable.
type Executor interface {
	// Run logs and executes cmd, capturing its Stdout and Stderr.
	Run(cmd *exec.Cmd) (stdout string, stderr string, exitCode int, err error)
	// Start logs and starts cmd without waiting for it to exit.
	Start(cmd *exec.Cmd) error
}

type executorImp struct {
	Logger    *zap.SugaredLogger
	ExecFunc  func(cmd *exec.Cmd) error
	StartFunc func(cmd *exec.Cmd) error
}

// Option defines options to customize executorImp's behavior
type Option func(*executorImp)

// WithLogger overrides the default noop logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(executor *executorImp) {
		executor.Logger = logger
	}
}

// WithExecFunc provides customized exec behavior for Run.
func WithExecFunc(execFunc func(cmd *exec.Cmd) error) Option {
	return func(executor *executorImp) {
		executor.ExecFunc = execFunc
	}
}

// WithStartFunc provides customized exec behavior for Start.
func WithStartFunc(startFunc func(cmd *exec.Cmd) error) Option {
	return func(executor *executorImp) {
		executor.StartFunc = startFunc
	}
}

// NewExecutor creates an Executor that runs commands for real unless overridden by options.
func NewExecutor(opts ...Option) Executor {
	executor := &executorImp{
		Logger:    zap.NewNop().Sugar(),
		ExecFunc:  func(cmd *exec.Cmd) error { return cmd.Run() },
		StartFunc: func(cmd *exec.Cmd) error { return cmd.Start() },
	}
	for _, opt := range opts {
		opt(executor)
	}
	return executor
}

func (l *executorImp) Run(cmd *exec.Cmd) (stdout string, stderr string, exitCode int, err error) {
	if err := l.logCommand(cmd); err != nil {
		return "", "", -1, err
	}

	var stdoutB, stderrB bytes.Buffer
	cmd.Stdout = &stdoutB
	cmd.Stderr = &stderrB
	err = l.ExecFunc(cmd)

	exitCode = -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	return stdoutB.String(), stderrB.String(), exitCode, err
}

func (l *executorImp) Start(cmd *exec.Cmd) error {
	if err := l.logCommand(cmd); err != nil {
		return err
	}
	return l.StartFunc(cmd)
}

// logCommand logs Path, Dir, Args and Stdin (if available). Stdin is restored after being read.
func (l *executorImp) logCommand(cmd *exec.Cmd) error {
	var args []string
	if len(cmd.Args) > 1 {
		args = cmd.Args[1:]
	}
	logKeysAndValues := []interface{}{
		"path", cmd.Path,
		"dir", cmd.Dir,
		"args", args,
	}

	if cmd.Stdin != nil {
		stdinBytes, err := io.ReadAll(cmd.Stdin)
		if err != nil {
			return err
		}
		logKeysAndValues = append(logKeysAndValues, "stdin", string(stdinBytes))
		cmd.Stdin = bytes.NewReader(stdinBytes)
	}

	l.Logger.Debugw("exec", logKeysAndValues...)
	return nil
}
