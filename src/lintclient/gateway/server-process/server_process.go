// Package serverprocess starts the analysis server and hands back the stream it dials in on.
package serverprocess

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"strconv"

	"github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"github.com/uber/lint-client/src/lintclient/internal/executor"
	"github.com/uber/lint-client/src/lintclient/internal/outputwriter"
	"github.com/uber/lint-client/src/lintclient/internal/serverinfofile"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const _serverLoggerName = "analysis-server"

// Module provides the Launcher.
var Module = fx.Provide(New)

// Params are the dependencies of the Launcher.
type Params struct {
	fx.In

	Executor executor.Executor
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
	// ServerInfo records the port and pid of the running server for other tools.
	ServerInfo serverinfofile.ServerInfoFile `optional:"true"`
}

// LaunchParams describe one analysis server process.
type LaunchParams struct {
	Runtime   entity.RuntimeRequirement
	Artifacts entity.AnalyzerArtifacts
	Settings  entity.Settings
}

// ProcessExit is published when the analysis server process terminates.
type ProcessExit struct {
	PID      int
	ExitCode int
	Err      error
}

// Launcher starts the analysis server.
type Launcher interface {
	// Launch listens on an ephemeral loopback port, starts the server with that port as an argument,
	// and returns the first connection accepted on it. There is no accept timeout: Launch returns early
	// only if ctx is cancelled or the process exits before connecting.
	Launch(ctx context.Context, p LaunchParams) (io.ReadWriteCloser, error)
	// OnExit subscribes to process terminations.
	OnExit(l event.Listener[ProcessExit]) event.Disposable
}

type launcher struct {
	executor executor.Executor
	logger   *zap.SugaredLogger
	stats    tally.Scope
	info     serverinfofile.ServerInfoFile
	exits    event.Emitter[ProcessExit]
	listen   func(ctx context.Context) (net.Listener, error)
	wait     func(cmd *exec.Cmd) error
	kill     func(cmd *exec.Cmd) error
}

// New creates a Launcher.
func New(p Params) Launcher {
	return &launcher{
		executor: p.Executor,
		logger:   p.Logger,
		stats:    p.Stats.SubScope("server_process"),
		info:     p.ServerInfo,
		listen: func(ctx context.Context) (net.Listener, error) {
			var lc net.ListenConfig
			return lc.Listen(ctx, "tcp", "127.0.0.1:0")
		},
		wait: func(cmd *exec.Cmd) error { return cmd.Wait() },
		kill: func(cmd *exec.Cmd) error {
			if cmd.Process == nil {
				return nil
			}
			return cmd.Process.Kill()
		},
	}
}

func (l *launcher) OnExit(listener event.Listener[ProcessExit]) event.Disposable {
	return l.exits.Subscribe(listener)
}

type acceptResult struct {
	conn net.Conn
	err  error
}

func (l *launcher) Launch(ctx context.Context, p LaunchParams) (io.ReadWriteCloser, error) {
	ln, err := l.listen(ctx)
	if err != nil {
		return nil, &errors.TransportError{Stage: "listen", Err: err}
	}
	port := ln.Addr().(*net.TCPAddr).Port

	args, err := BuildArgs(ArgsParams{
		VMArgs:    p.Settings.Runtime.VMArgs,
		Implicit:  ImplicitArgs(p.Settings),
		ServerJar: p.Artifacts.ServerJar,
		Port:      port,
		Artifacts: p.Artifacts,
	})
	if err != nil {
		ln.Close()
		return nil, &errors.TransportError{Stage: "arguments", Err: err}
	}

	cmd := exec.Command(p.Runtime.JavaExecutable, args...)
	var writers []io.Closer
	if p.Settings.Output.ShowVerboseLogs {
		serverLogger := l.logger.Named(_serverLoggerName)
		stdout := outputwriter.New(serverLogger)
		stderr := outputwriter.NewAtLevel(serverLogger, zapcore.WarnLevel)
		cmd.Stdout, cmd.Stderr = stdout, stderr
		writers = append(writers, stdout, stderr)
	}

	if err := l.executor.Start(cmd); err != nil {
		ln.Close()
		l.stats.Counter("spawn_failures").Inc(1)
		return nil, &errors.TransportError{Stage: "spawn", Err: err}
	}
	l.logger.Infow("analysis server started", "port", port, "pid", pid(cmd))

	exited := make(chan struct{})
	go l.reap(cmd, exited, writers)

	accepted := make(chan acceptResult, 1)
	go func() {
		conn, err := ln.Accept()
		accepted <- acceptResult{conn: conn, err: err}
	}()

	var r acceptResult
	select {
	case r = <-accepted:
	case <-ctx.Done():
		ln.Close()
		r = <-accepted
		if r.err == nil {
			r.conn.Close()
		}
		l.abandon(cmd)
		return nil, &errors.TransportError{Stage: "accept", Err: ctx.Err()}
	case <-exited:
		ln.Close()
		r = <-accepted
		if r.err != nil {
			return nil, &errors.TransportError{Stage: "accept", Err: fmt.Errorf("process exited before connecting: %w", r.err)}
		}
	}
	ln.Close()

	if r.err != nil {
		l.abandon(cmd)
		return nil, &errors.TransportError{Stage: "accept", Err: r.err}
	}
	l.stats.Counter("connections").Inc(1)
	l.recordInfo(map[string]string{
		serverinfofile.FieldPort:      strconv.Itoa(port),
		serverinfofile.FieldPID:       strconv.Itoa(pid(cmd)),
		serverinfofile.FieldJavaHome:  p.Runtime.JavaHome,
		serverinfofile.FieldServerJar: p.Artifacts.ServerJar,
	})
	return r.conn, nil
}

// abandon kills a child that will never be connected to. reap collects it.
func (l *launcher) abandon(cmd *exec.Cmd) {
	l.stats.Counter("abandoned").Inc(1)
	if err := l.kill(cmd); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
		l.logger.Warnw("killing analysis server", "pid", pid(cmd), zap.Error(err))
	}
}

func (l *launcher) reap(cmd *exec.Cmd, exited chan<- struct{}, writers []io.Closer) {
	waitErr := l.wait(cmd)
	for _, w := range writers {
		w.Close()
	}
	close(exited)

	exit := ProcessExit{PID: pid(cmd), ExitCode: -1, Err: waitErr}
	if cmd.ProcessState != nil {
		exit.ExitCode = cmd.ProcessState.ExitCode()
	}
	l.stats.Counter("exits").Inc(1)
	l.logger.Infow("analysis server exited", "pid", exit.PID, "exitCode", exit.ExitCode, zap.Error(waitErr))

	if l.info != nil {
		if err := l.info.Delete(serverinfofile.FieldPort, serverinfofile.FieldPID); err != nil {
			l.logger.Warnw("clearing server info", zap.Error(err))
		}
	}

	if err := l.exits.Emit(exit); err != nil {
		l.logger.Warnw("process exit listener failed", zap.Error(err))
	}
}

func (l *launcher) recordInfo(fields map[string]string) {
	if l.info == nil {
		return
	}
	if err := l.info.Update(fields); err != nil {
		l.logger.Warnw("recording server info", zap.Error(err))
	}
}

func pid(cmd *exec.Cmd) int {
	if cmd.Process == nil {
		return 0
	}
	return cmd.Process.Pid
}
