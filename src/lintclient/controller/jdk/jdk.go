// Package jdk resolves the Java runtime used to launch the analysis server.
package jdk

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/gateway/host"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"github.com/uber/lint-client/src/lintclient/internal/executor"
	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// MinimumMajorVersion is the oldest Java release able to run the analysis server.
	MinimumMajorVersion = 17

	_javaHomeEnv  = "JAVA_HOME"
	_javaCommand  = "java"
	_remediation  = "Open Settings"
	_sourceConfig = "setting"
	_sourceEnv    = "environment"
	_sourcePath   = "path"
)

// _versionPattern matches `version "17.0.2"` as well as the legacy `version "1.8.0_292"`.
var _versionPattern = regexp.MustCompile(`version "(\d+)(?:\.(\d+))?`)

// Module provides the runtime resolver.
var Module = fx.Options(
	fx.Provide(New),
)

// Resolver finds a Java runtime compatible with the analysis server.
type Resolver interface {
	// Resolve returns the runtime to use, or an error wrapping errors.RuntimeUnresolvableError.
	Resolve(ctx context.Context, settings entity.Settings) (entity.RuntimeRequirement, error)
}

// Params are the dependencies of the resolver.
type Params struct {
	fx.In

	Executor executor.Executor
	FS       fs.LintFS
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
}

type resolver struct {
	executor executor.Executor
	fs       fs.LintFS
	logger   *zap.SugaredLogger
	stats    tally.Scope

	getenv   func(string) string
	lookPath func(string) (string, error)
	goos     string
}

// New creates a Resolver that looks at the runtime home setting, then JAVA_HOME, then the PATH.
func New(p Params) Resolver {
	return &resolver{
		executor: p.Executor,
		fs:       p.FS,
		logger:   p.Logger.Named("jdk"),
		stats:    p.Stats.SubScope("jdk"),
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		goos:     runtime.GOOS,
	}
}

func (r *resolver) Resolve(ctx context.Context, settings entity.Settings) (entity.RuntimeRequirement, error) {
	if home := settings.Runtime.Home; home != "" {
		// An explicit setting is never second-guessed by falling back to other locations.
		return r.probe(ctx, _sourceConfig, home)
	}

	if home := r.getenv(_javaHomeEnv); home != "" {
		req, err := r.probe(ctx, _sourceEnv, home)
		if err == nil {
			return req, nil
		}
		r.logger.Warnf("Ignoring %s: %v", _javaHomeEnv, err)
	}

	javaPath, err := r.lookPath(_javaCommand)
	if err != nil {
		r.stats.Counter("unresolved").Inc(1)
		return entity.RuntimeRequirement{}, unresolvable(
			fmt.Sprintf("Java %d or later is required to run the analysis server, but no Java runtime was found", MinimumMajorVersion), err)
	}
	if resolved, err := filepath.EvalSymlinks(javaPath); err == nil {
		javaPath = resolved
	}
	// <home>/bin/java
	return r.probe(ctx, _sourcePath, filepath.Dir(filepath.Dir(javaPath)))
}

func (r *resolver) probe(ctx context.Context, source, home string) (entity.RuntimeRequirement, error) {
	java := r.executable(home)
	exists, err := r.fs.FileExists(java)
	if err != nil || !exists {
		r.stats.Counter("unresolved").Inc(1)
		return entity.RuntimeRequirement{}, unresolvable(
			fmt.Sprintf("The Java runtime home %q from the %s does not contain %s", home, source, filepath.Join("bin", filepath.Base(java))), err)
	}

	_, stderr, exitCode, err := r.executor.Run(exec.CommandContext(ctx, java, "-version"))
	if err == nil && exitCode != 0 {
		err = fmt.Errorf("exited with %d", exitCode)
	}
	if err != nil {
		r.stats.Counter("unresolved").Inc(1)
		return entity.RuntimeRequirement{}, unresolvable(fmt.Sprintf("Failed to run %s -version", java), err)
	}

	major, err := ParseMajorVersion(stderr)
	if err != nil {
		r.stats.Counter("unresolved").Inc(1)
		return entity.RuntimeRequirement{}, unresolvable(fmt.Sprintf("Could not determine the version of %s", java), err)
	}
	if major < MinimumMajorVersion {
		r.stats.Counter("unresolved").Inc(1)
		return entity.RuntimeRequirement{}, unresolvable(
			fmt.Sprintf("Java %d or later is required to run the analysis server, but %s is Java %d", MinimumMajorVersion, java, major), nil)
	}

	req := entity.RuntimeRequirement{JavaHome: home, JavaExecutable: java, MajorVersion: major}
	r.logger.Infow("resolved java runtime", "source", source, "javaHome", home, "majorVersion", major)
	r.stats.Tagged(map[string]string{"source": source}).Counter("resolved").Inc(1)
	return req, nil
}

func (r *resolver) executable(home string) string {
	name := _javaCommand
	if r.goos == "windows" {
		name += ".exe"
	}
	return filepath.Join(home, "bin", name)
}

// ParseMajorVersion extracts the major version from the output of "java -version".
// Legacy "1.x" versions report x.
func ParseMajorVersion(output string) (int, error) {
	m := _versionPattern.FindStringSubmatch(output)
	if m == nil {
		return 0, fmt.Errorf("no version in %q", output)
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	if major == 1 && m[2] != "" {
		return strconv.Atoi(m[2])
	}
	return major, nil
}

func unresolvable(message string, cause error) error {
	return &errors.RuntimeUnresolvableError{
		Message: message,
		Err:     cause,
		Remediation: &errors.Remediation{
			Title:     _remediation,
			Command:   host.CommandOpenSettings,
			Arguments: []string{entity.QualifiedSetting(entity.SettingRuntimeHome)},
		},
	}
}
