// Package cfamily derives the build description consumed by the C and C++ analyzers from a compilation database.
package cfamily

import (
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/google/shlex"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/gateway/host"
	lerrors "github.com/uber/lint-client/src/lintclient/internal/errors"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"github.com/uber/lint-client/src/lintclient/internal/filewatch"
	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_dumpDir         = "build-wrapper"
	_dumpVersion     = 0
	_compilerClang   = "clang"
	_compilerText    = "text"
	_debounceTimeout = 500 * time.Millisecond
)

// Module provides the compilation database converter.
var Module = fx.Options(
	fx.Provide(New),
)

// Capture is one compiler invocation of the build description.
type Capture struct {
	Compiler   string   `json:"compiler"`
	Cwd        string   `json:"cwd"`
	Executable string   `json:"executable"`
	Cmd        []string `json:"cmd"`
	Env        []string `json:"env"`
}

// Dump is the build description file.
type Dump struct {
	Version  int       `json:"version"`
	Captures []Capture `json:"captures"`
}

type compileCommand struct {
	Directory string   `json:"directory"`
	Command   string   `json:"command"`
	Arguments []string `json:"arguments"`
	File      string   `json:"file"`
}

// Controller keeps build descriptions in sync with compilation databases.
type Controller interface {
	// Convert writes the build description for a compilation database unless dumpPath is newer than it.
	// It reports whether a file was written.
	Convert(compileCommandsPath, dumpPath string) (bool, error)
	// DumpPath is where the build description of a compilation database is stored.
	DumpPath(compileCommandsPath string) string
	// Watch converts the compilation database now and again whenever it changes.
	Watch(compileCommandsPath string) (event.Disposable, error)
}

// Params are the dependencies of the converter.
type Params struct {
	fx.In

	FS        fs.LintFS
	Workspace host.Workspace
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type controller struct {
	fs         fs.LintFS
	logger     *zap.SugaredLogger
	stats      tally.Scope
	storageDir string
	environ    func() []string
}

// New creates a converter storing build descriptions under the host storage directory.
func New(p Params) Controller {
	return &controller{
		fs:         p.FS,
		logger:     p.Logger.Named("cfamily"),
		stats:      p.Stats.SubScope("cfamily"),
		storageDir: p.Workspace.Environment().StorageDir,
		environ:    os.Environ,
	}
}

func (c *controller) DumpPath(compileCommandsPath string) string {
	id := uuid.NewV5(uuid.NamespaceURL, "file://"+filepath.ToSlash(filepath.Clean(compileCommandsPath)))
	return filepath.Join(c.storageDir, _dumpDir, id.String(), "build-wrapper-dump.json")
}

func (c *controller) Convert(compileCommandsPath, dumpPath string) (bool, error) {
	source, err := c.fs.Stat(compileCommandsPath)
	if err != nil {
		return false, fmt.Errorf("reading compilation database: %w", err)
	}
	dump, err := c.fs.Stat(dumpPath)
	if err == nil && dump.ModTime().After(source.ModTime()) {
		return false, nil
	}
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return false, fmt.Errorf("reading build description: %w", err)
	}

	content, err := c.fs.ReadFile(compileCommandsPath)
	if err != nil {
		return false, fmt.Errorf("reading compilation database: %w", err)
	}
	out, err := c.translate(content)
	if err != nil {
		c.stats.Counter("malformed").Inc(1)
		return false, fmt.Errorf("%w %s: %v", lerrors.ErrMalformedCompilationDatabase, compileCommandsPath, err)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return false, err
	}

	if err := c.fs.MkdirAll(filepath.Dir(dumpPath)); err != nil {
		return false, err
	}
	if err := c.fs.WriteFileAtomic(dumpPath, data); err != nil {
		return false, fmt.Errorf("writing build description: %w", err)
	}
	c.stats.Counter("converted").Inc(1)
	c.logger.Infow("wrote build description", "source", compileCommandsPath, "dump", dumpPath, "captures", len(out.Captures))
	return true, nil
}

func (c *controller) translate(content []byte) (*Dump, error) {
	var commands []compileCommand
	if err := json.Unmarshal(content, &commands); err != nil {
		return nil, err
	}

	env := c.environ()
	out := &Dump{Version: _dumpVersion, Captures: make([]Capture, 0, len(commands))}
	for i, cmd := range commands {
		args := cmd.Arguments
		if len(args) == 0 {
			var err error
			if args, err = shlex.Split(cmd.Command); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("entry %d has neither command nor arguments", i)
		}
		out.Captures = append(out.Captures, Capture{
			Compiler:   compilerKind(args[0]),
			Cwd:        cmd.Directory,
			Executable: args[0],
			Cmd:        args,
			Env:        env,
		})
	}
	return out, nil
}

func compilerKind(executable string) string {
	if strings.Contains(filepath.Base(executable), _compilerClang) {
		return _compilerClang
	}
	return _compilerText
}

func (c *controller) Watch(compileCommandsPath string) (event.Disposable, error) {
	path := filepath.Clean(compileCommandsPath)
	dumpPath := c.DumpPath(path)
	c.convertAndLog(path, dumpPath)

	w, err := filewatch.New(c.logger, filewatch.Options{
		Match:    func(p string) bool { return filepath.Clean(p) == path },
		OnChange: func(string) { c.convertAndLog(path, dumpPath) },
		Debounce: _debounceTimeout,
	})
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Dispose()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return event.DisposableFunc(w.Dispose), nil
}

func (c *controller) convertAndLog(path, dumpPath string) {
	if _, err := c.Convert(path, dumpPath); err != nil {
		c.logger.Warnf("Failed to convert compilation database: %v", err)
	}
}
