// Package scm exposes the source-control state of the workspace folders, backed by the git command line.
package scm

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/gateway/host"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"github.com/uber/lint-client/src/lintclient/internal/executor"
	"github.com/uber/lint-client/src/lintclient/internal/filewatch"
	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_gitExecutable   = "git"
	_headFile        = "HEAD"
	_headRefPrefix   = "ref: refs/heads/"
	_debounceTimeout = 100 * time.Millisecond
)

// State is the discovery state of the source-control API.
type State string

const (
	// StateUninitialized means repositories are still being discovered.
	StateUninitialized State = "uninitialized"
	// StateInitialized means every workspace folder has been inspected.
	StateInitialized State = "initialized"
)

// Module provides the git-backed source-control provider.
var Module = fx.Options(
	fx.Provide(New),
)

// Provider hands out the source-control API when source control is available.
type Provider interface {
	// API returns the source-control API, or an error wrapping errors.ErrScmUnavailable.
	API() (API, error)
}

// API reports the repositories found in the workspace.
type API interface {
	State() State
	OnDidChangeState(l event.Listener[State]) event.Disposable
	OnDidOpenRepository(l event.Listener[Repository]) event.Disposable
	Repositories() []Repository
}

// Repository is a single source-control repository.
type Repository interface {
	// Root is the file system path of the working tree.
	Root() string
	// HeadName is the name of the checked out branch, or nil when HEAD is detached or unreadable.
	HeadName() *string
	// OnDidChange fires when the repository state changes.
	OnDidChange(l event.Listener[struct{}]) event.Disposable
	// CheckIgnore reports whether a path is ignored by the repository.
	CheckIgnore(ctx context.Context, path string) (bool, error)
}

// Params are the dependencies of the git provider.
type Params struct {
	fx.In

	Executor  executor.Executor
	FS        fs.LintFS
	Workspace host.Workspace
	Logger    *zap.SugaredLogger
	Lifecycle fx.Lifecycle
}

type gitProvider struct {
	executor  executor.Executor
	fs        fs.LintFS
	workspace host.Workspace
	logger    *zap.SugaredLogger

	mu  sync.Mutex
	api *gitAPI
}

// New creates a Provider backed by the git executable. Repository watchers are released when the application stops.
func New(p Params) Provider {
	provider := newProvider(p.Executor, p.FS, p.Workspace, p.Logger)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Close()
		},
	})
	return provider
}

func newProvider(ex executor.Executor, lintFS fs.LintFS, workspace host.Workspace, logger *zap.SugaredLogger) *gitProvider {
	return &gitProvider{
		executor:  ex,
		fs:        lintFS,
		workspace: workspace,
		logger:    logger.Named("scm"),
	}
}

func (p *gitProvider) API() (API, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.api != nil {
		return p.api, nil
	}

	_, stderr, exitCode, err := p.executor.Run(exec.Command(_gitExecutable, "--version"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrScmUnavailable, err)
	}
	if exitCode != 0 {
		return nil, fmt.Errorf("%w: git exited with %d: %s", errors.ErrScmUnavailable, exitCode, strings.TrimSpace(stderr))
	}

	p.api = &gitAPI{
		provider: p,
		state:    StateUninitialized,
		closing:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go p.api.discover(p.workspace.Folders())
	return p.api, nil
}

// Close stops discovery and releases the repository watchers.
func (p *gitProvider) Close() error {
	p.mu.Lock()
	api := p.api
	p.mu.Unlock()

	if api == nil {
		return nil
	}
	return api.close()
}

// revParse returns the working tree root and the absolute git directory of the repository containing dir.
func (p *gitProvider) revParse(dir string) (string, string, error) {
	stdout, stderr, exitCode, err := p.executor.Run(exec.Command(_gitExecutable, "-C", dir, "rev-parse", "--show-toplevel", "--absolute-git-dir"))
	if err == nil && exitCode != 0 {
		err = fmt.Errorf("git exited with %d: %s", exitCode, strings.TrimSpace(stderr))
	}
	if err != nil {
		return "", "", err
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 2 {
		return "", "", fmt.Errorf("unexpected rev-parse output %q", stdout)
	}
	return filepath.Clean(strings.TrimSpace(lines[0])), filepath.Clean(strings.TrimSpace(lines[1])), nil
}

type gitAPI struct {
	provider *gitProvider

	mu    sync.Mutex
	state State
	repos []*gitRepository

	stateChanges event.Emitter[State]
	opened       event.Emitter[Repository]

	closeOnce sync.Once
	closing   chan struct{}
	done      chan struct{}
}

func (a *gitAPI) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *gitAPI) OnDidChangeState(l event.Listener[State]) event.Disposable {
	return a.stateChanges.Subscribe(l)
}

func (a *gitAPI) OnDidOpenRepository(l event.Listener[Repository]) event.Disposable {
	return a.opened.Subscribe(l)
}

func (a *gitAPI) Repositories() []Repository {
	a.mu.Lock()
	defer a.mu.Unlock()

	repos := make([]Repository, 0, len(a.repos))
	for _, r := range a.repos {
		repos = append(repos, r)
	}
	return repos
}

func (a *gitAPI) discover(folders []entity.WorkspaceFolder) {
	defer close(a.done)
	logger := a.provider.logger

	seen := make(map[string]bool)
	for _, folder := range folders {
		select {
		case <-a.closing:
			return
		default:
		}

		root, gitDir, err := a.provider.revParse(folder.Path)
		if err != nil {
			logger.Debugw("folder is not in a repository", "folder", folder.Path, "error", err)
			continue
		}
		if seen[root] {
			continue
		}
		seen[root] = true

		repo, err := newRepository(a.provider, root, gitDir)
		if err != nil {
			logger.Warnf("Failed to open repository %s: %v", root, err)
			continue
		}

		a.mu.Lock()
		a.repos = append(a.repos, repo)
		a.mu.Unlock()

		logger.Infow("opened repository", "root", root)
		if err := a.opened.Emit(repo); err != nil {
			logger.Errorf("Repository listener failed: %v", err)
		}
	}

	a.mu.Lock()
	a.state = StateInitialized
	a.mu.Unlock()
	if err := a.stateChanges.Emit(StateInitialized); err != nil {
		logger.Errorf("State listener failed: %v", err)
	}
}

func (a *gitAPI) close() error {
	var err error
	a.closeOnce.Do(func() {
		close(a.closing)
		<-a.done

		a.mu.Lock()
		defer a.mu.Unlock()
		for _, r := range a.repos {
			err = multierr.Append(err, r.close())
		}
	})
	return err
}

type gitRepository struct {
	provider *gitProvider
	root     string
	gitDir   string

	changes event.Emitter[struct{}]
	watcher *filewatch.Watcher
}

func newRepository(p *gitProvider, root, gitDir string) (*gitRepository, error) {
	r := &gitRepository{provider: p, root: root, gitDir: gitDir}

	headPath := filepath.Join(gitDir, _headFile)
	w, err := filewatch.New(p.logger, filewatch.Options{
		Match:    func(path string) bool { return filepath.Clean(path) == headPath },
		OnChange: r.onHeadChanged,
		Debounce: _debounceTimeout,
	})
	if err != nil {
		return nil, err
	}
	if err := w.Add(gitDir); err != nil {
		return nil, multierr.Append(err, w.Dispose())
	}
	r.watcher = w
	return r, nil
}

func (r *gitRepository) Root() string { return r.root }

func (r *gitRepository) HeadName() *string {
	content, err := r.provider.fs.ReadFile(filepath.Join(r.gitDir, _headFile))
	if err != nil {
		r.provider.logger.Debugw("reading HEAD", "root", r.root, "error", err)
		return nil
	}
	head := strings.TrimSpace(string(content))
	if !strings.HasPrefix(head, _headRefPrefix) {
		return nil
	}
	name := strings.TrimPrefix(head, _headRefPrefix)
	return &name
}

func (r *gitRepository) OnDidChange(l event.Listener[struct{}]) event.Disposable {
	return r.changes.Subscribe(l)
}

func (r *gitRepository) CheckIgnore(ctx context.Context, path string) (bool, error) {
	cmd := exec.CommandContext(ctx, _gitExecutable, "-C", r.root, "check-ignore", "-q", "--", path)
	_, stderr, exitCode, err := r.provider.executor.Run(cmd)
	switch {
	case exitCode == 0 && err == nil:
		return true, nil
	case exitCode == 1:
		// Not ignored.
		return false, nil
	case err != nil:
		return false, fmt.Errorf("checking ignore status of %s: %w", path, err)
	default:
		return false, fmt.Errorf("checking ignore status of %s: git exited with %d: %s", path, exitCode, strings.TrimSpace(stderr))
	}
}

func (r *gitRepository) onHeadChanged(string) {
	if err := r.changes.Emit(struct{}{}); err != nil {
		r.provider.logger.Errorf("Repository change listener failed: %v", err)
	}
}

func (r *gitRepository) close() error {
	return r.watcher.Dispose()
}
