// Package scmbridge keeps the analysis server informed of the checked out branch of every workspace folder.
package scmbridge

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/gateway/host"
	"github.com/uber/lint-client/src/lintclient/gateway/scm"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"github.com/uber/lint-client/src/lintclient/mapper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the bridge factory.
var Module = fx.Options(
	fx.Provide(NewFactory),
)

// Bridge answers branch and ignore queries and pushes branch changes to the server.
type Bridge interface {
	// GetBranchNameForFolder returns the branch checked out in the repository containing the folder, or nil.
	GetBranchNameForFolder(folderURI string) *string
	// IsIgnored reports whether source control ignores a file. Failures count as not ignored.
	IsIgnored(ctx context.Context, fileURI string) bool
	// Dispose releases every subscription.
	Dispose() error
}

// Notifier receives branch changes.
type Notifier interface {
	DidLocalBranchNameChange(ctx context.Context, folderURI string, branchName *string) error
}

// Factory creates a bridge for a session.
type Factory interface {
	Create(notifier Notifier) Bridge
}

// Params are the dependencies of the bridge. Source control is optional.
type Params struct {
	fx.In

	Provider  scm.Provider `optional:"true"`
	Workspace host.Workspace
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type factory struct {
	params Params
}

// NewFactory creates a Factory.
func NewFactory(p Params) Factory {
	return &factory{params: p}
}

func (f *factory) Create(notifier Notifier) Bridge {
	return New(f.params, notifier)
}

// New selects the bridge variant: a functioning bridge when source control is available, a no-op bridge otherwise.
func New(p Params, notifier Notifier) Bridge {
	logger := p.Logger.Named("scm-bridge")
	if p.Provider == nil {
		logger.Info("source control is not configured, branch tracking is disabled")
		return noopBridge{}
	}
	api, err := p.Provider.API()
	if err != nil {
		logger.Infof("Branch tracking is disabled: %v", err)
		return noopBridge{}
	}

	b := &bridge{
		api:       api,
		notifier:  notifier,
		workspace: p.Workspace,
		logger:    logger,
		stats:     p.Stats.SubScope("scm_bridge"),
		tracked:   make(map[string]scm.Repository),
	}
	b.subscribe(api.OnDidOpenRepository(b.track))
	b.subscribe(api.OnDidChangeState(func(s scm.State) {
		if s == scm.StateInitialized {
			b.enumerate()
		}
	}))
	if api.State() == scm.StateInitialized {
		b.enumerate()
	}
	return b
}

type bridge struct {
	api       scm.API
	notifier  Notifier
	workspace host.Workspace
	logger    *zap.SugaredLogger
	stats     tally.Scope

	mu            sync.Mutex
	disposed      bool
	subscriptions []event.Disposable
	tracked       map[string]scm.Repository
}

func (b *bridge) subscribe(d event.Disposable) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions = append(b.subscriptions, d)
}

func (b *bridge) enumerate() {
	for _, repo := range b.api.Repositories() {
		b.track(repo)
	}
}

// track subscribes to a repository once and pushes its current branch.
func (b *bridge) track(repo scm.Repository) {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		return
	}
	if _, ok := b.tracked[repo.Root()]; ok {
		b.mu.Unlock()
		return
	}
	b.tracked[repo.Root()] = repo
	b.subscriptions = append(b.subscriptions, repo.OnDidChange(func(struct{}) { b.notify(repo) }))
	b.mu.Unlock()

	b.notify(repo)
}

// notify sends the repository branch for every workspace folder under its root.
func (b *bridge) notify(repo scm.Repository) {
	branch := repo.HeadName()
	for _, folder := range b.workspace.Folders() {
		path := absolute(folder.Path)
		if !contains(repo.Root(), path) {
			continue
		}
		folderURI := string(mapper.CodeToProtocol(path))
		if err := b.notifier.DidLocalBranchNameChange(context.Background(), folderURI, branch); err != nil {
			b.logger.Warnf("Failed to send branch of %s: %v", folder.Path, err)
			continue
		}
		b.stats.Counter("branch_notifications").Inc(1)
	}
}

func (b *bridge) GetBranchNameForFolder(folderURI string) *string {
	repo := b.repositoryFor(folderURI)
	if repo == nil {
		return nil
	}
	return repo.HeadName()
}

func (b *bridge) IsIgnored(ctx context.Context, fileURI string) bool {
	path, err := mapper.ProtocolToCode(fileURI)
	if err != nil {
		b.logger.Debugw("ignore check on invalid uri", "uri", fileURI, "error", err)
		return false
	}
	repo := b.repositoryFor(fileURI)
	if repo == nil {
		return false
	}
	ignored, err := repo.CheckIgnore(ctx, path)
	if err != nil {
		b.logger.Debugw("ignore check failed", "path", path, "error", err)
		return false
	}
	return ignored
}

// repositoryFor returns the repository with the longest root containing the path of u.
func (b *bridge) repositoryFor(u string) scm.Repository {
	path, err := mapper.ProtocolToCode(u)
	if err != nil {
		return nil
	}
	var best scm.Repository
	for _, repo := range b.api.Repositories() {
		if contains(repo.Root(), path) && (best == nil || len(repo.Root()) > len(best.Root())) {
			best = repo
		}
	}
	return best
}

func (b *bridge) Dispose() error {
	b.mu.Lock()
	b.disposed = true
	subscriptions := b.subscriptions
	b.subscriptions = nil
	b.mu.Unlock()

	return event.DisposeAll(subscriptions...)
}

// contains reports whether path is root or lies under it. Relative paths are resolved against the working directory.
func contains(root, path string) bool {
	root = absolute(root)
	path = absolute(path)
	return path == root || strings.HasPrefix(path, strings.TrimSuffix(root, string(filepath.Separator))+string(filepath.Separator))
}

func absolute(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

type noopBridge struct{}

func (noopBridge) GetBranchNameForFolder(string) *string { return nil }

func (noopBridge) IsIgnored(context.Context, string) bool { return false }

func (noopBridge) Dispose() error { return nil }
