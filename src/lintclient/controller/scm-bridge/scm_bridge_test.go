package scmbridge

import (
	"context"
	stderr "errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/gateway/host/hostmock"
	"github.com/uber/lint-client/src/lintclient/gateway/scm"
	"github.com/uber/lint-client/src/lintclient/gateway/scm/scmmock"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"github.com/uber/lint-client/src/lintclient/mapper"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeRepo struct {
	root      string
	mu        sync.Mutex
	head      *string
	changes   event.Emitter[struct{}]
	ignored   map[string]bool
	ignoreErr error
}

func (r *fakeRepo) Root() string { return r.root }

func (r *fakeRepo) HeadName() *string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.head
}

func (r *fakeRepo) OnDidChange(l event.Listener[struct{}]) event.Disposable {
	return r.changes.Subscribe(l)
}

func (r *fakeRepo) CheckIgnore(ctx context.Context, path string) (bool, error) {
	return r.ignored[path], r.ignoreErr
}

func (r *fakeRepo) checkout(branch *string) {
	r.mu.Lock()
	r.head = branch
	r.mu.Unlock()
	r.changes.Emit(struct{}{})
}

type notification struct {
	folderURI string
	branch    *string
}

type recorder struct {
	mu   sync.Mutex
	sent []notification
	err  error
}

func (r *recorder) DidLocalBranchNameChange(ctx context.Context, folderURI string, branchName *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, notification{folderURI: folderURI, branch: branchName})
	return r.err
}

func (r *recorder) take() []notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	sent := r.sent
	r.sent = nil
	return sent
}

func ptr(s string) *string { return &s }

var _folders = []entity.WorkspaceFolder{
	{Name: "a", Path: "/repo/a"},
	{Name: "b", Path: "/repo/b"},
	{Name: "sibling", Path: "/repo2"},
	{Name: "other", Path: "/other"},
}

type fixture struct {
	api       *scmmock.MockAPI
	provider  *scmmock.MockProvider
	workspace *hostmock.MockWorkspace
	notifier  *recorder
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		api:       scmmock.NewMockAPI(ctrl),
		provider:  scmmock.NewMockProvider(ctrl),
		workspace: hostmock.NewMockWorkspace(ctrl),
		notifier:  &recorder{},
	}
	f.provider.EXPECT().API().Return(f.api, nil).AnyTimes()
	f.workspace.EXPECT().Folders().Return(_folders).AnyTimes()
	return f
}

func (f *fixture) params() Params {
	return Params{Provider: f.provider, Workspace: f.workspace, Logger: zap.NewNop().Sugar(), Stats: tally.NoopScope}
}

func TestNew_NoopVariants(t *testing.T) {
	ctrl := gomock.NewController(t)
	failing := scmmock.NewMockProvider(ctrl)
	failing.EXPECT().API().Return(nil, errors.ErrScmUnavailable)

	tests := []struct {
		name     string
		provider scm.Provider
	}{
		{name: "no provider"},
		{name: "provider fails", provider: failing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(Params{Provider: tt.provider, Logger: zap.NewNop().Sugar(), Stats: tally.NoopScope}, &recorder{})
			assert.IsType(t, noopBridge{}, b)
			assert.Nil(t, b.GetBranchNameForFolder("file:///repo/a"))
			assert.False(t, b.IsIgnored(context.Background(), "file:///repo/a/out.txt"))
			assert.NoError(t, b.Dispose())
		})
	}
}

func TestBridge_InitializedAtConstruction(t *testing.T) {
	f := newFixture(t)
	repo := &fakeRepo{root: "/repo", head: ptr("main")}

	f.api.EXPECT().OnDidOpenRepository(gomock.Any()).Return(event.DisposableFunc(func() error { return nil }))
	f.api.EXPECT().OnDidChangeState(gomock.Any()).Return(event.DisposableFunc(func() error { return nil }))
	f.api.EXPECT().State().Return(scm.StateInitialized)
	f.api.EXPECT().Repositories().Return([]scm.Repository{repo}).AnyTimes()

	b := New(f.params(), f.notifier)
	assert.Equal(t, []notification{
		{folderURI: "file:///repo/a", branch: ptr("main")},
		{folderURI: "file:///repo/b", branch: ptr("main")},
	}, f.notifier.take(), "each folder under the root gets exactly one notification")

	repo.checkout(ptr("feature"))
	repo.checkout(nil)
	assert.Equal(t, []notification{
		{folderURI: "file:///repo/a", branch: ptr("feature")},
		{folderURI: "file:///repo/b", branch: ptr("feature")},
		{folderURI: "file:///repo/a"},
		{folderURI: "file:///repo/b"},
	}, f.notifier.take(), "changes are sent in event order, detached HEAD as absent")

	assert.Nil(t, b.GetBranchNameForFolder("file:///repo/a"))
	require.NoError(t, b.Dispose())
	repo.checkout(ptr("main"))
	assert.Empty(t, f.notifier.take(), "no notifications after dispose")
}

func TestBridge_RelativeFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := scmmock.NewMockAPI(ctrl)
	provider := scmmock.NewMockProvider(ctrl)
	workspace := hostmock.NewMockWorkspace(ctrl)
	notifier := &recorder{}

	cwd, err := os.Getwd()
	require.NoError(t, err)
	repo := &fakeRepo{root: cwd, head: ptr("main")}

	provider.EXPECT().API().Return(api, nil)
	workspace.EXPECT().Folders().Return([]entity.WorkspaceFolder{{Name: "here", Path: "."}}).AnyTimes()
	api.EXPECT().OnDidOpenRepository(gomock.Any()).Return(event.DisposableFunc(func() error { return nil }))
	api.EXPECT().OnDidChangeState(gomock.Any()).Return(event.DisposableFunc(func() error { return nil }))
	api.EXPECT().State().Return(scm.StateInitialized)
	api.EXPECT().Repositories().Return([]scm.Repository{repo}).AnyTimes()

	b := New(Params{Provider: provider, Workspace: workspace, Logger: zap.NewNop().Sugar(), Stats: tally.NoopScope}, notifier)
	defer b.Dispose()

	folderURI := string(mapper.CodeToProtocol(cwd))
	assert.Equal(t, []notification{{folderURI: folderURI, branch: ptr("main")}}, notifier.take())

	repo.checkout(ptr("feature"))
	assert.Equal(t, []notification{{folderURI: folderURI, branch: ptr("feature")}}, notifier.take())
	assert.Equal(t, ptr("feature"), b.GetBranchNameForFolder(folderURI))
}

func TestBridge_DeferredUntilInitialized(t *testing.T) {
	f := newFixture(t)
	repo := &fakeRepo{root: "/repo", head: ptr("main")}

	var onState event.Listener[scm.State]
	var onOpen event.Listener[scm.Repository]
	f.api.EXPECT().OnDidOpenRepository(gomock.Any()).DoAndReturn(func(l event.Listener[scm.Repository]) event.Disposable {
		onOpen = l
		return event.DisposableFunc(func() error { return nil })
	})
	f.api.EXPECT().OnDidChangeState(gomock.Any()).DoAndReturn(func(l event.Listener[scm.State]) event.Disposable {
		onState = l
		return event.DisposableFunc(func() error { return nil })
	})
	f.api.EXPECT().State().Return(scm.StateUninitialized)

	b := New(f.params(), f.notifier)
	defer b.Dispose()
	assert.Empty(t, f.notifier.take())

	onState(scm.StateUninitialized)
	assert.Empty(t, f.notifier.take())

	f.api.EXPECT().Repositories().Return([]scm.Repository{repo}).AnyTimes()
	onState(scm.StateInitialized)
	assert.Len(t, f.notifier.take(), 2)

	onOpen(repo)
	assert.Empty(t, f.notifier.take(), "a repository is tracked once")

	nested := &fakeRepo{root: "/repo2", head: ptr("trunk")}
	onOpen(nested)
	assert.Equal(t, []notification{{folderURI: "file:///repo2", branch: ptr("trunk")}}, f.notifier.take())
}

func TestBridge_NotifierFailureDoesNotStopOthers(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.ErrSessionNotReady
	repo := &fakeRepo{root: "/repo", head: ptr("main")}

	f.api.EXPECT().OnDidOpenRepository(gomock.Any()).Return(event.DisposableFunc(func() error { return nil }))
	f.api.EXPECT().OnDidChangeState(gomock.Any()).Return(event.DisposableFunc(func() error { return nil }))
	f.api.EXPECT().State().Return(scm.StateInitialized)
	f.api.EXPECT().Repositories().Return([]scm.Repository{repo})

	b := New(f.params(), f.notifier)
	defer b.Dispose()
	assert.Len(t, f.notifier.take(), 2)
}

func TestBridge_IsIgnored(t *testing.T) {
	f := newFixture(t)
	repo := &fakeRepo{root: "/repo", ignored: map[string]bool{"/repo/a/build/Out.java": true}}
	broken := &fakeRepo{root: "/broken", ignoreErr: stderr.New("fatal: index file corrupt")}

	f.api.EXPECT().OnDidOpenRepository(gomock.Any()).Return(event.DisposableFunc(func() error { return nil }))
	f.api.EXPECT().OnDidChangeState(gomock.Any()).Return(event.DisposableFunc(func() error { return nil }))
	f.api.EXPECT().State().Return(scm.StateUninitialized)
	f.api.EXPECT().Repositories().Return([]scm.Repository{repo, broken}).AnyTimes()

	b := New(f.params(), f.notifier)
	defer b.Dispose()

	tests := []struct {
		name string
		uri  string
		want bool
	}{
		{name: "ignored", uri: "file:///repo/a/build/Out.java", want: true},
		{name: "tracked", uri: "file:///repo/a/src/In.java"},
		{name: "check fails", uri: "file:///broken/x.java"},
		{name: "outside repositories", uri: "file:///tmp/x.java"},
		{name: "not a file uri", uri: "https://example.com/x.java"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsIgnored(context.Background(), tt.uri))
		})
	}
}

func TestBridge_DisposeIsolatesFailures(t *testing.T) {
	f := newFixture(t)
	var calls []string
	f.api.EXPECT().OnDidOpenRepository(gomock.Any()).Return(event.DisposableFunc(func() error {
		calls = append(calls, "open")
		panic("listener already gone")
	}))
	f.api.EXPECT().OnDidChangeState(gomock.Any()).Return(event.DisposableFunc(func() error {
		calls = append(calls, "state")
		return stderr.New("unsubscribe failed")
	}))
	f.api.EXPECT().State().Return(scm.StateInitialized)
	f.api.EXPECT().Repositories().Return(nil)

	b := New(f.params(), f.notifier)
	err := b.Dispose()
	assert.Error(t, err)
	assert.Equal(t, []string{"open", "state"}, calls, "every subscription is released")
}

func TestFactory(t *testing.T) {
	b := NewFactory(Params{Logger: zap.NewNop().Sugar(), Stats: tally.NoopScope}).Create(&recorder{})
	assert.IsType(t, noopBridge{}, b)
}

func TestContains(t *testing.T) {
	assert.True(t, contains("/repo", "/repo"))
	assert.True(t, contains("/repo/", "/repo/a/b"))
	assert.False(t, contains("/repo", "/repo2"))
	assert.False(t, contains("/repo/a", "/repo"))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.True(t, contains(cwd, "."), "relative paths resolve against the working directory")
	assert.True(t, contains(filepath.Dir(cwd), "sub/.."))
}
