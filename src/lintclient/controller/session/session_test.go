package session

import (
	"context"
	"encoding/json"
	stderr "errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/factory"
	"github.com/uber/lint-client/src/lintclient/gateway/host/hostmock"
	lintserver "github.com/uber/lint-client/src/lintclient/gateway/lint-server"
	"github.com/uber/lint-client/src/lintclient/gateway/lint-server/lintservermock"
	"github.com/uber/lint-client/src/lintclient/gateway/settings/settingsmock"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const _timeout = 5 * time.Second

var _environment = entity.HostEnvironment{
	ProductKey:     "lint-client",
	ProductName:    "Lint Client",
	ProductVersion: "4.2.0",
	UIKind:         "desktop",
	StorageDir:     "/var/lib/lint-client",
}

func newParams(t *testing.T, gateway lintserver.Gateway) Params {
	ctrl := gomock.NewController(t)
	workspace := hostmock.NewMockWorkspace(ctrl)
	workspace.EXPECT().Environment().Return(_environment).AnyTimes()
	workspace.EXPECT().Name().Return("shop").AnyTimes()
	workspace.EXPECT().Folders().Return([]entity.WorkspaceFolder{
		{Name: "api", Path: "/ws/api"},
		{Name: "web", Path: "/ws/web"},
	}).AnyTimes()

	store := settingsmock.NewMockStore(ctrl)
	store.EXPECT().Current().Return(entity.Settings{
		Output: entity.OutputSettings{ShowVerboseLogs: true},
		Rules:  entity.RulesConfiguration{"java:S100": {Level: entity.RuleLevelOff}},
	}).AnyTimes()

	state := hostmock.NewMockStateStore(ctrl)
	state.EXPECT().GetBool(entity.StateFirstSecretDetected).Return(true).AnyTimes()

	return Params{
		Gateway:   gateway,
		Workspace: workspace,
		Settings:  store,
		State:     state,
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NoopScope,
	}
}

func pingHandler(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if req.Method() == "lint/ping" {
		return reply(ctx, "pong", nil)
	}
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

func nextMethod(t *testing.T, server *factory.FakeServer) jsonrpc2.Request {
	t.Helper()
	req, err := server.Next(_timeout)
	require.NoError(t, err)
	return req
}

func TestSession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	server := factory.NewFakeServer()
	defer server.Close()

	s := New(newParams(t, lintserver.New(zap.NewNop())))
	assert.Equal(t, entity.SessionStateNotStarted, s.State())
	assert.True(t, stderr.Is(s.DidOpen(ctx, protocol.TextDocumentItem{}), errors.ErrSessionNotReady), "no traffic before start")

	require.NoError(t, s.Start(ctx, server.ClientEnd(), pingHandler))
	assert.Equal(t, entity.SessionStateReady, s.State())
	assert.True(t, stderr.Is(s.Start(ctx, server.ClientEnd(), pingHandler), errors.ErrSessionAlreadyStarted))

	initialize := nextMethod(t, server)
	require.Equal(t, protocol.MethodInitialize, initialize.Method())
	var params struct {
		ClientInfo            protocol.ClientInfo          `json:"clientInfo"`
		RootURI               string                       `json:"rootUri"`
		WorkspaceFolders      []protocol.WorkspaceFolder   `json:"workspaceFolders"`
		InitializationOptions entity.InitializationOptions `json:"initializationOptions"`
	}
	require.NoError(t, json.Unmarshal(initialize.Params(), &params))
	assert.Equal(t, protocol.ClientInfo{Name: "Lint Client", Version: "4.2.0"}, params.ClientInfo)
	assert.Equal(t, "file:///ws/api", params.RootURI)
	assert.Equal(t, []protocol.WorkspaceFolder{{URI: "file:///ws/api", Name: "api"}, {URI: "file:///ws/web", Name: "web"}}, params.WorkspaceFolders)
	assert.Equal(t, entity.InitializationOptions{
		ProductKey:          "lint-client",
		TelemetryStorage:    "/var/lib/lint-client/telemetry",
		ProductName:         "Lint Client",
		ProductVersion:      "4.2.0",
		WorkspaceName:       "shop",
		FirstSecretDetected: true,
		ShowVerboseLogs:     true,
		Rules:               entity.RulesConfiguration{"java:S100": {Level: entity.RuleLevelOff}},
		AdditionalAttributes: entity.AdditionalAttributes{
			Host: map[string]string{"uiKind": "desktop", "remoteName": ""},
		},
	}, params.InitializationOptions)
	assert.Equal(t, protocol.MethodInitialized, nextMethod(t, server).Method())

	var pong string
	require.NoError(t, server.Call(ctx, "lint/ping", nil, &pong))
	assert.Equal(t, "pong", pong, "server requests reach the handler")
	assert.Error(t, server.Call(ctx, "lint/unknown", nil, nil))

	require.NoError(t, s.DidOpen(ctx, protocol.TextDocumentItem{URI: "file:///ws/api/A.java", LanguageID: "java", Version: 1}))
	assert.Equal(t, protocol.MethodTextDocumentDidOpen, nextMethod(t, server).Method())
	require.NoError(t, s.DidClose(ctx, protocol.TextDocumentIdentifier{URI: "file:///ws/api/A.java"}))
	assert.Equal(t, protocol.MethodTextDocumentDidClose, nextMethod(t, server).Method())
	require.NoError(t, s.DidChangeConfiguration(ctx, map[string]interface{}{}))
	assert.Equal(t, protocol.MethodWorkspaceDidChangeConfiguration, nextMethod(t, server).Method())

	branch := "main"
	require.NoError(t, s.DidLocalBranchNameChange(ctx, "file:///ws/api", &branch))
	notification := nextMethod(t, server)
	assert.Equal(t, entity.MethodDidLocalBranchNameChange, notification.Method())
	assert.JSONEq(t, `{"folderUri":"file:///ws/api","branchName":"main"}`, string(notification.Params()))

	require.NoError(t, s.Stop(ctx))
	assert.Equal(t, protocol.MethodShutdown, nextMethod(t, server).Method())
	assert.Equal(t, protocol.MethodExit, nextMethod(t, server).Method())
	assert.Equal(t, entity.SessionStateStopped, s.State())
	assert.True(t, stderr.Is(s.DidChangeConfiguration(ctx, nil), errors.ErrSessionNotReady))

	require.NoError(t, s.Stop(ctx), "stopping twice is a no-op")
}

func TestSession_StopBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(newParams(t, lintservermock.NewMockGateway(ctrl)))
	assert.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, entity.SessionStateNotStarted, s.State())
}

func TestSession_InitializeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := lintservermock.NewMockGateway(ctrl)
	gateway.EXPECT().RegisterConn(gomock.Any())
	gateway.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(nil, stderr.New("connection reset"))
	gateway.EXPECT().DeregisterConn()

	clientEnd, serverEnd := net.Pipe()
	defer serverEnd.Close()

	s := New(newParams(t, gateway))
	err := s.Start(context.Background(), clientEnd, pingHandler)
	assert.True(t, errors.IsTransportError(err))
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, entity.SessionStateStopped, s.State())

	// A failed session can be started again.
	gateway.EXPECT().RegisterConn(gomock.Any())
	gateway.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(&protocol.InitializeResult{}, nil)
	gateway.EXPECT().Initialized(gomock.Any()).Return(stderr.New("broken pipe"))
	gateway.EXPECT().DeregisterConn()

	retryClient, retryServer := net.Pipe()
	defer retryServer.Close()
	assert.True(t, errors.IsTransportError(s.Start(context.Background(), retryClient, pingHandler)))
}

func TestSession_TransportClosedByServer(t *testing.T) {
	ctx := context.Background()
	server := factory.NewFakeServer()

	s := New(newParams(t, lintserver.New(zap.NewNop())))
	closed := make(chan error, 1)
	s.OnDidClose(func(err error) { closed <- err })

	require.NoError(t, s.Start(ctx, server.ClientEnd(), pingHandler))
	require.NoError(t, server.Close())

	select {
	case <-closed:
	case <-time.After(_timeout):
		t.Fatal("close not reported")
	}
	assert.Equal(t, entity.SessionStateStopped, s.State())
	assert.NoError(t, s.Stop(ctx), "nothing left to stop")
}
