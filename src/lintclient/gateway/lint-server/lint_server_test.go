package lintserver

import (
	"context"
	"encoding/json"
	stderr "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/factory"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGateway_NotConnected(t *testing.T) {
	ctx := context.Background()
	g := New(zap.NewNop())

	_, err := g.Initialize(ctx, &protocol.InitializeParams{})
	assert.True(t, stderr.Is(err, errors.ErrSessionNotReady))
	assert.True(t, stderr.Is(g.Initialized(ctx), errors.ErrSessionNotReady))
	assert.True(t, stderr.Is(g.Shutdown(ctx), errors.ErrSessionNotReady))
	assert.True(t, stderr.Is(g.Exit(ctx), errors.ErrSessionNotReady))
	assert.True(t, stderr.Is(g.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{}), errors.ErrSessionNotReady))
	assert.True(t, stderr.Is(g.DidClose(ctx, &protocol.DidCloseTextDocumentParams{}), errors.ErrSessionNotReady))
	assert.True(t, stderr.Is(g.DidChangeConfiguration(ctx, &protocol.DidChangeConfigurationParams{}), errors.ErrSessionNotReady))
	assert.True(t, stderr.Is(g.DidLocalBranchNameChange(ctx, &entity.BranchNameChangeParams{}), errors.ErrSessionNotReady))
}

func TestGateway(t *testing.T) {
	ctx := context.Background()
	server := factory.NewFakeServer()
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(server.ClientEnd()))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	defer func() {
		conn.Close()
		<-conn.Done()
		server.Close()
	}()

	g := New(zap.NewNop())
	g.RegisterConn(conn)

	next := func(method string) json.RawMessage {
		t.Helper()
		req, err := server.Next(5 * time.Second)
		require.NoError(t, err)
		assert.Equal(t, method, req.Method())
		return req.Params()
	}

	result, err := g.Initialize(ctx, &protocol.InitializeParams{ClientInfo: &protocol.ClientInfo{Name: "lint-client"}})
	require.NoError(t, err)
	require.NotNil(t, result.ServerInfo)
	assert.Equal(t, factory.FakeServerName, result.ServerInfo.Name)
	assert.Contains(t, string(next(protocol.MethodInitialize)), `"lint-client"`)

	require.NoError(t, g.Initialized(ctx))
	next(protocol.MethodInitialized)

	require.NoError(t, g.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: "file:///a.java", LanguageID: "java", Version: 1, Text: "class A {}"},
	}))
	assert.Contains(t, string(next(protocol.MethodTextDocumentDidOpen)), `"file:///a.java"`)

	require.NoError(t, g.DidChangeConfiguration(ctx, &protocol.DidChangeConfigurationParams{Settings: map[string]interface{}{"lint": map[string]interface{}{}}}))
	next(protocol.MethodWorkspaceDidChangeConfiguration)

	require.NoError(t, g.DidLocalBranchNameChange(ctx, &entity.BranchNameChangeParams{FolderURI: "file:///ws"}))
	var branch entity.BranchNameChangeParams
	require.NoError(t, json.Unmarshal(next(entity.MethodDidLocalBranchNameChange), &branch))
	assert.Equal(t, "file:///ws", branch.FolderURI)
	assert.Nil(t, branch.BranchName)

	require.NoError(t, g.DidClose(ctx, &protocol.DidCloseTextDocumentParams{TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.java"}}))
	next(protocol.MethodTextDocumentDidClose)

	require.NoError(t, g.Shutdown(ctx))
	next(protocol.MethodShutdown)
	require.NoError(t, g.Exit(ctx))
	next(protocol.MethodExit)

	g.DeregisterConn()
	assert.True(t, stderr.Is(g.Exit(ctx), errors.ErrSessionNotReady))
}
