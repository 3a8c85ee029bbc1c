// Package lintserver sends requests and notifications to the analysis server over the session connection.
package lintserver

import (
	"context"
	"fmt"
	"sync"

	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _errSendToServer = "sending call/notification to analysis server: %w"

// Module provides the analysis server gateway.
var Module = fx.Provide(func(logger *zap.SugaredLogger) Gateway {
	return New(logger.Desugar().Named("lint-server"))
})

// Gateway is used to send outbound calls and notifications to the analysis server.
// Calls fail with errors.ErrSessionNotReady while no connection is registered.
type Gateway interface {
	// RegisterConn routes outbound traffic through conn. Should be called once per transport.
	RegisterConn(conn jsonrpc2.Conn)
	// DeregisterConn removes the registered connection.
	DeregisterConn()

	Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error)
	Initialized(ctx context.Context) error
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error
	DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error
	DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error
	DidChangeConfiguration(ctx context.Context, params *protocol.DidChangeConfigurationParams) error
	DidLocalBranchNameChange(ctx context.Context, params *entity.BranchNameChangeParams) error
}

type gateway struct {
	mu     sync.Mutex
	conn   jsonrpc2.Conn
	server protocol.Server
	logger *zap.Logger
}

// New returns a Gateway with no registered connection.
func New(logger *zap.Logger) Gateway {
	return &gateway{logger: logger}
}

func (g *gateway) RegisterConn(conn jsonrpc2.Conn) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.conn = conn
	g.server = protocol.ServerDispatcher(conn, g.logger)
}

func (g *gateway) DeregisterConn() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.conn = nil
	g.server = nil
}

func (g *gateway) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s, _, err := g.get()
	if err != nil {
		return nil, fmt.Errorf(_errSendToServer, err)
	}
	return s.Initialize(ctx, params)
}

func (g *gateway) Initialized(ctx context.Context) error {
	s, _, err := g.get()
	if err != nil {
		return fmt.Errorf(_errSendToServer, err)
	}
	return s.Initialized(ctx, &protocol.InitializedParams{})
}

func (g *gateway) Shutdown(ctx context.Context) error {
	s, _, err := g.get()
	if err != nil {
		return fmt.Errorf(_errSendToServer, err)
	}
	return s.Shutdown(ctx)
}

func (g *gateway) Exit(ctx context.Context) error {
	s, _, err := g.get()
	if err != nil {
		return fmt.Errorf(_errSendToServer, err)
	}
	return s.Exit(ctx)
}

func (g *gateway) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s, _, err := g.get()
	if err != nil {
		return fmt.Errorf(_errSendToServer, err)
	}
	return s.DidOpen(ctx, params)
}

func (g *gateway) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s, _, err := g.get()
	if err != nil {
		return fmt.Errorf(_errSendToServer, err)
	}
	return s.DidClose(ctx, params)
}

func (g *gateway) DidChangeConfiguration(ctx context.Context, params *protocol.DidChangeConfigurationParams) error {
	s, _, err := g.get()
	if err != nil {
		return fmt.Errorf(_errSendToServer, err)
	}
	return s.DidChangeConfiguration(ctx, params)
}

func (g *gateway) DidLocalBranchNameChange(ctx context.Context, params *entity.BranchNameChangeParams) error {
	_, conn, err := g.get()
	if err != nil {
		return fmt.Errorf(_errSendToServer, err)
	}
	g.logger.Debug("send "+entity.MethodDidLocalBranchNameChange, zap.Any("params", params))
	return conn.Notify(ctx, entity.MethodDidLocalBranchNameChange, params)
}

func (g *gateway) get() (protocol.Server, jsonrpc2.Conn, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.server == nil {
		return nil, nil, errors.ErrSessionNotReady
	}
	return g.server, g.conn, nil
}
