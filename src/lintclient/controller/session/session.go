// Package session owns the client side of the connection to the analysis server: the handshake, the
// notifications the client originates and the graceful shutdown.
package session

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/gateway/host"
	lintserver "github.com/uber/lint-client/src/lintclient/gateway/lint-server"
	"github.com/uber/lint-client/src/lintclient/gateway/settings"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"github.com/uber/lint-client/src/lintclient/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_telemetryDir = "telemetry"

	_attributeUIKind     = "uiKind"
	_attributeRemoteName = "remoteName"
)

// Module provides the session controller.
var Module = fx.Options(
	fx.Provide(New),
)

// Controller is a single client session. At most one transport is live at a time.
type Controller interface {
	// Start performs the handshake over rwc. Requests from the server are dispatched to handler.
	Start(ctx context.Context, rwc io.ReadWriteCloser, handler jsonrpc2.Handler) error
	// Stop shuts the server down and waits for the transport to close. It is a no-op unless the session is ready.
	Stop(ctx context.Context) error
	State() entity.SessionState
	// OnDidClose is notified when the transport closes without Stop being called.
	OnDidClose(l event.Listener[error]) event.Disposable

	DidOpen(ctx context.Context, item protocol.TextDocumentItem) error
	DidClose(ctx context.Context, doc protocol.TextDocumentIdentifier) error
	DidChangeConfiguration(ctx context.Context, settings interface{}) error
	DidLocalBranchNameChange(ctx context.Context, folderURI string, branchName *string) error
}

// Params are the dependencies of the session.
type Params struct {
	fx.In

	Gateway   lintserver.Gateway
	Workspace host.Workspace
	Settings  settings.Store
	State     host.StateStore
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type controller struct {
	gateway   lintserver.Gateway
	workspace host.Workspace
	settings  settings.Store
	store     host.StateStore
	logger    *zap.SugaredLogger
	stats     tally.Scope

	mu     sync.Mutex
	state  entity.SessionState
	conn   jsonrpc2.Conn
	cancel context.CancelFunc

	closed event.Emitter[error]
}

// New creates a session in the not-started state.
func New(p Params) Controller {
	return &controller{
		gateway:   p.Gateway,
		workspace: p.Workspace,
		settings:  p.Settings,
		store:     p.State,
		logger:    p.Logger.Named("session"),
		stats:     p.Stats.SubScope("session"),
		state:     entity.SessionStateNotStarted,
	}
}

func (c *controller) State() entity.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controller) OnDidClose(l event.Listener[error]) event.Disposable {
	return c.closed.Subscribe(l)
}

func (c *controller) Start(ctx context.Context, rwc io.ReadWriteCloser, handler jsonrpc2.Handler) error {
	c.mu.Lock()
	if c.state == entity.SessionStateStarting || c.state == entity.SessionStateReady {
		c.mu.Unlock()
		return errors.ErrSessionAlreadyStarted
	}
	c.state = entity.SessionStateStarting
	c.mu.Unlock()

	// Computed once; later settings changes are pushed with didChangeConfiguration.
	params := c.initializeParams()

	// Server-to-client requests outlive the ctx of Start.
	connCtx, cancel := context.WithCancel(context.Background())
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(connCtx, protocol.Handlers(handler))
	c.gateway.RegisterConn(conn)

	result, err := c.gateway.Initialize(ctx, params)
	if err == nil {
		err = c.gateway.Initialized(ctx)
	}
	if err != nil {
		c.gateway.DeregisterConn()
		err = multierr.Append(err, conn.Close())
		<-conn.Done()
		cancel()

		c.mu.Lock()
		c.state = entity.SessionStateStopped
		c.mu.Unlock()
		c.stats.Counter("start_failures").Inc(1)
		return &errors.TransportError{Stage: "initialize", Err: err}
	}

	c.mu.Lock()
	c.state = entity.SessionStateReady
	c.conn = conn
	c.cancel = cancel
	c.mu.Unlock()

	go c.monitor(conn)

	c.stats.Counter("starts").Inc(1)
	serverName := ""
	if result != nil && result.ServerInfo != nil {
		serverName = result.ServerInfo.Name
	}
	c.logger.Infow("session ready", "server", serverName)
	return nil
}

// monitor marks the session stopped when the transport closes on its own.
func (c *controller) monitor(conn jsonrpc2.Conn) {
	<-conn.Done()

	c.mu.Lock()
	if c.conn != conn {
		// Stopped deliberately.
		c.mu.Unlock()
		return
	}
	c.state = entity.SessionStateStopped
	c.conn = nil
	cancel := c.cancel
	c.mu.Unlock()

	cancel()
	c.gateway.DeregisterConn()
	c.stats.Counter("transport_closed").Inc(1)
	c.logger.Warnf("Connection to the analysis server closed: %v", conn.Err())
	if err := c.closed.Emit(conn.Err()); err != nil {
		c.logger.Errorf("Session close listener failed: %v", err)
	}
}

func (c *controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.state != entity.SessionStateReady {
		c.mu.Unlock()
		return nil
	}
	conn, cancel := c.conn, c.cancel
	c.conn = nil
	c.state = entity.SessionStateStopped
	c.mu.Unlock()

	defer cancel()

	err := c.gateway.Shutdown(ctx)
	if err != nil {
		c.logger.Warnf("Analysis server did not acknowledge shutdown: %v", err)
	}
	err = multierr.Append(err, c.gateway.Exit(ctx))
	c.gateway.DeregisterConn()
	err = multierr.Append(err, conn.Close())

	select {
	case <-conn.Done():
	case <-ctx.Done():
		err = multierr.Append(err, ctx.Err())
	}
	c.stats.Counter("stops").Inc(1)
	c.logger.Info("session stopped")
	return err
}

func (c *controller) ready() error {
	if c.State() != entity.SessionStateReady {
		return errors.ErrSessionNotReady
	}
	return nil
}

func (c *controller) DidOpen(ctx context.Context, item protocol.TextDocumentItem) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.gateway.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{TextDocument: item})
}

func (c *controller) DidClose(ctx context.Context, doc protocol.TextDocumentIdentifier) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.gateway.DidClose(ctx, &protocol.DidCloseTextDocumentParams{TextDocument: doc})
}

func (c *controller) DidChangeConfiguration(ctx context.Context, settings interface{}) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.gateway.DidChangeConfiguration(ctx, &protocol.DidChangeConfigurationParams{Settings: settings})
}

func (c *controller) DidLocalBranchNameChange(ctx context.Context, folderURI string, branchName *string) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.gateway.DidLocalBranchNameChange(ctx, &entity.BranchNameChangeParams{FolderURI: folderURI, BranchName: branchName})
}

// initializeParams builds the initialize request from the current host, settings and persisted state.
func (c *controller) initializeParams() *protocol.InitializeParams {
	env := c.workspace.Environment()
	current := c.settings.Current()
	folders := c.workspace.Folders()

	options := entity.InitializationOptions{
		ProductKey:          env.ProductKey,
		TelemetryStorage:    filepath.Join(env.StorageDir, _telemetryDir),
		ProductName:         env.ProductName,
		ProductVersion:      env.ProductVersion,
		WorkspaceName:       c.workspace.Name(),
		TypeScriptLocation:  env.TypeScriptLocation,
		FirstSecretDetected: c.store.GetBool(entity.StateFirstSecretDetected),
		ShowVerboseLogs:     current.Output.ShowVerboseLogs,
		Rules:               current.Rules,
		AdditionalAttributes: entity.AdditionalAttributes{
			Host: map[string]string{
				_attributeUIKind:     env.UIKind,
				_attributeRemoteName: env.RemoteName,
			},
		},
	}

	params := &protocol.InitializeParams{
		ProcessID:             int32(os.Getpid()),
		ClientInfo:            &protocol.ClientInfo{Name: env.ProductName, Version: env.ProductVersion},
		InitializationOptions: options,
		Capabilities: protocol.ClientCapabilities{
			Workspace: &protocol.WorkspaceClientCapabilities{
				Configuration:    true,
				WorkspaceFolders: true,
			},
		},
	}
	for _, f := range folders {
		params.WorkspaceFolders = append(params.WorkspaceFolders, protocol.WorkspaceFolder{
			URI:  string(mapper.CodeToProtocol(f.Path)),
			Name: f.Name,
		})
	}
	if len(folders) > 0 {
		params.RootURI = mapper.CodeToProtocol(folders[0].Path)
	}
	return params
}
