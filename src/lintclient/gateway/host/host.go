// Package host declares what the client needs from the editor it runs in, and provides a headless editor.
package host

import (
	"context"

	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"go.lsp.dev/protocol"
)

// Action labels offered with notifications.
const (
	ActionShowProblems  = "Show Problems"
	ActionRestart       = "Restart"
	ActionOpenSettings  = "Open Settings"
	ActionShowOutput    = "Show Output"
	CommandOpenSettings = "workbench.action.openSettings"
)

// Commands contributed by the client.
const (
	CommandActivateRule   = "lint.activateRule"
	CommandDeactivateRule = "lint.deactivateRule"
)

// CommandHandler runs a registered command.
type CommandHandler func(ctx context.Context, args ...string) error

// UI is the set of user-facing capabilities of the editor.
type UI interface {
	// ShowWarning displays a warning and returns the chosen action, or "" when dismissed.
	ShowWarning(ctx context.Context, message string, actions ...string) (string, error)
	// ShowInfo displays an information message and returns the chosen action, or "" when dismissed.
	ShowInfo(ctx context.Context, message string, actions ...string) (string, error)
	ShowError(ctx context.Context, message string) error
	// ShowMessage displays a message sent by the analysis server.
	ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error
	// OpenSettings opens the settings editor focused on a fully qualified key.
	OpenSettings(ctx context.Context, key string) error
	OpenExternal(ctx context.Context, url string) error
	RevealOutput(ctx context.Context) error
	// OpenProblems focuses the list of diagnostics.
	OpenProblems(ctx context.Context) error
	ExecuteCommand(ctx context.Context, command string, args ...string) error
	// RegisterCommand makes command available to ExecuteCommand until the returned subscription is disposed.
	RegisterCommand(command string, handler CommandHandler) event.Disposable
	// CreatePanel opens a new web panel. The returned panel stays valid until its OnDidDispose fires.
	CreatePanel(ctx context.Context, title string) (Panel, error)
	// ShowHotspot reveals a security hotspot and its markers.
	ShowHotspot(ctx context.Context, hotspot entity.Hotspot) error
	// PublishDiagnostics replaces the diagnostics shown for a document.
	PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error
}

// Panel is a web view.
type Panel interface {
	SetTitle(title string)
	SetHTML(html string) error
	Reveal(ctx context.Context) error
	OnDidDispose(l event.Listener[struct{}]) event.Disposable
}

// Workspace describes the folders and identity of the editor session.
type Workspace interface {
	Name() string
	Folders() []entity.WorkspaceFolder
	Environment() entity.HostEnvironment
	OnDidOpenDocument(l event.Listener[protocol.TextDocumentItem]) event.Disposable
	OnDidCloseDocument(l event.Listener[protocol.TextDocumentIdentifier]) event.Disposable
}

// JavaConfigResolver looks up the project configuration of a Java source file.
type JavaConfigResolver interface {
	// GetJavaConfig returns nil when the file is not part of a known project.
	GetJavaConfig(ctx context.Context, fileURI string) (*entity.GetJavaConfigResponse, error)
}

// StateStore persists small flags across editor sessions.
type StateStore interface {
	GetBool(key string) bool
	SetBool(key string, value bool) error
}
