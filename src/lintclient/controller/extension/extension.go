// Package extension wires the client components together and owns the activation lifecycle.
package extension

import (
	"context"
	"fmt"
	"sync"

	"github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/controller/cfamily"
	"github.com/uber/lint-client/src/lintclient/controller/jdk"
	scmbridge "github.com/uber/lint-client/src/lintclient/controller/scm-bridge"
	"github.com/uber/lint-client/src/lintclient/controller/session"
	uiactions "github.com/uber/lint-client/src/lintclient/controller/ui-actions"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/gateway/host"
	serverprocess "github.com/uber/lint-client/src/lintclient/gateway/server-process"
	"github.com/uber/lint-client/src/lintclient/gateway/settings"
	lintserver "github.com/uber/lint-client/src/lintclient/handler/lint-server"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_artifactsKey = "analysis"

	_restartSettingsMessage = "Some settings changed that require a restart of the analysis server."
	_processExitMessage     = "The analysis server stopped unexpectedly."
)

// Module provides the extension controller and ties its activation to the application lifecycle.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(func(Controller) {}),
)

// Controller activates and deactivates the client.
type Controller interface {
	// Activate resolves the runtime, launches the analysis server and starts a session with it.
	// A runtime that cannot be resolved is reported to the user and leaves the client inactive without error.
	Activate(ctx context.Context) error
	// Deactivate releases everything Activate acquired and stops the session.
	Deactivate(ctx context.Context) error
	// Restart runs Deactivate followed by Activate.
	Restart(ctx context.Context) error
	// Active reports whether a session is running.
	Active() bool
	// SetRuleLevel persists an explicit activation override for a rule.
	SetRuleLevel(ctx context.Context, ruleKey string, level entity.RuleLevel) error
}

// Params are the dependencies of the controller.
type Params struct {
	fx.In

	Config    config.Provider
	Settings  settings.Store
	Runtime   jdk.Resolver
	Launcher  serverprocess.Launcher
	Session   session.Controller
	Router    lintserver.Router
	Bridges   scmbridge.Factory
	Actions   uiactions.Controller
	CFamily   cfamily.Controller
	UI        host.UI
	Workspace host.Workspace
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Lifecycle fx.Lifecycle
}

type controller struct {
	config    config.Provider
	settings  settings.Store
	runtime   jdk.Resolver
	launcher  serverprocess.Launcher
	session   session.Controller
	router    lintserver.Router
	bridges   scmbridge.Factory
	actions   uiactions.Controller
	cfamily   cfamily.Controller
	ui        host.UI
	workspace host.Workspace
	logger    *zap.SugaredLogger
	stats     tally.Scope

	// mu serializes activation so that at most one session exists.
	mu          sync.Mutex
	active      bool
	activation  []event.Disposable
	subscribers []event.Disposable
	// compileWatcher follows the compilation database of the current settings while active.
	compileWatcher event.Disposable
}

// New creates the extension controller.
func New(p Params) Controller {
	c := &controller{
		config:    p.Config,
		settings:  p.Settings,
		runtime:   p.Runtime,
		launcher:  p.Launcher,
		session:   p.Session,
		router:    p.Router,
		bridges:   p.Bridges,
		actions:   p.Actions,
		cfamily:   p.CFamily,
		ui:        p.UI,
		workspace: p.Workspace,
		logger:    p.Logger.Named("extension"),
		stats:     p.Stats.SubScope("extension"),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			c.subscribe()
			if err := c.Activate(ctx); err != nil {
				c.logger.Errorf("Activation failed: %v", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := c.Deactivate(ctx)
			return multierr.Append(err, event.DisposeAll(c.subscribers...))
		},
	})
	return c
}

// subscribe registers the listeners that outlive a single activation.
func (c *controller) subscribe() {
	c.subscribers = append(c.subscribers,
		c.settings.OnDidChange(c.onSettingsChange),
		c.launcher.OnExit(c.onProcessExit),
		c.session.OnDidClose(func(err error) {
			c.logger.Warnf("Session closed: %v", err)
		}),
		c.ui.RegisterCommand(host.CommandActivateRule, c.ruleCommand(entity.RuleLevelOn)),
		c.ui.RegisterCommand(host.CommandDeactivateRule, c.ruleCommand(entity.RuleLevelOff)),
	)
}

// ruleCommand sets the level of the rule named by the first argument.
func (c *controller) ruleCommand(level entity.RuleLevel) host.CommandHandler {
	return func(ctx context.Context, args ...string) error {
		if len(args) == 0 || args[0] == "" {
			return fmt.Errorf("missing rule key")
		}
		return c.SetRuleLevel(ctx, args[0], level)
	}
}

func (c *controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *controller) Activate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activate(ctx)
}

func (c *controller) activate(ctx context.Context) error {
	if c.active {
		return nil
	}

	current := c.settings.Current()
	runtime, err := c.runtime.Resolve(ctx, current)
	if err != nil {
		if unresolvable, ok := errors.AsRuntimeUnresolvable(err); ok {
			c.stats.Counter("runtime_unresolvable").Inc(1)
			c.offerRemediation(ctx, unresolvable)
			return nil
		}
		return fmt.Errorf("resolving runtime: %w", err)
	}

	var artifacts entity.AnalyzerArtifacts
	if err := c.config.Get(_artifactsKey).Populate(&artifacts); err != nil {
		return fmt.Errorf("reading analyzer artifacts: %w", err)
	}

	rwc, err := c.launcher.Launch(ctx, serverprocess.LaunchParams{
		Runtime:   runtime,
		Artifacts: artifacts,
		Settings:  current,
	})
	if err != nil {
		c.stats.Counter("activation_failures").Inc(1)
		return err
	}
	if err := c.session.Start(ctx, rwc, c.router.HandleReq); err != nil {
		c.stats.Counter("activation_failures").Inc(1)
		return err
	}

	bridge := c.bridges.Create(c.session)
	c.actions.UseBridge(bridge)
	disposables := []event.Disposable{
		event.DisposableFunc(func() error {
			c.actions.UseBridge(nil)
			return bridge.Dispose()
		}),
		c.workspace.OnDidOpenDocument(func(item protocol.TextDocumentItem) {
			if err := c.session.DidOpen(context.Background(), item); err != nil {
				c.logger.Debugf("didOpen %s not sent: %v", item.URI, err)
			}
		}),
		c.workspace.OnDidCloseDocument(func(doc protocol.TextDocumentIdentifier) {
			if err := c.session.DidClose(context.Background(), doc); err != nil {
				c.logger.Debugf("didClose %s not sent: %v", doc.URI, err)
			}
		}),
	}

	c.watchCompileCommands(current.PathToCompileCommands)

	c.activation = disposables
	c.active = true
	c.stats.Counter("activations").Inc(1)
	c.logger.Infow("client activated", "javaHome", runtime.JavaHome, "majorVersion", runtime.MajorVersion)
	return nil
}

// watchCompileCommands replaces the compilation database watcher. An empty path only stops the current one.
func (c *controller) watchCompileCommands(path string) {
	if c.compileWatcher != nil {
		if err := c.compileWatcher.Dispose(); err != nil {
			c.logger.Warnf("Failed to stop watching compilation database: %v", err)
		}
		c.compileWatcher = nil
	}
	if path == "" {
		return
	}
	watcher, err := c.cfamily.Watch(path)
	if err != nil {
		c.logger.Warnf("Failed to watch compilation database %s: %v", path, err)
		return
	}
	c.compileWatcher = watcher
}

func (c *controller) offerRemediation(ctx context.Context, unresolvable *errors.RuntimeUnresolvableError) {
	c.logger.Warnf("Runtime unresolvable: %v", unresolvable)
	if unresolvable.Remediation == nil {
		if err := c.ui.ShowError(ctx, unresolvable.Message); err != nil {
			c.logger.Warnf("Failed to show runtime error: %v", err)
		}
		return
	}

	remediation := unresolvable.Remediation
	action, err := c.ui.ShowWarning(ctx, unresolvable.Message, remediation.Title)
	if err != nil {
		c.logger.Warnf("Failed to show runtime warning: %v", err)
		return
	}
	if action != remediation.Title {
		return
	}
	if err := c.ui.ExecuteCommand(ctx, remediation.Command, remediation.Arguments...); err != nil {
		c.logger.Warnf("Failed to run %s: %v", remediation.Command, err)
	}
}

func (c *controller) Deactivate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deactivate(ctx)
}

func (c *controller) deactivate(ctx context.Context) error {
	if !c.active {
		return nil
	}
	c.active = false
	disposables := append(c.activation, c.compileWatcher)
	c.activation = nil
	c.compileWatcher = nil

	return multierr.Combine(
		event.DisposeAll(disposables...),
		c.session.Stop(ctx),
	)
}

func (c *controller) Restart(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Counter("restarts").Inc(1)
	if err := c.deactivate(ctx); err != nil {
		c.logger.Warnf("Deactivation before restart failed: %v", err)
	}
	return c.activate(ctx)
}

func (c *controller) SetRuleLevel(ctx context.Context, ruleKey string, level entity.RuleLevel) error {
	rules := entity.RulesConfiguration{}
	for k, v := range c.settings.Current().Rules {
		rules[k] = v
	}
	override := rules[ruleKey]
	override.Level = level
	rules[ruleKey] = override

	if err := c.settings.Update(entity.SettingRules, rules); err != nil {
		return fmt.Errorf("updating rule %s: %w", ruleKey, err)
	}
	return nil
}

func (c *controller) onSettingsChange(change entity.SettingsChange) {
	ctx := context.Background()
	if change.Affects(entity.SettingPathToCompileCommands) {
		c.mu.Lock()
		if c.active {
			c.watchCompileCommands(change.Current.PathToCompileCommands)
		}
		c.mu.Unlock()
	}
	if change.RequiresRestart() {
		c.promptRestart(ctx, _restartSettingsMessage)
		return
	}
	if c.session.State() != entity.SessionStateReady {
		return
	}
	if err := c.session.DidChangeConfiguration(ctx, c.settings.Section(entity.SettingsRoot)); err != nil {
		c.logger.Warnf("Failed to push configuration change: %v", err)
	}
}

// onProcessExit prompts only for exits the client did not cause: Deactivate clears active before stopping.
func (c *controller) onProcessExit(exit serverprocess.ProcessExit) {
	if !c.Active() {
		return
	}
	c.stats.Counter("unexpected_exits").Inc(1)
	c.promptRestart(context.Background(), fmt.Sprintf("%s (exit code %d)", _processExitMessage, exit.ExitCode))
}

func (c *controller) promptRestart(ctx context.Context, message string) {
	action, err := c.ui.ShowWarning(ctx, message, host.ActionRestart)
	if err != nil {
		c.logger.Warnf("Failed to show restart prompt: %v", err)
		return
	}
	if action != host.ActionRestart {
		return
	}
	if err := c.Restart(ctx); err != nil {
		c.logger.Errorf("Restart failed: %v", err)
		if err := c.ui.ShowError(ctx, fmt.Sprintf("Restart failed: %v", err)); err != nil {
			c.logger.Warnf("Failed to show restart error: %v", err)
		}
	}
}
