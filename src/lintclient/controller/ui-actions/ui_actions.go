// Package uiactions performs the user-facing actions requested by the analysis server.
package uiactions

import (
	"context"
	"fmt"
	"sync"

	"github.com/uber/lint-client/src/lintclient/controller/locations"
	scmbridge "github.com/uber/lint-client/src/lintclient/controller/scm-bridge"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/gateway/host"
	"github.com/uber/lint-client/src/lintclient/gateway/settings"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	_ruleDescriptionTitle = "Rule Description"
	_analysisServerLogger = "analysis-server"

	_firstSecretMessage = "A secret has been detected in your code. " +
		"Secrets should be stored outside of source files and revoked if they were ever committed."
)

// Module provides the UI actions controller.
var Module = fx.Options(
	fx.Provide(New),
)

// Controller implements the actions behind the requests and notifications sent by the analysis server.
type Controller interface {
	ShowRuleDescription(ctx context.Context, rule *entity.ShowRuleDescriptionParams) error
	GetJavaConfig(ctx context.Context, fileURI string) (*entity.GetJavaConfigResponse, error)
	IsIgnoredByScm(ctx context.Context, fileURI string) bool
	ShowFirstSecretNotification(ctx context.Context) error
	ShowOutput(ctx context.Context) error
	OpenJavaHomeSettings(ctx context.Context) error
	OpenPathToNodeSettings(ctx context.Context) error
	BrowseTo(ctx context.Context, url string) error
	OpenConnectionSettings(ctx context.Context, cloud bool) error
	ShowHotspot(ctx context.Context, hotspot *entity.Hotspot) error
	ShowTaintVulnerability(ctx context.Context, issue *entity.Issue) error
	GetBranchNameForFolder(ctx context.Context, folderURI string) *string
	LogMessage(ctx context.Context, params *protocol.LogMessageParams) error
	ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error
	PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error
	Configuration(ctx context.Context, params *protocol.ConfigurationParams) ([]interface{}, error)

	// UseBridge routes source-control queries to the bridge of the current session. A nil bridge disables them.
	UseBridge(bridge scmbridge.Bridge)
}

// Params are the dependencies of the controller.
type Params struct {
	fx.In

	UI         host.UI
	JavaConfig host.JavaConfigResolver
	State      host.StateStore
	Settings   settings.Store
	Locations  locations.Controller
	Logger     *zap.SugaredLogger
}

type controller struct {
	ui         host.UI
	javaConfig host.JavaConfigResolver
	state      host.StateStore
	settings   settings.Store
	locations  locations.Controller
	logger     *zap.SugaredLogger
	output     *zap.SugaredLogger

	mu          sync.Mutex
	panel       host.Panel
	panelClosed event.Disposable
	bridge      scmbridge.Bridge
	secretShown bool
}

// New creates the UI actions controller.
func New(p Params) Controller {
	return &controller{
		ui:         p.UI,
		javaConfig: p.JavaConfig,
		state:      p.State,
		settings:   p.Settings,
		locations:  p.Locations,
		logger:     p.Logger.Named("ui-actions"),
		output:     p.Logger.Named(_analysisServerLogger),
	}
}

func (c *controller) UseBridge(bridge scmbridge.Bridge) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bridge = bridge
}

func (c *controller) currentBridge() scmbridge.Bridge {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bridge
}

func (c *controller) ShowRuleDescription(ctx context.Context, rule *entity.ShowRuleDescriptionParams) error {
	html, err := RenderRuleDescription(rule)
	if err != nil {
		return fmt.Errorf("rendering rule %s: %w", rule.Key, err)
	}

	panel, err := c.rulePanel(ctx)
	if err != nil {
		return err
	}
	panel.SetTitle(rule.Name)
	if err := panel.SetHTML(html); err != nil {
		return err
	}
	return panel.Reveal(ctx)
}

// rulePanel returns the rule description panel, creating it when there is none.
func (c *controller) rulePanel(ctx context.Context) (host.Panel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.panel != nil {
		return c.panel, nil
	}
	panel, err := c.ui.CreatePanel(ctx, _ruleDescriptionTitle)
	if err != nil {
		return nil, fmt.Errorf("creating rule panel: %w", err)
	}
	c.panel = panel
	c.panelClosed = panel.OnDidDispose(func(struct{}) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.panel == panel {
			c.panel = nil
		}
	})
	return panel, nil
}

func (c *controller) GetJavaConfig(ctx context.Context, fileURI string) (*entity.GetJavaConfigResponse, error) {
	return c.javaConfig.GetJavaConfig(ctx, fileURI)
}

func (c *controller) IsIgnoredByScm(ctx context.Context, fileURI string) bool {
	bridge := c.currentBridge()
	if bridge == nil {
		return false
	}
	return bridge.IsIgnored(ctx, fileURI)
}

func (c *controller) GetBranchNameForFolder(ctx context.Context, folderURI string) *string {
	bridge := c.currentBridge()
	if bridge == nil {
		return nil
	}
	return bridge.GetBranchNameForFolder(folderURI)
}

func (c *controller) ShowFirstSecretNotification(ctx context.Context) error {
	c.mu.Lock()
	if c.secretShown || c.state.GetBool(entity.StateFirstSecretDetected) {
		c.mu.Unlock()
		return nil
	}
	c.secretShown = true
	c.mu.Unlock()

	if err := c.state.SetBool(entity.StateFirstSecretDetected, true); err != nil {
		c.logger.Warnf("Failed to persist first secret flag: %v", err)
	}

	action, err := c.ui.ShowWarning(ctx, _firstSecretMessage, host.ActionShowProblems)
	if err != nil {
		return err
	}
	if action == host.ActionShowProblems {
		return c.ui.OpenProblems(ctx)
	}
	return nil
}

func (c *controller) ShowOutput(ctx context.Context) error {
	return c.ui.RevealOutput(ctx)
}

func (c *controller) OpenJavaHomeSettings(ctx context.Context) error {
	return c.ui.OpenSettings(ctx, entity.QualifiedSetting(entity.SettingRuntimeHome))
}

func (c *controller) OpenPathToNodeSettings(ctx context.Context) error {
	return c.ui.OpenSettings(ctx, entity.QualifiedSetting(entity.SettingPathToNodeExecutable))
}

func (c *controller) BrowseTo(ctx context.Context, url string) error {
	return c.ui.OpenExternal(ctx, url)
}

func (c *controller) OpenConnectionSettings(ctx context.Context, cloud bool) error {
	key := entity.SettingSelfHostedConnections
	if cloud {
		key = entity.SettingCloudConnections
	}
	return c.ui.OpenSettings(ctx, entity.QualifiedSetting(key))
}

func (c *controller) ShowHotspot(ctx context.Context, hotspot *entity.Hotspot) error {
	return c.ui.ShowHotspot(ctx, *hotspot)
}

func (c *controller) ShowTaintVulnerability(ctx context.Context, issue *entity.Issue) error {
	c.locations.Show(issue)
	return nil
}

func (c *controller) LogMessage(ctx context.Context, params *protocol.LogMessageParams) error {
	c.output.Logw(logLevel(params.Type), params.Message)
	return nil
}

func logLevel(t protocol.MessageType) zapcore.Level {
	switch t {
	case protocol.MessageTypeError:
		return zapcore.ErrorLevel
	case protocol.MessageTypeWarning:
		return zapcore.WarnLevel
	case protocol.MessageTypeInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func (c *controller) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	return c.ui.ShowMessage(ctx, params)
}

func (c *controller) PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
	return c.ui.PublishDiagnostics(ctx, params)
}

func (c *controller) Configuration(ctx context.Context, params *protocol.ConfigurationParams) ([]interface{}, error) {
	result := make([]interface{}, 0, len(params.Items))
	for _, item := range params.Items {
		result = append(result, c.settings.Section(item.Section))
	}
	return result, nil
}
