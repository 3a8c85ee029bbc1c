package host

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/browser"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"github.com/uber/lint-client/src/lintclient/mapper"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKeyHost = "host"

// Module provides a headless editor for every host capability.
var Module = fx.Options(
	fx.Provide(NewHeadless),
	fx.Provide(func(h *Headless) UI { return h }),
	fx.Provide(func(h *Headless) Workspace { return h }),
	fx.Provide(func(h *Headless) JavaConfigResolver { return h }),
	fx.Provide(func(h *Headless, lintFS fs.LintFS) StateStore {
		return NewFileStateStore(lintFS, h.Environment().StorageDir)
	}),
)

// Config is the "host" configuration section.
type Config struct {
	Environment entity.HostEnvironment `yaml:"environment"`
	Workspace   WorkspaceConfig        `yaml:"workspace"`
	// SettingsPath is opened when the user is asked to edit a setting.
	SettingsPath string              `yaml:"settingsPath"`
	JavaProjects []JavaProjectConfig `yaml:"javaProjects"`
}

// WorkspaceConfig lists the folders opened in the headless editor.
type WorkspaceConfig struct {
	Name    string                   `yaml:"name"`
	Folders []entity.WorkspaceFolder `yaml:"folders"`
	// Documents are opened once the client is running.
	Documents []DocumentConfig `yaml:"documents"`
}

// DocumentConfig is a file opened at startup.
type DocumentConfig struct {
	Path       string `yaml:"path"`
	LanguageID string `yaml:"languageId"`
}

// JavaProjectConfig describes a Java project for GetJavaConfig.
type JavaProjectConfig struct {
	Root        string   `yaml:"root"`
	SourceLevel string   `yaml:"sourceLevel"`
	Classpath   []string `yaml:"classpath"`
	VMLocation  string   `yaml:"vmLocation"`
}

// Params are the dependencies of the headless editor.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
	FS     fs.LintFS
}

// Headless is an editor without a screen: messages go to the log, panels are written to HTML files
// and links are handed to the system browser.
type Headless struct {
	cfg    Config
	logger *zap.SugaredLogger
	fs     fs.LintFS

	openURL  func(url string) error
	openFile func(path string) error

	opened event.Emitter[protocol.TextDocumentItem]
	closed event.Emitter[protocol.TextDocumentIdentifier]

	mu          sync.Mutex
	diagnostics map[protocol.DocumentURI][]protocol.Diagnostic
	commands    map[string]CommandHandler
}

// NewHeadless creates the headless editor from the "host" configuration section.
func NewHeadless(p Params) (*Headless, error) {
	var cfg Config
	if err := p.Config.Get(_configKeyHost).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyHost, err)
	}
	if cfg.Environment.StorageDir == "" {
		cacheDir, err := p.FS.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolving storage directory: %w", err)
		}
		cfg.Environment.StorageDir = filepath.Join(cacheDir, "lint-client")
	}
	if cfg.Workspace.Name == "" && len(cfg.Workspace.Folders) > 0 {
		cfg.Workspace.Name = cfg.Workspace.Folders[0].Name
	}
	// Paths are compared with the absolute roots reported by source control.
	for i := range cfg.Workspace.Folders {
		abs, err := filepath.Abs(cfg.Workspace.Folders[i].Path)
		if err != nil {
			return nil, fmt.Errorf("resolving workspace folder %q: %w", cfg.Workspace.Folders[i].Path, err)
		}
		cfg.Workspace.Folders[i].Path = abs
	}
	for i := range cfg.Workspace.Documents {
		abs, err := filepath.Abs(cfg.Workspace.Documents[i].Path)
		if err != nil {
			return nil, fmt.Errorf("resolving document %q: %w", cfg.Workspace.Documents[i].Path, err)
		}
		cfg.Workspace.Documents[i].Path = abs
	}
	for i := range cfg.JavaProjects {
		abs, err := filepath.Abs(cfg.JavaProjects[i].Root)
		if err != nil {
			return nil, fmt.Errorf("resolving java project %q: %w", cfg.JavaProjects[i].Root, err)
		}
		cfg.JavaProjects[i].Root = abs
	}

	return &Headless{
		cfg:         cfg,
		logger:      p.Logger.Named("host"),
		fs:          p.FS,
		openURL:     browser.OpenURL,
		openFile:    browser.OpenFile,
		diagnostics: make(map[protocol.DocumentURI][]protocol.Diagnostic),
		commands:    make(map[string]CommandHandler),
	}, nil
}

func (h *Headless) Name() string { return h.cfg.Workspace.Name }

func (h *Headless) Folders() []entity.WorkspaceFolder {
	return append([]entity.WorkspaceFolder(nil), h.cfg.Workspace.Folders...)
}

func (h *Headless) Environment() entity.HostEnvironment { return h.cfg.Environment }

func (h *Headless) OnDidOpenDocument(l event.Listener[protocol.TextDocumentItem]) event.Disposable {
	return h.opened.Subscribe(l)
}

func (h *Headless) OnDidCloseDocument(l event.Listener[protocol.TextDocumentIdentifier]) event.Disposable {
	return h.closed.Subscribe(l)
}

// InitialDocuments returns the documents to open at startup.
func (h *Headless) InitialDocuments() []DocumentConfig {
	return append([]DocumentConfig(nil), h.cfg.Workspace.Documents...)
}

// OpenDocument reads a file and announces it as opened.
func (h *Headless) OpenDocument(path, languageID string) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	content, err := h.fs.ReadFile(path)
	if err != nil {
		return err
	}
	return h.opened.Emit(protocol.TextDocumentItem{
		URI:        mapper.CodeToProtocol(path),
		LanguageID: protocol.LanguageIdentifier(languageID),
		Version:    1,
		Text:       string(content),
	})
}

// CloseDocument announces a document as closed.
func (h *Headless) CloseDocument(path string) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return h.closed.Emit(protocol.TextDocumentIdentifier{URI: mapper.CodeToProtocol(path)})
}

func (h *Headless) ShowWarning(ctx context.Context, message string, actions ...string) (string, error) {
	h.logger.Warnw(message, "actions", actions)
	return "", nil
}

func (h *Headless) ShowInfo(ctx context.Context, message string, actions ...string) (string, error) {
	h.logger.Infow(message, "actions", actions)
	return "", nil
}

func (h *Headless) ShowError(ctx context.Context, message string) error {
	h.logger.Error(message)
	return nil
}

func (h *Headless) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	switch params.Type {
	case protocol.MessageTypeError:
		h.logger.Error(params.Message)
	case protocol.MessageTypeWarning:
		h.logger.Warn(params.Message)
	default:
		h.logger.Info(params.Message)
	}
	return nil
}

func (h *Headless) OpenSettings(ctx context.Context, key string) error {
	h.logger.Infow("edit setting", "key", key, "file", h.cfg.SettingsPath)
	if h.cfg.SettingsPath == "" {
		return nil
	}
	return h.openFile(h.cfg.SettingsPath)
}

func (h *Headless) OpenExternal(ctx context.Context, url string) error {
	return h.openURL(url)
}

func (h *Headless) RevealOutput(ctx context.Context) error {
	h.logger.Info("output requested; analysis server output is written to this log")
	return nil
}

func (h *Headless) OpenProblems(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uris := make([]string, 0, len(h.diagnostics))
	for u := range h.diagnostics {
		uris = append(uris, string(u))
	}
	sort.Strings(uris)
	for _, u := range uris {
		for _, d := range h.diagnostics[protocol.DocumentURI(u)] {
			h.logger.Infow(d.Message, "uri", u, "line", d.Range.Start.Line+1, "code", d.Code)
		}
	}
	return nil
}

func (h *Headless) ExecuteCommand(ctx context.Context, command string, args ...string) error {
	h.mu.Lock()
	handler, ok := h.commands[command]
	h.mu.Unlock()
	if ok {
		return handler(ctx, args...)
	}

	if command == CommandOpenSettings && len(args) > 0 {
		return h.OpenSettings(ctx, args[0])
	}
	h.logger.Infow("command", "command", command, "args", args)
	return nil
}

// RegisterCommand replaces any earlier handler of the same command.
func (h *Headless) RegisterCommand(command string, handler CommandHandler) event.Disposable {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands[command] = handler

	return event.DisposableFunc(func() error {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.commands, command)
		return nil
	})
}

func (h *Headless) ShowHotspot(ctx context.Context, hotspot entity.Hotspot) error {
	line := uint32(0)
	if hotspot.TextRange != nil {
		line = hotspot.TextRange.StartLine
	}
	h.logger.Warnw(hotspot.Message,
		"hotspot", hotspot.Key,
		"file", hotspot.IDEFilePath,
		"line", line,
		"rule", hotspot.Rule.Key,
		"probability", hotspot.Rule.VulnerabilityProbability,
		"status", hotspot.Status,
	)
	return nil
}

func (h *Headless) PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(params.Diagnostics) == 0 {
		delete(h.diagnostics, params.URI)
		return nil
	}
	h.diagnostics[params.URI] = params.Diagnostics
	h.logger.Debugw("diagnostics", "uri", params.URI, "count", len(params.Diagnostics))
	return nil
}

// Diagnostics returns the diagnostics currently published for a document.
func (h *Headless) Diagnostics(u protocol.DocumentURI) []protocol.Diagnostic {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]protocol.Diagnostic(nil), h.diagnostics[u]...)
}

func (h *Headless) GetJavaConfig(ctx context.Context, fileURI string) (*entity.GetJavaConfigResponse, error) {
	path, err := mapper.ProtocolToCode(fileURI)
	if err != nil {
		return nil, err
	}
	var best *JavaProjectConfig
	for i, p := range h.cfg.JavaProjects {
		root := filepath.Clean(p.Root) + string(filepath.Separator)
		if strings.HasPrefix(path, root) && (best == nil || len(p.Root) > len(best.Root)) {
			best = &h.cfg.JavaProjects[i]
		}
	}
	if best == nil {
		return nil, nil
	}
	return &entity.GetJavaConfigResponse{
		ProjectRoot: string(mapper.CodeToProtocol(best.Root)),
		SourceLevel: best.SourceLevel,
		Classpath:   best.Classpath,
		IsTest:      strings.Contains(filepath.ToSlash(path), "/src/test/"),
		VMLocation:  best.VMLocation,
	}, nil
}

var _panelFileUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func (h *Headless) CreatePanel(ctx context.Context, title string) (Panel, error) {
	dir := filepath.Join(h.cfg.Environment.StorageDir, "panels")
	if err := h.fs.MkdirAll(dir); err != nil {
		return nil, err
	}
	return &filePanel{
		host:  h,
		path:  filepath.Join(dir, _panelFileUnsafe.ReplaceAllString(title, "_")+".html"),
		title: title,
	}, nil
}

// filePanel renders into an HTML file and reveals it in the browser.
type filePanel struct {
	host     *Headless
	path     string
	mu       sync.Mutex
	title    string
	disposed event.Emitter[struct{}]
}

func (p *filePanel) SetTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
}

func (p *filePanel) SetHTML(html string) error {
	return p.host.fs.WriteFileAtomic(p.path, []byte(html))
}

func (p *filePanel) Reveal(ctx context.Context) error {
	p.mu.Lock()
	title := p.title
	p.mu.Unlock()
	p.host.logger.Infow("panel", "title", title, "file", p.path)
	return p.host.openFile(p.path)
}

func (p *filePanel) OnDidDispose(l event.Listener[struct{}]) event.Disposable {
	return p.disposed.Subscribe(l)
}

// Dispose closes the panel.
func (p *filePanel) Dispose() error {
	return p.disposed.Emit(struct{}{})
}
