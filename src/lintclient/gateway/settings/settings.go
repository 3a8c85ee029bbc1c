// Package settings reads the user settings file and publishes changes to it.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"github.com/uber/lint-client/src/lintclient/internal/filewatch"
	lintfs "github.com/uber/lint-client/src/lintclient/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	_configKeyPath   = "settings.path"
	_debounceTimeout = 200 * time.Millisecond
)

// Module provides the settings store.
var Module = fx.Options(
	fx.Provide(New),
)

// Store exposes the current settings and their changes.
type Store interface {
	// Current returns the typed settings under the root section.
	Current() entity.Settings
	// Section returns the raw value at a dotted path of the document, or nil. An empty section returns the whole document.
	Section(section string) interface{}
	// Path is the location of the settings file.
	Path() string
	// Update sets the value of a key under the root section and persists the document.
	Update(key string, value interface{}) error
	// Reload re-reads the settings file and publishes a change when any known key differs.
	Reload() error
	OnDidChange(l event.Listener[entity.SettingsChange]) event.Disposable
}

// Params are the dependencies of the settings store.
type Params struct {
	fx.In

	Config    config.Provider
	Logger    *zap.SugaredLogger
	FS        lintfs.LintFS
	Lifecycle fx.Lifecycle
}

type store struct {
	path   string
	fs     lintfs.LintFS
	logger *zap.SugaredLogger

	mu       sync.Mutex
	document map[string]interface{}
	current  entity.Settings

	changes event.Emitter[entity.SettingsChange]
	watcher *filewatch.Watcher
}

// New loads the settings file named by the "settings.path" configuration key. A missing file yields default settings.
// The file is watched for changes while the application runs.
func New(p Params) (Store, error) {
	var path string
	if err := p.Config.Get(_configKeyPath).Populate(&path); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyPath, err)
	}
	if path == "" {
		return nil, fmt.Errorf("config field %q is empty", _configKeyPath)
	}

	s := newStore(path, p.FS, p.Logger.Named("settings"))
	if err := s.Reload(); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.watch()
		},
		OnStop: func(ctx context.Context) error {
			return s.close()
		},
	})
	return s, nil
}

func newStore(path string, lintFS lintfs.LintFS, logger *zap.SugaredLogger) *store {
	return &store{
		path:     filepath.Clean(path),
		fs:       lintFS,
		logger:   logger,
		document: map[string]interface{}{},
	}
}

func (s *store) Path() string { return s.path }

func (s *store) Current() entity.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *store) Section(section string) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if section == "" {
		return s.document
	}
	return lookup(s.document, strings.Split(section, "."))
}

func (s *store) OnDidChange(l event.Listener[entity.SettingsChange]) event.Disposable {
	return s.changes.Subscribe(l)
}

func (s *store) Reload() error {
	data, err := s.fs.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		data = nil
	} else if err != nil {
		return fmt.Errorf("reading settings %s: %w", s.path, err)
	}

	document := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("parsing settings %s: %w", s.path, err)
	}
	if document == nil {
		document = map[string]interface{}{}
	}
	settings, err := decode(document)
	if err != nil {
		return fmt.Errorf("parsing settings %s: %w", s.path, err)
	}

	s.mu.Lock()
	previous := s.current
	s.document = document
	s.current = settings
	s.mu.Unlock()

	changed := Diff(previous, settings)
	if len(changed) == 0 {
		return nil
	}
	s.logger.Debugw("settings changed", "keys", changed)
	return s.changes.Emit(entity.SettingsChange{
		Previous:    previous,
		Current:     settings,
		ChangedKeys: changed,
	})
}

func (s *store) Update(key string, value interface{}) error {
	s.mu.Lock()
	root, _ := s.document[entity.SettingsRoot].(map[string]interface{})
	if root == nil {
		root = map[string]interface{}{}
		s.document[entity.SettingsRoot] = root
	}
	assign(root, strings.Split(key, "."), value)
	data, err := yaml.Marshal(s.document)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path)); err != nil {
		return err
	}
	if err := s.fs.WriteFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("writing settings %s: %w", s.path, err)
	}
	return s.Reload()
}

func (s *store) watch() error {
	w, err := filewatch.New(s.logger, filewatch.Options{
		Match:    func(path string) bool { return filepath.Clean(path) == s.path },
		OnChange: s.onFileChanged,
		Debounce: _debounceTimeout,
	})
	if err != nil {
		return fmt.Errorf("creating settings watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		// The settings directory may not exist yet; settings are then only read at startup.
		s.logger.Warnf("Not watching settings %s: %v", s.path, err)
		return w.Dispose()
	}
	s.watcher = w
	return nil
}

func (s *store) onFileChanged(string) {
	if err := s.Reload(); err != nil {
		s.logger.Warnf("Failed to reload settings: %v", err)
	}
}

func (s *store) close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Dispose()
}

func decode(document map[string]interface{}) (entity.Settings, error) {
	var settings entity.Settings
	root, ok := document[entity.SettingsRoot]
	if !ok || root == nil {
		return settings, nil
	}
	// Round-trip through YAML to apply the struct tags of the typed settings.
	data, err := yaml.Marshal(root)
	if err != nil {
		return settings, err
	}
	err = yaml.Unmarshal(data, &settings)
	return settings, err
}

func lookup(node interface{}, keys []string) interface{} {
	for _, key := range keys {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil
		}
		if node, ok = m[key]; !ok {
			return nil
		}
	}
	return node
}

func assign(node map[string]interface{}, keys []string, value interface{}) {
	for _, key := range keys[:len(keys)-1] {
		child, ok := node[key].(map[string]interface{})
		if !ok {
			child = map[string]interface{}{}
			node[key] = child
		}
		node = child
	}
	node[keys[len(keys)-1]] = value
}

var _keyAccessors = []struct {
	key string
	get func(entity.Settings) interface{}
}{
	{entity.SettingRuntimeHome, func(s entity.Settings) interface{} { return s.Runtime.Home }},
	{entity.SettingRuntimeVMArgs, func(s entity.Settings) interface{} { return s.Runtime.VMArgs }},
	{entity.SettingPathToNodeExecutable, func(s entity.Settings) interface{} { return s.PathToNodeExecutable }},
	{entity.SettingRules, func(s entity.Settings) interface{} { return s.Rules }},
	{entity.SettingDisableTelemetry, func(s entity.Settings) interface{} { return s.DisableTelemetry }},
	{entity.SettingShowVerboseLogs, func(s entity.Settings) interface{} { return s.Output.ShowVerboseLogs }},
	{entity.SettingCloudConnections, func(s entity.Settings) interface{} { return s.ConnectedMode.Connections.Cloud }},
	{entity.SettingSelfHostedConnections, func(s entity.Settings) interface{} { return s.ConnectedMode.Connections.SelfHosted }},
	{entity.SettingPathToCompileCommands, func(s entity.Settings) interface{} { return s.PathToCompileCommands }},
}

// Diff returns the known settings keys whose values differ, in a stable order.
func Diff(previous, current entity.Settings) []string {
	var changed []string
	for _, a := range _keyAccessors {
		if !reflect.DeepEqual(a.get(previous), a.get(current)) {
			changed = append(changed, a.key)
		}
	}
	return changed
}
