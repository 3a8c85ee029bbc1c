// Package serverinfofile keeps a small JSON file describing the running analysis server.
package serverinfofile

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKeyInfoFile = "serverInfo.path"

// Field names written by the launcher.
const (
	FieldPort      = "port"
	FieldPID       = "pid"
	FieldJavaHome  = "javaHome"
	FieldServerJar = "serverJar"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// ServerInfoFile manages the contents of a single server info file.
// Other tools read it to find the analysis server the client is connected to.
type ServerInfoFile interface {
	// Update sets the given fields and rewrites the file.
	Update(fields map[string]string) error
	// Delete removes the given fields and rewrites the file.
	Delete(keys ...string) error
}

type module struct {
	infofile     string
	fs           fs.LintFS
	logger       *zap.SugaredLogger
	fileContents map[string]string
	mu           sync.Mutex
}

// Params define values to be used by ServerInfoFile.
type Params struct {
	fx.In

	Config    config.Provider
	FS        fs.LintFS
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

// New creates a ServerInfoFile for the path named by the "serverInfo.path" configuration key.
// The file is removed when the application stops.
func New(p Params) (ServerInfoFile, error) {
	m := &module{
		fs:           p.FS,
		logger:       p.Logger,
		fileContents: make(map[string]string),
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: m.OnStop,
	})

	return m, nil
}

func (m *module) OnStop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	exists, err := m.fs.FileExists(m.infofile)
	if err != nil || !exists {
		return err
	}
	return m.fs.Remove(m.infofile)
}

func (m *module) Update(fields map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range fields {
		m.fileContents[k] = v
	}
	if err := m.write(); err != nil {
		return err
	}
	m.logger.Infow("server info saved", "file", m.infofile, "fields", fields)
	return nil
}

func (m *module) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.fileContents, k)
	}
	return m.write()
}

func (m *module) write() error {
	jsonOutput, err := json.Marshal(m.fileContents)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.infofile)); err != nil {
		return fmt.Errorf("creating info file directory: %w", err)
	}
	if err := m.fs.WriteFileAtomic(m.infofile, jsonOutput); err != nil {
		return fmt.Errorf("creating info file: %w", err)
	}
	return nil
}

func (m *module) processConfig(cfg config.Provider) error {
	val := cfg.Get(_configKeyInfoFile)
	if err := val.Populate(&m.infofile); err != nil {
		// incorrectly formatted config
		return fmt.Errorf("getting config field %q: %w", _configKeyInfoFile, err)
	}

	if m.infofile == "" {
		// yaml is missing either the key or value
		return fmt.Errorf("missing field %q in config", _configKeyInfoFile)
	}

	return nil
}
