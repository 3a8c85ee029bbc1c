// Package app assembles the lint-client application.
package app

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/uber/lint-client/src/lintclient/gateway/host"
	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Context describes where the client runs.
type Context struct {
	Environment        string `yaml:"environment"`
	RuntimeEnvironment string `yaml:"runtimeEnvironment"`
}

const (
	// EnvLocal indicates that the client is running locally.
	EnvLocal = "local"

	// EnvDevelopment indicates that the client is running in a development environment.
	EnvDevelopment = "development"

	// Environment variables
	_envLintClientEnvironment = "LINTCLIENT_ENVIRONMENT"
)

func decorateEnvContext(env Context) Context {
	envValue := EnvLocal
	if os.Getenv(_envLintClientEnvironment) == EnvDevelopment {
		envValue = EnvDevelopment
	}

	env.Environment = envValue
	env.RuntimeEnvironment = envValue
	return env
}

// DecorateConfigParams is the set of dependencies required to decorate the config.Provider.
type DecorateConfigParams struct {
	fx.In

	Env Context
	Cfg config.Provider
	FS  fs.LintFS
}

// decorateConfigProvider includes any steps that modify the config.Provider before it is used, or use its data for any startup related activities.
func decorateConfigProvider(p DecorateConfigParams) (config.Provider, error) {
	combined, err := ensureLogFolder(p.Cfg, p.FS)
	if err != nil {
		return nil, fmt.Errorf("ensuring log folder: %v", err)
	}

	return combined, nil
}

// Ensure that all configured logging output directories exist or create if necessary.
func ensureLogFolder(cfg config.Provider, fs fs.LintFS) (config.Provider, error) {
	var c zap.Config
	if err := cfg.Get("logging").Populate(&c); err != nil {
		return nil, fmt.Errorf("loading logging config: %v", err)
	}

	for _, outputPath := range c.OutputPaths {
		if outputPath == "stdout" || outputPath == "stderr" {
			continue
		}
		dir := path.Dir(outputPath)
		if err := fs.MkdirAll(dir); err != nil {
			return nil, fmt.Errorf("creating logging directory: %v", err)
		}
	}

	return cfg, nil
}

// openInitialDocuments announces the configured documents once the client has been activated.
// It is invoked after the extension module so that its hook runs after activation.
func openInitialDocuments(lc fx.Lifecycle, h *host.Headless, logger *zap.SugaredLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, doc := range h.InitialDocuments() {
				if err := h.OpenDocument(doc.Path, doc.LanguageID); err != nil {
					logger.Warnf("Failed to open %s: %v", doc.Path, err)
				}
			}
			return nil
		},
	})
}
