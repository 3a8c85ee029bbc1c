package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/lint-client/src/lintclient/gateway/host"
	"github.com/uber/lint-client/src/lintclient/internal/event"
	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"github.com/uber/lint-client/src/lintclient/internal/fs/fsmock"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestEnv(t *testing.T) {
	tests := []struct {
		name      string
		setEnvKey string
		setEnvVal string
		expectVal string
	}{
		{
			name:      "local",
			expectVal: EnvLocal,
		},
		{
			name:      "development",
			setEnvKey: _envLintClientEnvironment,
			setEnvVal: "development",
			expectVal: EnvDevelopment,
		},
		{
			name:      "unknown value falls back to local",
			setEnvKey: _envLintClientEnvironment,
			setEnvVal: "production",
			expectVal: EnvLocal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnvKey != "" {
				t.Setenv(tt.setEnvKey, tt.setEnvVal)
			}

			fxtest.New(
				t,
				fx.Provide(func() Context {
					return Context{
						Environment:        EnvLocal,
						RuntimeEnvironment: EnvLocal,
					}
				}),
				fx.Decorate(decorateEnvContext),
				fx.Invoke(func(ctx Context) {
					require.Equal(t, tt.expectVal, ctx.Environment, "unexpected environment")
					require.Equal(t, tt.expectVal, ctx.RuntimeEnvironment, "unexpected runtime environment")
				}),
			).RequireStart().RequireStop()
		})
	}
}

func TestDecorateConfigProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockLintFS(ctrl)
	fsMock.EXPECT().MkdirAll("/tmp/lint-client").Return(nil)

	fxtest.New(
		t,
		fx.Provide(func() fs.LintFS {
			return fsMock
		}),
		fx.Provide(func() config.Provider {
			p, _ := config.NewStaticProvider(map[string]interface{}{
				"logging": map[string]interface{}{
					"outputPaths": []string{
						"/tmp/lint-client/client.log",
					},
				},
			})
			return p
		}),
		fx.Provide(func() Context {
			return Context{RuntimeEnvironment: EnvDevelopment}
		}),
		fx.Decorate(decorateConfigProvider),
		fx.Invoke(func(cfg config.Provider) {}),
	).RequireStart().RequireStop()
}

func TestEnsureLogFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := func() config.Provider {
		p, _ := config.NewStaticProvider(map[string]interface{}{
			"logging": map[string]interface{}{
				"outputPaths": []string{
					"stderr",
					"/tmp/foo/client.log",
					"/tmp/bar/server.log",
				},
			},
		})
		return p
	}

	t.Run("no errors", func(t *testing.T) {
		fsMock := fsmock.NewMockLintFS(ctrl)
		fsMock.EXPECT().MkdirAll("/tmp/foo").Return(nil)
		fsMock.EXPECT().MkdirAll("/tmp/bar").Return(nil)

		_, err := ensureLogFolder(provider(), fsMock)
		assert.NoError(t, err)
	})

	t.Run("error creating directory", func(t *testing.T) {
		fsMock := fsmock.NewMockLintFS(ctrl)
		fsMock.EXPECT().MkdirAll("/tmp/foo").Return(errors.New("error creating directory"))

		_, err := ensureLogFolder(provider(), fsMock)
		assert.Error(t, err)
	})
}

func TestOpenInitialDocuments(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.c")
	require.NoError(t, os.WriteFile(file, []byte("int main() { return 0; }"), 0o644))

	cfg, err := config.NewStaticProvider(map[string]interface{}{
		"host": map[string]interface{}{
			"environment": map[string]interface{}{"storageDir": dir},
			"workspace": map[string]interface{}{
				"documents": []map[string]interface{}{
					{"path": file, "languageId": "c"},
					{"path": filepath.Join(dir, "missing.c"), "languageId": "c"},
				},
			},
		},
	})
	require.NoError(t, err)

	var opened []protocol.TextDocumentItem
	var subscription event.Disposable
	fxtest.New(
		t,
		fx.Supply(fx.Annotate(cfg, fx.As(new(config.Provider)))),
		fx.Supply(zap.NewNop().Sugar()),
		fx.Provide(fs.New),
		fx.Provide(host.NewHeadless),
		fx.Invoke(func(h *host.Headless) {
			subscription = h.OnDidOpenDocument(func(item protocol.TextDocumentItem) {
				opened = append(opened, item)
			})
		}),
		fx.Invoke(openInitialDocuments),
	).RequireStart().RequireStop()
	require.NoError(t, subscription.Dispose())

	require.Len(t, opened, 1, "missing files are skipped")
	assert.Equal(t, protocol.LanguageIdentifier("c"), opened[0].LanguageID)
	assert.Equal(t, "int main() { return 0; }", opened[0].Text)
}
