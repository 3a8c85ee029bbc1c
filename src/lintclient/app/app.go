package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/controller/cfamily"
	"github.com/uber/lint-client/src/lintclient/controller/jdk"
	"github.com/uber/lint-client/src/lintclient/controller/locations"
	scmbridge "github.com/uber/lint-client/src/lintclient/controller/scm-bridge"
	"github.com/uber/lint-client/src/lintclient/controller/session"
	uiactions "github.com/uber/lint-client/src/lintclient/controller/ui-actions"
	"github.com/uber/lint-client/src/lintclient/gateway/host"
	lintservergateway "github.com/uber/lint-client/src/lintclient/gateway/lint-server"
	"github.com/uber/lint-client/src/lintclient/gateway/scm"
	serverprocess "github.com/uber/lint-client/src/lintclient/gateway/server-process"
	"github.com/uber/lint-client/src/lintclient/gateway/settings"
	"github.com/uber/lint-client/src/lintclient/handler"
	"github.com/uber/lint-client/src/lintclient/internal/core"
	"github.com/uber/lint-client/src/lintclient/internal/executor"
	"github.com/uber/lint-client/src/lintclient/internal/fs"
	"github.com/uber/lint-client/src/lintclient/internal/serverinfofile"
	"go.uber.org/fx"
)

// Module defines the lint-client application module.
var Module = fx.Options(
	// outbounds
	host.Module,
	settings.Module,
	scm.Module,
	serverprocess.Module,
	lintservergateway.Module,
	// controllers
	jdk.Module,
	cfamily.Module,
	locations.Module,
	session.Module,
	scmbridge.Module,
	uiactions.Module,
	handler.Module, // inbounds

	fs.Module,
	executor.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Prefix: "lint_client",
			Tags: map[string]string{
				"service": "lint-client",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
	fx.Invoke(openInitialDocuments),
)
