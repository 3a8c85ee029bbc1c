// Package handler assembles the inbound side of the client: the router for server-initiated traffic
// and the extension controller whose lifecycle hooks activate the client.
package handler

import (
	"github.com/uber/lint-client/src/lintclient/controller/extension"
	lintserver "github.com/uber/lint-client/src/lintclient/handler/lint-server"
	"go.uber.org/fx"
)

// Module provides the inbound handlers into an Fx application.
var Module = fx.Options(
	lintserver.Module,
	extension.Module,
)
