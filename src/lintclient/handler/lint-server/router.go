// Package lintserver routes the requests and notifications sent by the analysis server.
package lintserver

import (
	"context"
	"fmt"
	"sort"

	"github.com/uber-go/tally/v4"
	uiactions "github.com/uber/lint-client/src/lintclient/controller/ui-actions"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the Router.
var Module = fx.Provide(New)

// Router dispatches server-initiated traffic to the UI actions controller.
type Router interface {
	// HandleReq handles routing for a single request. It has the jsonrpc2.Handler signature.
	HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error
	// Methods lists the registered methods in sorted order.
	Methods() []string
}

// Params are the dependencies of the Router.
type Params struct {
	fx.In

	Controller uiactions.Controller
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

type methodHandler func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error

type jsonRPCRouter struct {
	uiactions uiactions.Controller
	logger    *zap.SugaredLogger
	stats     tally.Scope
	table     map[string]methodHandler
}

// New builds the routing table. The table is closed once New returns.
func New(p Params) (Router, error) {
	r := &jsonRPCRouter{
		uiactions: p.Controller,
		logger:    p.Logger.Named("router"),
		stats:     p.Stats.SubScope("router"),
		table:     make(map[string]methodHandler),
	}

	routes := []struct {
		method  string
		handler methodHandler
	}{
		{entity.MethodShowRuleDescription, r.ShowRuleDescription},
		{entity.MethodGetJavaConfig, r.GetJavaConfig},
		{entity.MethodIsIgnoredByScm, r.IsIgnoredByScm},
		{entity.MethodShowNotificationForFirstSecrets, r.ShowNotificationForFirstSecrets},
		{entity.MethodShowOutput, r.ShowOutput},
		{entity.MethodOpenJavaHomeSettings, r.OpenJavaHomeSettings},
		{entity.MethodOpenPathToNodeSettings, r.OpenPathToNodeSettings},
		{entity.MethodBrowseTo, r.BrowseTo},
		{entity.MethodOpenConnectionSettings, r.OpenConnectionSettings},
		{entity.MethodShowHotspot, r.ShowHotspot},
		{entity.MethodShowTaintVulnerability, r.ShowTaintVulnerability},
		{entity.MethodGetBranchNameForFolder, r.GetBranchNameForFolder},
		{protocol.MethodWindowLogMessage, r.LogMessage},
		{protocol.MethodWindowShowMessage, r.ShowMessage},
		{protocol.MethodTextDocumentPublishDiagnostics, r.PublishDiagnostics},
		{protocol.MethodWorkspaceConfiguration, r.Configuration},
	}
	for _, route := range routes {
		if err := r.register(route.method, route.handler); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *jsonRPCRouter) register(method string, h methodHandler) error {
	if _, ok := r.table[method]; ok {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateHandler, method)
	}
	r.table[method] = h
	return nil
}

func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	h, ok := r.table[req.Method()]
	if !ok {
		r.stats.Counter("unknown_method").Inc(1)
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)
	return h(ctx, reply, req)
}

func (r *jsonRPCRouter) Methods() []string {
	methods := make([]string, 0, len(r.table))
	for m := range r.table {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}
