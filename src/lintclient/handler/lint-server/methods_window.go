package lintserver

import (
	"context"

	"github.com/uber/lint-client/src/lintclient/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) LogMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToLogMessageParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.uiactions.LogMessage(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) ShowMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToShowMessageParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.uiactions.ShowMessage(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) PublishDiagnostics(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToPublishDiagnosticsParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.uiactions.PublishDiagnostics(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) Configuration(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToConfigurationParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.uiactions.Configuration(ctx, params)
	return reply(ctx, result, err)
}
