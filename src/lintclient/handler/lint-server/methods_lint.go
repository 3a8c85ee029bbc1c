package lintserver

import (
	"context"

	"github.com/uber/lint-client/src/lintclient/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) ShowRuleDescription(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToShowRuleDescriptionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.uiactions.ShowRuleDescription(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) GetJavaConfig(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	fileURI, err := mapper.RequestToString(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.uiactions.GetJavaConfig(ctx, fileURI)
	if err != nil {
		r.logger.Warnf("Failed to resolve Java configuration for %s: %v", fileURI, err)
		return reply(ctx, nil, nil)
	}
	if result == nil {
		return reply(ctx, nil, nil)
	}
	return reply(ctx, result, nil)
}

// IsIgnoredByScm fails open: anything short of a positive answer means not ignored.
func (r *jsonRPCRouter) IsIgnoredByScm(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	fileURI, err := mapper.RequestToString(req)
	if err != nil {
		return reply(ctx, false, nil)
	}

	return reply(ctx, r.uiactions.IsIgnoredByScm(ctx, fileURI), nil)
}

func (r *jsonRPCRouter) ShowNotificationForFirstSecrets(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.uiactions.ShowFirstSecretNotification(ctx)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) ShowOutput(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.uiactions.ShowOutput(ctx)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) OpenJavaHomeSettings(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.uiactions.OpenJavaHomeSettings(ctx)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) OpenPathToNodeSettings(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.uiactions.OpenPathToNodeSettings(ctx)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) BrowseTo(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	url, err := mapper.RequestToString(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.uiactions.BrowseTo(ctx, url)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) OpenConnectionSettings(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	cloud, err := mapper.RequestToBool(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.uiactions.OpenConnectionSettings(ctx, cloud)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) ShowHotspot(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	hotspot, err := mapper.RequestToHotspot(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.uiactions.ShowHotspot(ctx, hotspot)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) ShowTaintVulnerability(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	issue, err := mapper.RequestToIssue(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.uiactions.ShowTaintVulnerability(ctx, issue)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) GetBranchNameForFolder(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	folderURI, err := mapper.RequestToString(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	if branch := r.uiactions.GetBranchNameForFolder(ctx, folderURI); branch != nil {
		return reply(ctx, *branch, nil)
	}
	return reply(ctx, nil, nil)
}
