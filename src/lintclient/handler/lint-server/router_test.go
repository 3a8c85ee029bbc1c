package lintserver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v4"
	"github.com/uber/lint-client/src/lintclient/controller/ui-actions/uiactionsmock"
	"github.com/uber/lint-client/src/lintclient/entity"
	lcerrors "github.com/uber/lint-client/src/lintclient/internal/errors"
	"github.com/uber/lint-client/src/lintclient/factory"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordedReply struct {
	calls  int
	result interface{}
	err    error
}

func (r *recordedReply) replier() jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		r.calls++
		r.result = result
		r.err = err
		return err
	}
}

func newRouter(t *testing.T) (*jsonRPCRouter, *uiactionsmock.MockController, tally.TestScope) {
	ctrl := gomock.NewController(t)
	c := uiactionsmock.NewMockController(ctrl)
	stats := tally.NewTestScope("", nil)
	r, err := New(Params{Controller: c, Logger: zap.NewNop().Sugar(), Stats: stats})
	require.NoError(t, err)
	return r.(*jsonRPCRouter), c, stats
}

func TestNew_ClosedTable(t *testing.T) {
	r, _, _ := newRouter(t)
	assert.Equal(t, []string{
		entity.MethodBrowseTo,
		entity.MethodGetBranchNameForFolder,
		entity.MethodGetJavaConfig,
		entity.MethodIsIgnoredByScm,
		entity.MethodOpenConnectionSettings,
		entity.MethodOpenJavaHomeSettings,
		entity.MethodOpenPathToNodeSettings,
		entity.MethodShowRuleDescription,
		entity.MethodShowHotspot,
		entity.MethodShowNotificationForFirstSecrets,
		entity.MethodShowOutput,
		entity.MethodShowTaintVulnerability,
		protocol.MethodTextDocumentPublishDiagnostics,
		protocol.MethodWindowLogMessage,
		protocol.MethodWindowShowMessage,
		protocol.MethodWorkspaceConfiguration,
	}, r.Methods())
}

func TestRegister_Duplicate(t *testing.T) {
	r, _, _ := newRouter(t)
	err := r.register(entity.MethodShowOutput, r.ShowOutput)
	assert.ErrorIs(t, err, lcerrors.ErrDuplicateHandler)
	assert.ErrorContains(t, err, entity.MethodShowOutput)
}

func TestHandleReq_UnknownMethod(t *testing.T) {
	ctx := context.Background()
	r, _, stats := newRouter(t)
	rec := &recordedReply{}

	err := r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest("lint/unknown", nil))
	assert.ErrorIs(t, err, jsonrpc2.ErrMethodNotFound)
	assert.Equal(t, int64(1), stats.Snapshot().Counters()["router.unknown_method+"].Value())
}

func TestHandleReq_NoReplyMethods(t *testing.T) {
	tests := []struct {
		name   string
		method string
		params interface{}
		expect func(c *uiactionsmock.MockController, err error)
	}{
		{
			name:   "ShowRuleDescription",
			method: entity.MethodShowRuleDescription,
			params: entity.ShowRuleDescriptionParams{Key: "java:S1", Name: "Rule"},
			expect: func(c *uiactionsmock.MockController, err error) {
				c.EXPECT().ShowRuleDescription(gomock.Any(), &entity.ShowRuleDescriptionParams{Key: "java:S1", Name: "Rule"}).Return(err)
			},
		},
		{
			name:   "ShowNotificationForFirstSecrets",
			method: entity.MethodShowNotificationForFirstSecrets,
			expect: func(c *uiactionsmock.MockController, err error) {
				c.EXPECT().ShowFirstSecretNotification(gomock.Any()).Return(err)
			},
		},
		{
			name:   "ShowOutput",
			method: entity.MethodShowOutput,
			expect: func(c *uiactionsmock.MockController, err error) {
				c.EXPECT().ShowOutput(gomock.Any()).Return(err)
			},
		},
		{
			name:   "OpenJavaHomeSettings",
			method: entity.MethodOpenJavaHomeSettings,
			expect: func(c *uiactionsmock.MockController, err error) {
				c.EXPECT().OpenJavaHomeSettings(gomock.Any()).Return(err)
			},
		},
		{
			name:   "OpenPathToNodeSettings",
			method: entity.MethodOpenPathToNodeSettings,
			expect: func(c *uiactionsmock.MockController, err error) {
				c.EXPECT().OpenPathToNodeSettings(gomock.Any()).Return(err)
			},
		},
		{
			name:   "BrowseTo",
			method: entity.MethodBrowseTo,
			params: "https://rules.example.com",
			expect: func(c *uiactionsmock.MockController, err error) {
				c.EXPECT().BrowseTo(gomock.Any(), "https://rules.example.com").Return(err)
			},
		},
		{
			name:   "OpenConnectionSettings",
			method: entity.MethodOpenConnectionSettings,
			params: []bool{true},
			expect: func(c *uiactionsmock.MockController, err error) {
				c.EXPECT().OpenConnectionSettings(gomock.Any(), true).Return(err)
			},
		},
		{
			name:   "ShowHotspot",
			method: entity.MethodShowHotspot,
			params: factory.SampleHotspot(),
			expect: func(c *uiactionsmock.MockController, err error) {
				hotspot := factory.SampleHotspot()
				c.EXPECT().ShowHotspot(gomock.Any(), &hotspot).Return(err)
			},
		},
		{
			name:   "ShowTaintVulnerability",
			method: entity.MethodShowTaintVulnerability,
			params: factory.TaintIssue(),
			expect: func(c *uiactionsmock.MockController, err error) {
				issue := factory.TaintIssue()
				c.EXPECT().ShowTaintVulnerability(gomock.Any(), &issue).Return(err)
			},
		},
		{
			name:   "LogMessage",
			method: protocol.MethodWindowLogMessage,
			params: protocol.LogMessageParams{Type: protocol.MessageTypeInfo, Message: "hello"},
			expect: func(c *uiactionsmock.MockController, err error) {
				c.EXPECT().LogMessage(gomock.Any(), &protocol.LogMessageParams{Type: protocol.MessageTypeInfo, Message: "hello"}).Return(err)
			},
		},
		{
			name:   "ShowMessage",
			method: protocol.MethodWindowShowMessage,
			params: protocol.ShowMessageParams{Type: protocol.MessageTypeError, Message: "boom"},
			expect: func(c *uiactionsmock.MockController, err error) {
				c.EXPECT().ShowMessage(gomock.Any(), &protocol.ShowMessageParams{Type: protocol.MessageTypeError, Message: "boom"}).Return(err)
			},
		},
		{
			name:   "PublishDiagnostics",
			method: protocol.MethodTextDocumentPublishDiagnostics,
			params: protocol.PublishDiagnosticsParams{URI: "file:///a.java"},
			expect: func(c *uiactionsmock.MockController, err error) {
				c.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Return(err)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			r, c, stats := newRouter(t)

			tt.expect(c, nil)
			rec := &recordedReply{}
			require.NoError(t, r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(tt.method, tt.params)))
			assert.Equal(t, 1, rec.calls)
			assert.Nil(t, rec.result)
			assert.Equal(t, int64(1), stats.Snapshot().Counters()["router.requests+method="+tt.method].Value())

			tt.expect(c, errors.New("controller failed"))
			rec = &recordedReply{}
			assert.Error(t, r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(tt.method, tt.params)))
			assert.Equal(t, 1, rec.calls)

			if tt.params != nil {
				rec = &recordedReply{}
				err := r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(tt.method, 5))
				assert.ErrorContains(t, err, jsonrpc2.ErrParse.Error())
			}
		})
	}
}

func TestGetJavaConfig(t *testing.T) {
	ctx := context.Background()
	r, c, _ := newRouter(t)
	config := &entity.GetJavaConfigResponse{ProjectRoot: "file:///ws", SourceLevel: "17"}

	c.EXPECT().GetJavaConfig(gomock.Any(), "file:///ws/A.java").Return(config, nil)
	rec := &recordedReply{}
	require.NoError(t, r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(entity.MethodGetJavaConfig, "file:///ws/A.java")))
	assert.Equal(t, config, rec.result)

	c.EXPECT().GetJavaConfig(gomock.Any(), "file:///ws/B.java").Return(nil, errors.New("no java support"))
	rec = &recordedReply{}
	require.NoError(t, r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(entity.MethodGetJavaConfig, "file:///ws/B.java")))
	assert.Nil(t, rec.result, "resolver failures reply null")

	c.EXPECT().GetJavaConfig(gomock.Any(), "file:///ws/C.java").Return(nil, nil)
	rec = &recordedReply{}
	require.NoError(t, r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(entity.MethodGetJavaConfig, "file:///ws/C.java")))
	assert.Nil(t, rec.result)
}

func TestIsIgnoredByScm(t *testing.T) {
	ctx := context.Background()
	r, c, _ := newRouter(t)

	c.EXPECT().IsIgnoredByScm(gomock.Any(), "file:///ws/build/out.class").Return(true)
	rec := &recordedReply{}
	require.NoError(t, r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(entity.MethodIsIgnoredByScm, []string{"file:///ws/build/out.class"})))
	assert.Equal(t, true, rec.result)

	rec = &recordedReply{}
	require.NoError(t, r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(entity.MethodIsIgnoredByScm, 42)))
	assert.Equal(t, false, rec.result, "undecodable params fail open")
}

func TestGetBranchNameForFolder(t *testing.T) {
	ctx := context.Background()
	r, c, _ := newRouter(t)

	c.EXPECT().GetBranchNameForFolder(gomock.Any(), "file:///ws").Return(factory.StringPtr("feature/x"))
	rec := &recordedReply{}
	require.NoError(t, r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(entity.MethodGetBranchNameForFolder, "file:///ws")))
	assert.Equal(t, "feature/x", rec.result)

	c.EXPECT().GetBranchNameForFolder(gomock.Any(), "file:///other").Return(nil)
	rec = &recordedReply{}
	require.NoError(t, r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(entity.MethodGetBranchNameForFolder, "file:///other")))
	assert.Nil(t, rec.result)
}

func TestConfiguration(t *testing.T) {
	ctx := context.Background()
	r, c, _ := newRouter(t)
	params := protocol.ConfigurationParams{Items: []protocol.ConfigurationItem{{Section: "lint"}}}

	c.EXPECT().Configuration(gomock.Any(), &params).Return([]interface{}{map[string]interface{}{"rules": nil}}, nil)
	rec := &recordedReply{}
	require.NoError(t, r.HandleReq(ctx, rec.replier(), factory.JSONRPCRequest(protocol.MethodWorkspaceConfiguration, params)))
	assert.Equal(t, []interface{}{map[string]interface{}{"rules": nil}}, rec.result)
}
