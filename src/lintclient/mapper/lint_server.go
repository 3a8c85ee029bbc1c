package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/uber/lint-client/src/lintclient/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// RequestToShowRuleDescriptionParams maps the parameters from a jsonrpc2.Request into entity.ShowRuleDescriptionParams.
func RequestToShowRuleDescriptionParams(req jsonrpc2.Request) (*entity.ShowRuleDescriptionParams, error) {
	params := entity.ShowRuleDescriptionParams{}
	if err := decodeParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToHotspot maps the parameters from a jsonrpc2.Request into entity.Hotspot.
func RequestToHotspot(req jsonrpc2.Request) (*entity.Hotspot, error) {
	params := entity.Hotspot{}
	if err := decodeParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToIssue maps the parameters from a jsonrpc2.Request into entity.Issue.
func RequestToIssue(req jsonrpc2.Request) (*entity.Issue, error) {
	params := entity.Issue{}
	if err := decodeParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToString maps a request carrying a single string, such as a file URI or a URL.
func RequestToString(req jsonrpc2.Request) (string, error) {
	var s string
	if err := decodeParams(req, &s); err != nil {
		return "", err
	}
	return s, nil
}

// RequestToBool maps a request carrying a single boolean.
func RequestToBool(req jsonrpc2.Request) (bool, error) {
	var b bool
	if err := decodeParams(req, &b); err != nil {
		return false, err
	}
	return b, nil
}

// RequestToBranchNameChangeParams maps the parameters from a jsonrpc2.Request into entity.BranchNameChangeParams.
func RequestToBranchNameChangeParams(req jsonrpc2.Request) (*entity.BranchNameChangeParams, error) {
	params := entity.BranchNameChangeParams{}
	if err := decodeParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToLogMessageParams maps the parameters from a jsonrpc2.Request into protocol.LogMessageParams.
func RequestToLogMessageParams(req jsonrpc2.Request) (*protocol.LogMessageParams, error) {
	params := protocol.LogMessageParams{}
	if err := decodeParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToShowMessageParams maps the parameters from a jsonrpc2.Request into protocol.ShowMessageParams.
func RequestToShowMessageParams(req jsonrpc2.Request) (*protocol.ShowMessageParams, error) {
	params := protocol.ShowMessageParams{}
	if err := decodeParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToPublishDiagnosticsParams maps the parameters from a jsonrpc2.Request into protocol.PublishDiagnosticsParams.
func RequestToPublishDiagnosticsParams(req jsonrpc2.Request) (*protocol.PublishDiagnosticsParams, error) {
	params := protocol.PublishDiagnosticsParams{}
	if err := decodeParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToConfigurationParams maps the parameters from a jsonrpc2.Request into protocol.ConfigurationParams.
func RequestToConfigurationParams(req jsonrpc2.Request) (*protocol.ConfigurationParams, error) {
	params := protocol.ConfigurationParams{}
	if err := decodeParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// decodeParams accepts both by-name parameters and a single by-position parameter wrapped in an array,
// which is how single-valued requests are framed by some senders.
func decodeParams(req jsonrpc2.Request, v interface{}) error {
	raw := bytes.TrimSpace(req.Params())
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return wrapErrParse(fmt.Errorf("missing params for %s", req.Method()))
	}
	if raw[0] == '[' {
		var positional []json.RawMessage
		if err := json.Unmarshal(raw, &positional); err == nil && len(positional) == 1 {
			raw = positional[0]
		}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return wrapErrParse(err)
	}
	return nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
