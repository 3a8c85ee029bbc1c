// Package factory builds sample values for tests.
package factory

import (
	"github.com/uber/lint-client/src/lintclient/entity"
	"go.lsp.dev/jsonrpc2"
)

// JSONRPCRequest builds a call with a fixed ID.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// JSONRPCNotification builds a notification.
func JSONRPCNotification(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewNotification(method, params)
	return req
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// TaintIssue is an issue with one flow of two locations, the way the server reports a taint vulnerability.
func TaintIssue() entity.Issue {
	return entity.Issue{
		FileURI:      "file:///workspace/app/src/Controller.java",
		Message:      "Change this code to not construct SQL queries directly from user-controlled data.",
		Severity:     "BLOCKER",
		RuleKey:      "javasecurity:S3649",
		ConnectionID: "cloud-org",
		CreationDate: StringPtr("2023-05-17T09:41:00Z"),
		TextRange:    &entity.TextRange{StartLine: 42, StartLineOffset: 8, EndLine: 42, EndLineOffset: 30},
		Flows: []entity.Flow{
			{
				Locations: []entity.IssueLocation{
					{
						URI:       "file:///workspace/app/src/Repository.java",
						FilePath:  "/workspace/app/src/Repository.java",
						TextRange: &entity.TextRange{StartLine: 10, StartLineOffset: 4, EndLine: 10, EndLineOffset: 20},
						Message:   StringPtr("Sink: this invocation is not safe"),
						Exists:    true,
					},
					{
						FilePath:  "/workspace/app/src/Controller.java",
						TextRange: &entity.TextRange{StartLine: 40, StartLineOffset: 2, EndLine: 40, EndLineOffset: 18},
						Message:   StringPtr("Source: a user can craft an HTTP request"),
						Exists:    true,
					},
				},
			},
		},
	}
}

// SampleHotspot is a hotspot with a populated rule.
func SampleHotspot() entity.Hotspot {
	return entity.Hotspot{
		Key:         "AYhSN6mVrRF_krvNbHl1",
		Message:     "Make sure that this cookie is written over HTTPS only.",
		IDEFilePath: "src/main/java/Cookies.java",
		TextRange:   &entity.TextRange{StartLine: 12, StartLineOffset: 4, EndLine: 12, EndLineOffset: 40},
		Author:      "dev@example.com",
		Status:      "TO_REVIEW",
		Rule: entity.HotspotRule{
			Key:                      "java:S2092",
			Name:                     "Creating cookies without the secure flag is security-sensitive",
			SecurityCategory:         "insecure-conf",
			VulnerabilityProbability: "LOW",
			RiskDescription:          "<p>Cookies can be sent over plain HTTP.</p>",
			VulnerabilityDescription: "<p>Ask yourself whether the cookie carries sensitive data.</p>",
			FixRecommendations:       "<p>Set the secure flag.</p>",
		},
	}
}
