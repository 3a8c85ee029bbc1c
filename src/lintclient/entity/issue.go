package entity

import (
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// TextRange is a range as reported by the analysis server: 1-based lines, 0-based offsets.
type TextRange struct {
	StartLine       uint32 `json:"startLine"`
	StartLineOffset uint32 `json:"startLineOffset"`
	EndLine         uint32 `json:"endLine"`
	EndLineOffset   uint32 `json:"endLineOffset"`
}

// IssueLocation is one step of an issue flow.
type IssueLocation struct {
	URI         string     `json:"uri"`
	FilePath    string     `json:"filePath"`
	TextRange   *TextRange `json:"textRange,omitempty"`
	Message     *string    `json:"message,omitempty"`
	Exists      bool       `json:"exists"`
	CodeMatches bool       `json:"codeMatches"`
}

// Flow is an ordered list of locations.
type Flow struct {
	Locations []IssueLocation `json:"locations"`
}

// Issue is an issue with optional flows, sent when the server asks to show all of its locations.
type Issue struct {
	FileURI      string     `json:"fileUri"`
	Message      string     `json:"message"`
	Severity     string     `json:"severity"`
	RuleKey      string     `json:"ruleKey"`
	ConnectionID string     `json:"connectionId,omitempty"`
	CreationDate *string    `json:"creationDate,omitempty"`
	TextRange    *TextRange `json:"textRange,omitempty"`
	Flows        []Flow     `json:"flows"`
}

// SecondaryLocation is an auxiliary code range displayed for the active issue.
type SecondaryLocation struct {
	URI     uri.URI        `json:"uri"`
	Range   protocol.Range `json:"range"`
	Index   int            `json:"index"`
	Message *string        `json:"message,omitempty"`
}

// DisplayedIssue is what the location tree currently shows.
type DisplayedIssue struct {
	Issue     Issue
	Locations []SecondaryLocation
	Header    *string
}

// Hotspot is a security hotspot the server asks the client to reveal.
type Hotspot struct {
	Key         string      `json:"key"`
	Message     string      `json:"message"`
	IDEFilePath string      `json:"ideFilePath"`
	TextRange   *TextRange  `json:"textRange,omitempty"`
	Author      string      `json:"author"`
	Status      string      `json:"status"`
	Resolution  string      `json:"resolution,omitempty"`
	Rule        HotspotRule `json:"rule"`
	CodeSnippet string      `json:"codeSnippet,omitempty"`
}

// HotspotRule describes the rule a hotspot was raised by.
type HotspotRule struct {
	Key                      string `json:"key"`
	Name                     string `json:"name"`
	SecurityCategory         string `json:"securityCategory"`
	VulnerabilityProbability string `json:"vulnerabilityProbability"`
	RiskDescription          string `json:"riskDescription"`
	VulnerabilityDescription string `json:"vulnerabilityDescription"`
	FixRecommendations       string `json:"fixRecommendations"`
}
