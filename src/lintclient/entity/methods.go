package entity

// Server-to-client methods. The set is closed: the router registers each of them exactly once.
const (
	MethodShowRuleDescription             = "lint/showRuleDescription"
	MethodGetJavaConfig                   = "lint/getJavaConfig"
	MethodIsIgnoredByScm                  = "lint/isIgnoredByScm"
	MethodShowNotificationForFirstSecrets = "lint/showNotificationForFirstSecretsIssue"
	MethodShowOutput                      = "lint/showOutput"
	MethodOpenJavaHomeSettings            = "lint/openJavaHomeSettings"
	MethodOpenPathToNodeSettings          = "lint/openPathToNodeSettings"
	MethodBrowseTo                        = "lint/browseTo"
	MethodOpenConnectionSettings          = "lint/openConnectionSettings"
	MethodShowHotspot                     = "lint/showHotspot"
	MethodShowTaintVulnerability          = "lint/showTaintVulnerability"
	MethodGetBranchNameForFolder          = "lint/getBranchNameForFolder"
)

// Client-to-server notifications beyond the standard protocol.
const (
	MethodDidLocalBranchNameChange = "lint/didLocalBranchNameChange"
)

// RuleParameter describes a configurable rule parameter.
type RuleParameter struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DefaultValue string `json:"defaultValue,omitempty"`
}

// ShowRuleDescriptionParams is sent by the server to display a rule.
type ShowRuleDescriptionParams struct {
	Key             string          `json:"key"`
	Name            string          `json:"name"`
	HTMLDescription string          `json:"htmlDescription"`
	Type            string          `json:"type"`
	Severity        string          `json:"severity"`
	IsTaint         bool            `json:"isTaint"`
	Parameters      []RuleParameter `json:"parameters,omitempty"`
}

// GetJavaConfigResponse is the language-specific project configuration for a file.
type GetJavaConfigResponse struct {
	ProjectRoot string   `json:"projectRoot"`
	SourceLevel string   `json:"sourceLevel"`
	Classpath   []string `json:"classpath"`
	IsTest      bool     `json:"isTest"`
	VMLocation  string   `json:"vmLocation,omitempty"`
}

// BranchNameChangeParams notifies the server that the branch of a workspace folder changed.
// BranchName is nil when HEAD is detached or unknown.
type BranchNameChangeParams struct {
	FolderURI  string  `json:"folderUri"`
	BranchName *string `json:"branchName"`
}
