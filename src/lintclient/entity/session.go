// Package entity contains the domain types shared by the lint-client components.
package entity

// SessionState tracks the readiness of a client session.
type SessionState int

const (
	// SessionStateNotStarted is the initial state, before Start is called.
	SessionStateNotStarted SessionState = iota
	// SessionStateStarting means the handshake is in progress.
	SessionStateStarting
	// SessionStateReady means the server answered initialize and the session accepts traffic.
	SessionStateReady
	// SessionStateStopped means the transport has been torn down.
	SessionStateStopped
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case SessionStateNotStarted:
		return "not-started"
	case SessionStateStarting:
		return "starting"
	case SessionStateReady:
		return "ready"
	case SessionStateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// RuntimeRequirement is the resolved runtime used to launch the analysis server.
type RuntimeRequirement struct {
	JavaHome       string `json:"javaHome" zap:"javaHome"`
	JavaExecutable string `json:"javaExecutable" zap:"javaExecutable"`
	MajorVersion   int    `json:"majorVersion" zap:"majorVersion"`
}

// AnalyzerArtifacts lists the absolute paths of the analyzer plugins handed to the server.
type AnalyzerArtifacts struct {
	ServerJar string   `json:"serverJar" yaml:"serverJar"`
	Analyzers []string `json:"analyzers" yaml:"analyzers"`
	Extra     []string `json:"extra" yaml:"extra"`
}

// HostEnvironment describes the editor hosting the client.
type HostEnvironment struct {
	ProductKey     string `yaml:"productKey"`
	ProductName    string `yaml:"productName"`
	ProductVersion string `yaml:"productVersion"`
	UIKind         string `yaml:"uiKind"`
	RemoteName     string `yaml:"remoteName"`
	// TypeScriptLocation points at an optional embedded type-analysis runtime.
	TypeScriptLocation string `yaml:"typeScriptLocation"`
	// StorageDir is where telemetry and persisted state are written.
	StorageDir string `yaml:"storageDir"`
}

// InitializationOptions are sent once, in the initialize request.
type InitializationOptions struct {
	ProductKey           string               `json:"productKey"`
	TelemetryStorage     string               `json:"telemetryStorage"`
	ProductName          string               `json:"productName"`
	ProductVersion       string               `json:"productVersion"`
	WorkspaceName        string               `json:"workspaceName"`
	TypeScriptLocation   string               `json:"typeScriptLocation,omitempty"`
	FirstSecretDetected  bool                 `json:"firstSecretDetected"`
	ShowVerboseLogs      bool                 `json:"showVerboseLogs"`
	Rules                RulesConfiguration   `json:"rules,omitempty"`
	AdditionalAttributes AdditionalAttributes `json:"additionalAttributes"`
}

// AdditionalAttributes carries free-form host environment details.
type AdditionalAttributes struct {
	Host map[string]string `json:"host"`
}

// StateFirstSecretDetected is the persisted flag recording that the first-secret warning was shown.
const StateFirstSecretDetected = "firstSecretDetected"

// WorkspaceFolder is a folder opened in the host editor, identified by its file system path.
type WorkspaceFolder struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}
