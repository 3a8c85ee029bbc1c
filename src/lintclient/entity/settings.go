package entity

// RuleLevel is an explicit activation override for a rule.
type RuleLevel string

const (
	// RuleLevelOn activates a rule regardless of the server-side default.
	RuleLevelOn RuleLevel = "on"
	// RuleLevelOff deactivates a rule regardless of the server-side default.
	RuleLevelOff RuleLevel = "off"
)

// RuleLevelOverride is the persisted shape of a rule override.
type RuleLevelOverride struct {
	Level      RuleLevel         `json:"level" yaml:"level"`
	Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// RulesConfiguration maps a rule key to its override. Rules without an entry use the server-side default.
type RulesConfiguration map[string]RuleLevelOverride

// Settings is the configuration surface read by the client.
type Settings struct {
	Runtime               RuntimeSettings       `yaml:"runtime"`
	PathToNodeExecutable  string                `yaml:"pathToNodeExecutable"`
	Rules                 RulesConfiguration    `yaml:"rules"`
	DisableTelemetry      bool                  `yaml:"disableTelemetry"`
	Output                OutputSettings        `yaml:"output"`
	ConnectedMode         ConnectedModeSettings `yaml:"connectedMode"`
	PathToCompileCommands string                `yaml:"pathToCompileCommands"`
}

// RuntimeSettings configure the process that hosts the analysis server.
type RuntimeSettings struct {
	Home   string `yaml:"home"`
	VMArgs string `yaml:"vmargs"`
}

// OutputSettings configure the diagnostic log.
type OutputSettings struct {
	ShowVerboseLogs bool `yaml:"showVerboseLogs"`
}

// ConnectedModeSettings hold the connections to remote analysis services.
type ConnectedModeSettings struct {
	Connections ConnectionSettings `yaml:"connections"`
}

// ConnectionSettings list the configured connections per kind.
type ConnectionSettings struct {
	Cloud      []map[string]string `yaml:"cloud"`
	SelfHosted []map[string]string `yaml:"selfHosted"`
}

// SettingsRoot is the section all settings keys are relative to.
const SettingsRoot = "lint"

// QualifiedSetting returns the key as the user writes it, including the settings root.
func QualifiedSetting(key string) string {
	return SettingsRoot + "." + key
}

// Settings keys, relative to the settings root.
const (
	SettingRuntimeHome           = "runtime.home"
	SettingRuntimeVMArgs         = "runtime.vmargs"
	SettingPathToNodeExecutable  = "pathToNodeExecutable"
	SettingRules                 = "rules"
	SettingDisableTelemetry      = "disableTelemetry"
	SettingShowVerboseLogs       = "output.showVerboseLogs"
	SettingCloudConnections      = "connectedMode.connections.cloud"
	SettingSelfHostedConnections = "connectedMode.connections.selfHosted"
	SettingPathToCompileCommands = "pathToCompileCommands"
)

// RestartRequiredSettings are the keys whose change only applies after the server process restarts.
var RestartRequiredSettings = []string{
	SettingRuntimeHome,
	SettingRuntimeVMArgs,
	SettingPathToNodeExecutable,
}

// SettingsChange is published when the persisted settings change.
type SettingsChange struct {
	Previous Settings
	Current  Settings
	// ChangedKeys lists the settings keys whose value differs.
	ChangedKeys []string
}

// Affects reports whether the given key changed.
func (c SettingsChange) Affects(key string) bool {
	for _, k := range c.ChangedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// RequiresRestart reports whether any changed key only applies after a process restart.
func (c SettingsChange) RequiresRestart() bool {
	for _, k := range RestartRequiredSettings {
		if c.Affects(k) {
			return true
		}
	}
	return false
}
