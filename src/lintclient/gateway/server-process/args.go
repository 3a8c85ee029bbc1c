package serverprocess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/uber/lint-client/src/lintclient/entity"
	"github.com/uber/lint-client/src/lintclient/mapper"
)

const (
	_flagJar            = "-jar"
	_flagAnalyzers      = "-analyzers"
	_flagExtraAnalyzers = "-extraAnalyzers"

	_propTelemetryDisabled = "-Dlint.telemetry.disabled"
	_propNodePath          = "-Dlint.nodejs.path"
)

// ArgsParams are the inputs to BuildArgs.
type ArgsParams struct {
	// VMArgs is the raw, user-provided argument string.
	VMArgs    string
	Implicit  []string
	ServerJar string
	Port      int
	Artifacts entity.AnalyzerArtifacts
}

// ImplicitArgs derives the arguments the client always adds for the given settings.
func ImplicitArgs(settings entity.Settings) []string {
	var args []string
	if settings.DisableTelemetry {
		args = append(args, _propTelemetryDisabled+"=true")
	}
	if settings.PathToNodeExecutable != "" {
		args = append(args, _propNodePath+"="+settings.PathToNodeExecutable)
	}
	return args
}

// ParseVMArgs tokenizes a user-provided argument string. Quotes group words and are stripped.
// Repeated arguments are kept once, at their first position.
func ParseVMArgs(s string) ([]string, error) {
	tokens, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("parsing vm arguments %q: %w", s, err)
	}
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}

// BuildArgs returns the positional startup arguments of the analysis server:
// user VM args, implicit args not already set by the user, the server jar, the port,
// then the analyzer locations and optionally the supplementary ones.
func BuildArgs(p ArgsParams) ([]string, error) {
	vmArgs, err := ParseVMArgs(p.VMArgs)
	if err != nil {
		return nil, err
	}

	userKeys := make(map[string]struct{}, len(vmArgs))
	for _, a := range vmArgs {
		userKeys[argKey(a)] = struct{}{}
	}

	args := append([]string{}, vmArgs...)
	for _, a := range p.Implicit {
		if _, ok := userKeys[argKey(a)]; ok {
			continue
		}
		args = append(args, a)
	}

	args = append(args, _flagJar, p.ServerJar, strconv.Itoa(p.Port))
	args = append(args, _flagAnalyzers)
	args = append(args, mapper.PathsToURLs(p.Artifacts.Analyzers)...)
	if len(p.Artifacts.Extra) > 0 {
		args = append(args, _flagExtraAnalyzers)
		args = append(args, mapper.PathsToURLs(p.Artifacts.Extra)...)
	}
	return args, nil
}

// argKey identifies what an argument configures, so that "-Dkey=a" and "-Dkey=b" collide.
func argKey(arg string) string {
	switch {
	case strings.HasPrefix(arg, "-D"):
		if i := strings.IndexByte(arg, '='); i > 0 {
			return arg[:i]
		}
		return arg
	case strings.HasPrefix(arg, "-Xmx"), strings.HasPrefix(arg, "-Xms"), strings.HasPrefix(arg, "-Xss"):
		return arg[:4]
	default:
		return arg
	}
}
