package uiactions

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/uber/lint-client/src/lintclient/entity"
)

var _ruleTemplate = template.Must(template.New("rule").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="Content-Security-Policy" content="default-src 'none'; style-src 'unsafe-inline'; img-src data:;">
<title>{{.Name}}</title>
</head>
<body>
<h1><big>{{.Name}}</big> ({{.Key}})</h1>
<div class="rule-meta">
{{- if .Type}}<span class="rule-type">{{.Type}}</span>{{end}}
{{- if .Severity}} <span class="rule-severity">{{.Severity}}</span>{{end}}
{{- if .IsTaint}} <span class="rule-taint">Taint analysis</span>{{end}}
</div>
<div class="rule-desc">{{.Description}}</div>
{{- if .Parameters}}
<table class="rule-params">
<caption>Parameters</caption>
{{- range .Parameters}}
<tr><th>{{.Name}}</th><td>{{.Description}}{{if .DefaultValue}}<br>(Default value: <code>{{.DefaultValue}}</code>){{end}}</td></tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`))

type ruleView struct {
	*entity.ShowRuleDescriptionParams
	Description template.HTML
	Type        string
	Severity    string
}

// RenderRuleDescription renders a rule as a standalone HTML page. The description is server-provided HTML and is not escaped.
func RenderRuleDescription(rule *entity.ShowRuleDescriptionParams) (string, error) {
	var buf bytes.Buffer
	err := _ruleTemplate.Execute(&buf, ruleView{
		ShowRuleDescriptionParams: rule,
		Description:               template.HTML(rule.HTMLDescription),
		Type:                      humanize(rule.Type),
		Severity:                  humanize(rule.Severity),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// humanize turns CODE_SMELL into Code smell.
func humanize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	return strings.ToUpper(s[:1]) + s[1:]
}
