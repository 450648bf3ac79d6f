package wizard

import (
	"bytes"
	"text/template"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	// Sources to enable
	EnableJenkins    bool
	EnableKubernetes bool
	EnableStatic     bool

	// Jenkins settings
	JenkinsURL   string
	JenkinsUser  string
	ResolveHosts bool

	// Kubernetes settings
	Kubeconfig    string
	LabelSelector string

	// Static settings
	NodeFile string

	// Output settings
	OutputDir    string
	SlackWebhook string
	SlackChannel string
	GitPublish   bool
}

const configTemplate = `# jenkins-helper node inventory configuration

output_dir: {{ .OutputDir }}
outputs:
  table: nodes.txt
  ini: inventory.ini
  alert: alert.txt

sources:
{{- if .EnableJenkins }}
  jenkins:
    url: {{ .JenkinsURL }}
{{- if .JenkinsUser }}
    user: {{ .JenkinsUser }}
    # api_token is read from JENKINS_API_TOKEN
{{- end }}
    resolve_hosts: {{ if .ResolveHosts }}true{{ else }}false{{ end }}
{{- end }}

{{- if .EnableKubernetes }}
  kubernetes:
{{- if .Kubeconfig }}
    kubeconfig: {{ .Kubeconfig }}
{{- end }}
{{- if .LabelSelector }}
    label_selector: {{ printf "%q" .LabelSelector }}
{{- end }}
{{- end }}

{{- if .EnableStatic }}
  static:
    file: {{ .NodeFile }}
{{- end }}
{{- if .SlackWebhook }}

notify:
  slack:
    webhook_url: {{ .SlackWebhook }}
{{- if .SlackChannel }}
    channel: {{ printf "%q" .SlackChannel }}
{{- end }}
{{- end }}
{{- if .GitPublish }}

publish:
  git:
    dir: {{ .OutputDir }}
    push: true
{{- end }}
`

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	// Set defaults
	if answers.OutputDir == "" {
		answers.OutputDir = "."
	}

	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}
