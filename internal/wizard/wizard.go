package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		OutputDir:    ".",
		ResolveHosts: true,
	}

	// Build detection summary
	var hints []string
	if detection.JenkinsURL != "" {
		hints = append(hints, fmt.Sprintf("Jenkins controller: %s", detection.JenkinsURL))
	}
	if detection.Kubeconfig != "" {
		hints = append(hints, fmt.Sprintf("Kubeconfig found: %s", detection.Kubeconfig))
	}
	if detection.NodeFile != "" {
		hints = append(hints, fmt.Sprintf("Node file found: %s", detection.NodeFile))
	}

	// Pre-select detected sources
	var preSelected []string
	if detection.JenkinsURL != "" {
		preSelected = append(preSelected, "jenkins")
	}
	if detection.Kubeconfig != "" {
		preSelected = append(preSelected, "kubernetes")
	}
	if detection.NodeFile != "" {
		preSelected = append(preSelected, "static")
	}

	// Step 1: Source selection
	var selectedSources []string

	desc := "Select where the worker machines are registered."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	sourceForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which node sources do you want to enable?").
				Description(desc).
				Options(
					huh.NewOption("Jenkins Controller", "jenkins").Selected(contains(preSelected, "jenkins")),
					huh.NewOption("Kubernetes", "kubernetes").Selected(contains(preSelected, "kubernetes")),
					huh.NewOption("Static Node File", "static").Selected(contains(preSelected, "static")),
				).
				Validate(func(s []string) error {
					if len(s) == 0 {
						return fmt.Errorf("select at least one source")
					}
					return nil
				}).
				Value(&selectedSources),
		),
	)

	if err := sourceForm.Run(); err != nil {
		return nil, err
	}

	answers.EnableJenkins = contains(selectedSources, "jenkins")
	answers.EnableKubernetes = contains(selectedSources, "kubernetes")
	answers.EnableStatic = contains(selectedSources, "static")

	// Step 2: Source-specific config
	var groups []*huh.Group

	if answers.EnableJenkins {
		answers.JenkinsURL = detection.JenkinsURL
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Jenkins controller URL").
				Placeholder("https://ci.adoptium.net").
				Value(&answers.JenkinsURL),
			huh.NewInput().
				Title("Jenkins user (optional)").
				Description("The API token is read from JENKINS_API_TOKEN").
				Value(&answers.JenkinsUser),
			huh.NewConfirm().
				Title("Resolve agent hostnames from config.xml?").
				Value(&answers.ResolveHosts),
		))
	}

	if answers.EnableKubernetes {
		answers.Kubeconfig = detection.Kubeconfig
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Kubeconfig path").
				Value(&answers.Kubeconfig),
			huh.NewInput().
				Title("Node label selector (optional)").
				Placeholder("ci.role.build").
				Value(&answers.LabelSelector),
		))
	}

	if answers.EnableStatic {
		answers.NodeFile = detection.NodeFile
		if answers.NodeFile == "" {
			answers.NodeFile = "nodes.yml"
		}
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Static node file path").
				Value(&answers.NodeFile),
		))
	}

	// Step 3: Outputs
	outputFields := []huh.Field{
		huh.NewInput().
			Title("Output directory").
			Value(&answers.OutputDir),
		huh.NewInput().
			Title("Slack webhook URL (optional)").
			Description("Offline and unlabelled machines are posted here").
			Value(&answers.SlackWebhook),
		huh.NewInput().
			Title("Slack channel (optional)").
			Placeholder("#infrastructure").
			Value(&answers.SlackChannel),
	}
	if detection.GitAvailable && detection.InGitRepo {
		outputFields = append(outputFields, huh.NewConfirm().
			Title("Commit and push the reports to this repository?").
			Value(&answers.GitPublish))
	}
	groups = append(groups, huh.NewGroup(outputFields...))

	form := huh.NewForm(groups...)
	if err := form.Run(); err != nil {
		return nil, err
	}

	return answers, nil
}

func contains(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
