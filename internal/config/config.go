package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	OutputDir   string        `mapstructure:"output_dir"`
	Outputs     Outputs       `mapstructure:"outputs"`
	Template    string        `mapstructure:"template"`
	Concurrency int           `mapstructure:"concurrency"`
	Histogram   Histogram     `mapstructure:"histogram"`
	Sources     Sources       `mapstructure:"sources"`
	Notify      Notify        `mapstructure:"notify"`
	Metrics     MetricsConfig `mapstructure:"metrics"`
	Publish     Publish       `mapstructure:"publish"`
	RawSources  map[string]any
}

// Outputs names the report files written under OutputDir. An empty name
// disables that report.
type Outputs struct {
	Table string `mapstructure:"table"`
	INI   string `mapstructure:"ini"`
	Alert string `mapstructure:"alert"`
}

type Histogram struct {
	LegacyKey bool `mapstructure:"legacy_key"`
}

type Sources struct {
	Jenkins    JenkinsSource    `mapstructure:"jenkins"`
	Kubernetes KubernetesSource `mapstructure:"kubernetes"`
	Static     StaticSource     `mapstructure:"static"`
}

type JenkinsSource struct {
	URL          string `mapstructure:"url"`
	User         string `mapstructure:"user"`
	APIToken     string `mapstructure:"api_token"`
	ResolveHosts bool   `mapstructure:"resolve_hosts"`
	JsonFile     string `mapstructure:"json_file"`
}

type KubernetesSource struct {
	Kubeconfig    string `mapstructure:"kubeconfig"`
	Context       string `mapstructure:"context"`
	LabelSelector string `mapstructure:"label_selector"`
}

type StaticSource struct {
	File string `mapstructure:"file"`
}

type Notify struct {
	Slack SlackConfig `mapstructure:"slack"`
}

type SlackConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	Channel    string `mapstructure:"channel"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

type Publish struct {
	Git GitPublish `mapstructure:"git"`
}

type GitPublish struct {
	Dir     string `mapstructure:"dir"`
	Message string `mapstructure:"message"`
	Push    bool   `mapstructure:"push"`
}

// Load reads the active viper configuration on top of the defaults.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from v on top of the defaults.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		OutputDir: ".",
		Outputs: Outputs{
			Table: "nodes.txt",
			INI:   "inventory.ini",
			Alert: "alert.txt",
		},
		Concurrency: 8,
	}
	cfg.Publish.Git.Message = "Update node inventory"

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Concurrency < 0 {
		return nil, fmt.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}

	// Populate RawSources for the registry-based collectors
	cfg.RawSources = v.GetStringMap("sources")

	// Credentials may come from the environment only
	if token := v.GetString("jenkins_api_token"); token != "" {
		cfg.Sources.Jenkins.APIToken = token
		if jenkins, ok := cfg.RawSources["jenkins"].(map[string]any); ok {
			jenkins["api_token"] = token
		}
	}

	return cfg, nil
}
