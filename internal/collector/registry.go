package collector

import (
	"context"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
)

// RegisteredCollector defines the interface for self-registering node sources.
type RegisteredCollector interface {
	Metadata() CollectorMetadata
	Enabled(sources map[string]any) bool
	Configure(section map[string]any) error
	Validate() []ValidationError
	Collect(ctx context.Context, inv *model.Inventory) error
}

// CollectorMetadata describes a collector for discovery and documentation.
type CollectorMetadata struct {
	Name        string // internal key, e.g. "jenkins"
	DisplayName string // human-readable, e.g. "Jenkins Controller"
	Description string // one-line description
	ConfigKey   string // YAML key under sources, e.g. "jenkins"
	DetectHint  string // environment hint for auto-detection, e.g. "JENKINS_URL"
}

// ValidationError reports a config problem with a suggested fix.
type ValidationError struct {
	Field      string // dotted path, e.g. "sources.jenkins.url"
	Message    string // what's wrong
	Suggestion string // how to fix it
}

var registry []func() RegisteredCollector

// Register adds a collector factory to the global registry.
// Each collector calls this in its init().
func Register(factory func() RegisteredCollector) {
	registry = append(registry, factory)
}

// All returns fresh instances of every registered collector.
func All() []RegisteredCollector {
	out := make([]RegisteredCollector, len(registry))
	for i, f := range registry {
		out[i] = f()
	}
	return out
}
