package collector

import (
	"context"
	"fmt"
	"os"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/util"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(func() RegisteredCollector { return &StaticCollector{} })
}

// StaticCollector reads machines that are not attached to any controller
// from a YAML node file.
type StaticCollector struct {
	File string
}

func (sc *StaticCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "static",
		DisplayName: "Static Node File",
		Description: "Reads nodes, labels and status from a YAML file",
		ConfigKey:   "static",
		DetectHint:  "nodes.yml",
	}
}

func (sc *StaticCollector) Enabled(sources map[string]any) bool {
	section, ok := sources["static"].(map[string]any)
	if !ok {
		return false
	}
	f, _ := section["file"].(string)
	return f != ""
}

func (sc *StaticCollector) Configure(section map[string]any) error {
	if section == nil {
		return nil
	}
	if v, ok := section["file"].(string); ok {
		sc.File = util.ExpandPath(v)
	}
	return nil
}

func (sc *StaticCollector) Validate() []ValidationError {
	var errs []ValidationError
	if _, err := os.Stat(sc.File); err != nil {
		errs = append(errs, ValidationError{
			Field:      "sources.static.file",
			Message:    fmt.Sprintf("file not found: %s", sc.File),
			Suggestion: "check the path or run 'jenkins-helper init' to reconfigure",
		})
	}
	return errs
}

// nodeFile is the on-disk layout of a static node file.
type nodeFile struct {
	Nodes []staticNode `yaml:"nodes"`
}

type staticNode struct {
	Name          string   `yaml:"name"`
	Hostname      string   `yaml:"hostname"`
	Labels        []string `yaml:"labels"`
	Online        *bool    `yaml:"online"`
	OfflineReason string   `yaml:"offline_reason"`
}

func (sc *StaticCollector) Collect(_ context.Context, inv *model.Inventory) error {
	if sc.File == "" {
		return nil
	}

	data, err := os.ReadFile(sc.File)
	if err != nil {
		return err
	}

	var f nodeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unmarshal node file: %w", err)
	}

	for i, sn := range f.Nodes {
		if sn.Name == "" {
			return fmt.Errorf("node %d: name is required", i)
		}
		online := true
		if sn.Online != nil {
			online = *sn.Online
		}
		n := &model.Node{
			Name:     sn.Name,
			HostName: sn.Hostname,
			Labels:   sn.Labels,
			Online:   online,
		}
		if !online {
			n.OfflineReason = sn.OfflineReason
		}
		inv.AddNode("static", n)
	}
	return nil
}
