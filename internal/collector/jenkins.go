package collector

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/util"
	"golang.org/x/sync/errgroup"
)

func init() {
	Register(func() RegisteredCollector { return &JenkinsCollector{} })
}

// computerTree limits the /computer API response to the fields we read.
const computerTree = "computer[displayName,offline,offlineCauseReason,assignedLabels[name]]"

// builtInNodes are controller-side executors that never count as fleet machines.
var builtInNodes = map[string]bool{
	"master":     true,
	"(master)":   true,
	"built-in":   true,
	"(built-in)": true,
}

// JenkinsCollector lists agents registered with a Jenkins controller.
type JenkinsCollector struct {
	URL          string
	User         string
	APIToken     string
	ResolveHosts bool
	Concurrency  int
	Timeout      time.Duration
	// JsonFile reads a saved /computer/api/json response instead of the controller.
	JsonFile string

	client *http.Client
}

func (jc *JenkinsCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "jenkins",
		DisplayName: "Jenkins Controller",
		Description: "Collects agents, labels and offline causes from a Jenkins controller",
		ConfigKey:   "jenkins",
		DetectHint:  "JENKINS_URL",
	}
}

func (jc *JenkinsCollector) Enabled(sources map[string]any) bool {
	section, ok := sources["jenkins"].(map[string]any)
	if !ok {
		return false
	}
	u, _ := section["url"].(string)
	f, _ := section["json_file"].(string)
	return u != "" || f != ""
}

func (jc *JenkinsCollector) Configure(section map[string]any) error {
	if section == nil {
		return nil
	}
	if v, ok := section["url"].(string); ok {
		jc.URL = strings.TrimSuffix(v, "/")
	}
	if v, ok := section["user"].(string); ok {
		jc.User = v
	}
	if v, ok := section["api_token"].(string); ok {
		jc.APIToken = v
	}
	if v, ok := section["resolve_hosts"].(bool); ok {
		jc.ResolveHosts = v
	}
	if v, ok := section["concurrency"].(int); ok {
		jc.Concurrency = v
	}
	if v, ok := section["timeout"].(string); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", v, err)
		}
		jc.Timeout = d
	}
	if v, ok := section["json_file"].(string); ok {
		jc.JsonFile = util.ExpandPath(v)
	}
	return nil
}

func (jc *JenkinsCollector) Validate() []ValidationError {
	var errs []ValidationError
	if jc.JsonFile != "" {
		if _, err := os.Stat(jc.JsonFile); err != nil {
			errs = append(errs, ValidationError{
				Field:      "sources.jenkins.json_file",
				Message:    fmt.Sprintf("file not found: %s", jc.JsonFile),
				Suggestion: "check the path or remove json_file to query the controller",
			})
		}
		return errs
	}
	u, err := url.Parse(jc.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:      "sources.jenkins.url",
			Message:    fmt.Sprintf("not an absolute URL: %q", jc.URL),
			Suggestion: "use the controller root, e.g. https://ci.adoptium.net",
		})
	}
	if jc.User != "" && jc.APIToken == "" {
		errs = append(errs, ValidationError{
			Field:      "sources.jenkins.api_token",
			Message:    "user is set but api_token is empty",
			Suggestion: "set JENKINS_API_TOKEN or sources.jenkins.api_token",
		})
	}
	return errs
}

type jenkinsComputerList struct {
	Computer []jenkinsComputer `json:"computer"`
}

type jenkinsComputer struct {
	DisplayName        string         `json:"displayName"`
	Offline            bool           `json:"offline"`
	OfflineCauseReason string         `json:"offlineCauseReason"`
	AssignedLabels     []jenkinsLabel `json:"assignedLabels"`
}

type jenkinsLabel struct {
	Name string `json:"name"`
}

// jenkinsNodeConfig is the part of an agent's config.xml holding the launcher host.
type jenkinsNodeConfig struct {
	Launcher struct {
		Host string `xml:"host"`
	} `xml:"launcher"`
}

func (jc *JenkinsCollector) Collect(ctx context.Context, inv *model.Inventory) error {
	data, err := jc.getData(ctx)
	if err != nil {
		return fmt.Errorf("getting computers: %w", err)
	}

	var list jenkinsComputerList
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parsing computer json: %w", err)
	}

	var agents []*model.Node
	for _, c := range list.Computer {
		if builtInNodes[c.DisplayName] {
			continue
		}
		n := &model.Node{
			Name:   c.DisplayName,
			Online: !c.Offline,
		}
		if c.Offline {
			n.OfflineReason = c.OfflineCauseReason
		}
		for _, l := range c.AssignedLabels {
			// Jenkins lists every agent's own name as a label.
			if l.Name == c.DisplayName {
				continue
			}
			n.Labels = append(n.Labels, l.Name)
		}
		agents = append(agents, n)
	}

	if jc.ResolveHosts && jc.JsonFile == "" {
		jc.resolveHosts(ctx, agents)
	}

	inv.ControllerURL = jc.URL
	for _, n := range agents {
		inv.AddNode("jenkins", n)
	}
	return nil
}

// resolveHosts reads each agent's launcher host from its config.xml. Lookups
// run in parallel; a failed lookup leaves the hostname empty.
func (jc *JenkinsCollector) resolveHosts(ctx context.Context, agents []*model.Node) {
	limit := jc.Concurrency
	if limit <= 0 {
		limit = 8
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for _, n := range agents {
		g.Go(func() error {
			host, err := jc.lookupHost(ctx, n.Name)
			if err != nil {
				slog.Warn("failed to resolve agent host", "node", n.Name, "error", err)
				return nil
			}
			n.HostName = host
			return nil
		})
	}
	_ = g.Wait()
}

func (jc *JenkinsCollector) lookupHost(ctx context.Context, name string) (string, error) {
	body, err := jc.get(ctx, "/computer/"+url.PathEscape(name)+"/config.xml")
	if err != nil {
		return "", err
	}
	var cfg jenkinsNodeConfig
	if err := xml.Unmarshal(body, &cfg); err != nil {
		return "", fmt.Errorf("parsing config.xml: %w", err)
	}
	return strings.TrimSpace(cfg.Launcher.Host), nil
}

func (jc *JenkinsCollector) getData(ctx context.Context) ([]byte, error) {
	if jc.JsonFile != "" {
		return os.ReadFile(jc.JsonFile)
	}
	return jc.get(ctx, "/computer/api/json?tree="+url.QueryEscape(computerTree))
}

func (jc *JenkinsCollector) get(ctx context.Context, path string) ([]byte, error) {
	if jc.client == nil {
		timeout := jc.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		jc.client = &http.Client{Timeout: timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jc.URL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if jc.User != "" {
		req.SetBasicAuth(jc.User, jc.APIToken)
	}

	resp, err := jc.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
