package wizard

import (
	"os"
	"os/exec"
	"path/filepath"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	JenkinsURL   string // from JENKINS_URL, empty otherwise
	Kubeconfig   string // path if found, empty otherwise
	NodeFile     string // static node file if found
	GitAvailable bool
	InGitRepo    bool
}

// Detector abstracts environment, filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
	Getenv(key string) string
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error) { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Getenv(key string) string             { return os.Getenv(key) }

// Detect scans the environment for known node sources.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	// Jenkins exports its own URL to jobs
	result.JenkinsURL = d.Getenv("JENKINS_URL")

	// Kubernetes client config
	if kc := d.Getenv("KUBECONFIG"); kc != "" {
		result.Kubeconfig = kc
	} else if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".kube", "config")
		if _, err := d.Stat(p); err == nil {
			result.Kubeconfig = p
		}
	}

	// Static node files
	nodeFiles := []string{
		"nodes.yml",
		"nodes.yaml",
		"inventory/nodes.yml",
	}
	for _, p := range nodeFiles {
		if _, err := d.Stat(p); err == nil {
			result.NodeFile = p
			break
		}
	}

	if _, err := d.LookPath("git"); err == nil {
		result.GitAvailable = true
		if info, err := d.Stat(".git"); err == nil && info.IsDir() {
			result.InGitRepo = true
		}
	}

	return result
}
