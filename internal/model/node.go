package model

// BuildType classifies a node's CI role.
type BuildType int

const (
	BuildTypeNone BuildType = iota
	BuildTypeBuild
	BuildTypeTest
	BuildTypeBuildAndTest
)

// String returns the name used in reports and histogram keys.
func (b BuildType) String() string {
	switch b {
	case BuildTypeBuild:
		return "Build"
	case BuildTypeTest:
		return "Test"
	case BuildTypeBuildAndTest:
		return "BuildAndTest"
	default:
		return "None"
	}
}

// Node is a worker machine as reported by a node source, before classification.
type Node struct {
	Name          string
	HostName      string
	Labels        []string
	Online        bool
	OfflineReason string // may span several lines
	Sources       []string
}

// HasLabel reports whether the node carries the exact label.
func (n *Node) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// NodeRecord is the classified view of one node. Records are passed by value
// and never modified once built.
type NodeRecord struct {
	Name          string
	HostName      string
	Arch          string
	OS            string
	OSVersion     string
	BuildType     BuildType
	Online        bool
	OfflineReason string // first line only, empty when online
}
