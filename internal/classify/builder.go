package classify

import (
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/util"
)

// BuildRecord classifies a single node. A node whose labels cannot be parsed
// yields a *NodeError and no record.
func BuildRecord(n *model.Node) (model.NodeRecord, error) {
	parsed, err := ParseLabels(n.Labels)
	if err != nil {
		return model.NodeRecord{}, &NodeError{Node: n.Name, Err: err}
	}

	rec := model.NodeRecord{
		Name:      n.Name,
		HostName:  n.HostName,
		Arch:      parsed.Arch,
		OS:        parsed.OS,
		OSVersion: parsed.OSVersion,
		BuildType: ClassifyRole(n.Labels),
		Online:    n.Online,
	}
	if !n.Online {
		rec.OfflineReason = util.FirstLine(n.OfflineReason)
	}
	return rec, nil
}
