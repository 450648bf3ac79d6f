package render

import (
	"strings"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/classify"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
)

// NoRoleMessage is reported for online nodes without a build or test role.
const NoRoleMessage = "There is no Build or Test label for this machine"

// RenderAlert lists offline and unclassified nodes, one line each. An empty
// string means no node needs attention.
func RenderAlert(records []model.NodeRecord) string {
	var lines []string
	for _, r := range records {
		switch {
		case !r.Online:
			lines = append(lines, r.Name+": "+r.OfflineReason)
		case r.BuildType == model.BuildTypeNone:
			lines = append(lines, r.Name+": "+NoRoleMessage)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderFailures lists nodes whose labels could not be classified.
func RenderFailures(failures []*classify.NodeError) string {
	lines := make([]string, 0, len(failures))
	for _, f := range failures {
		lines = append(lines, f.Error())
	}
	return strings.Join(lines, "\n")
}
