package collector

import (
	"strings"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
)

// Merge normalizes node data once every source has contributed.
func Merge(inv *model.Inventory) {
	for _, n := range inv.Nodes() {
		n.Labels = tokenizeLabels(n.Labels)
	}
}

// tokenizeLabels splits whitespace-separated label strings, as Jenkins
// reports them, into single labels and drops duplicates.
func tokenizeLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		for _, tok := range strings.Fields(l) {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}
