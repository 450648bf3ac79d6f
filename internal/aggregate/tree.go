package aggregate

import "github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"

// BuildTree groups records by architecture, OS and OS version. Unlike the
// histogram nothing is collapsed: each record lands in exactly one leaf.
func BuildTree(records []model.NodeRecord) model.Tree {
	tree := model.Tree{}
	for _, r := range records {
		tree.Add(r)
	}
	return tree
}

// CountRecords returns the number of records reachable from the tree's leaves.
func CountRecords(tree model.Tree) int {
	count := 0
	for _, byOS := range tree {
		for _, byVersion := range byOS {
			for _, leaf := range byVersion {
				count += len(leaf)
			}
		}
	}
	return count
}
