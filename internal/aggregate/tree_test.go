package aggregate

import (
	"testing"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildTree(t *testing.T) {
	tree := BuildTree(scenarioRecords())

	assert.Len(t, tree, 2)
	ubuntu := tree.Leaf("x86_64", "ubuntu", "20.04")
	if assert.Len(t, ubuntu, 2) {
		assert.Equal(t, "a", ubuntu[0].Name)
		assert.Equal(t, "b", ubuntu[1].Name)
	}
	assert.Len(t, tree.Leaf("arm64", "centos", "7"), 1)
	assert.Equal(t, 3, CountRecords(tree))
}

func TestBuildTreeNoRecordInTwoLeaves(t *testing.T) {
	records := []model.NodeRecord{
		{Name: "n1", Arch: "x86_64", OS: "ubuntu", OSVersion: "20.04"},
		{Name: "n2", Arch: "x86_64", OS: "ubuntu", OSVersion: "22.04"},
		{Name: "n3", Arch: "aarch64", OS: "ubuntu", OSVersion: "20.04"},
		{Name: "n4", Arch: "x86_64", OS: "rhel", OSVersion: "8"},
		{Name: "n5", Arch: "x86_64", OS: "ubuntu", OSVersion: "20.04"},
	}

	tree := BuildTree(records)

	seen := make(map[string]int)
	for _, byOS := range tree {
		for _, byVersion := range byOS {
			for _, leaf := range byVersion {
				for _, r := range leaf {
					seen[r.Name]++
				}
			}
		}
	}

	assert.Equal(t, len(records), CountRecords(tree))
	assert.Len(t, seen, len(records))
	for name, n := range seen {
		assert.Equal(t, 1, n, name)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	tree := BuildTree(nil)
	assert.Empty(t, tree)
	assert.Equal(t, 0, CountRecords(tree))
}
