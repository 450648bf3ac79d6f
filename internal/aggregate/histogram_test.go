package aggregate

import (
	"testing"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/stretchr/testify/assert"
)

func scenarioRecords() []model.NodeRecord {
	return []model.NodeRecord{
		{Name: "a", OS: "ubuntu", OSVersion: "20.04", Arch: "x86_64", BuildType: model.BuildTypeBuild, Online: true},
		{Name: "b", OS: "ubuntu", OSVersion: "20.04", Arch: "x86_64", BuildType: model.BuildTypeBuild, Online: true},
		{Name: "c", OS: "centos", OSVersion: "7", Arch: "arm64", BuildType: model.BuildTypeTest, Online: true},
	}
}

func TestBuildHistogramScenario(t *testing.T) {
	got := BuildHistogram(scenarioRecords())

	assert.Equal(t, []model.HistogramEntry{
		{OS: "ubuntu", OSVersion: "20.04", Arch: "x86_64", BuildType: model.BuildTypeBuild, Count: 2},
		{OS: "centos", OSVersion: "7", Arch: "arm64", BuildType: model.BuildTypeTest, Count: 1},
	}, got)
}

func TestBuildHistogramFirstOccurrenceOrder(t *testing.T) {
	records := []model.NodeRecord{
		{OS: "windows", OSVersion: "2019", Arch: "x86_64", BuildType: model.BuildTypeTest},
		{OS: "aix", OSVersion: "7.2", Arch: "ppc64", BuildType: model.BuildTypeBuild},
		{OS: "windows", OSVersion: "2019", Arch: "x86_64", BuildType: model.BuildTypeTest},
		{OS: "aix", OSVersion: "7.2", Arch: "ppc64", BuildType: model.BuildTypeBuildAndTest},
	}

	got := BuildHistogram(records)
	if assert.Len(t, got, 3) {
		assert.Equal(t, "windows", got[0].OS)
		assert.Equal(t, 2, got[0].Count)
		assert.Equal(t, model.BuildTypeBuild, got[1].BuildType)
		assert.Equal(t, model.BuildTypeBuildAndTest, got[2].BuildType)
	}
}

func TestBuildHistogramTotal(t *testing.T) {
	tests := []struct {
		name    string
		records []model.NodeRecord
	}{
		{"empty", nil},
		{"scenario", scenarioRecords()},
		{"all distinct", []model.NodeRecord{
			{OS: "a", Arch: "x"}, {OS: "b", Arch: "x"}, {OS: "c", Arch: "x"},
		}},
		{"all same", []model.NodeRecord{
			{OS: "a"}, {OS: "a"}, {OS: "a"}, {OS: "a"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, len(tt.records), Total(BuildHistogram(tt.records)))
			assert.Equal(t, len(tt.records), Total(BuildHistogramLegacy(tt.records)))
		})
	}
}

func TestBuildHistogramIsRepeatable(t *testing.T) {
	records := scenarioRecords()
	assert.Equal(t, BuildHistogram(records), BuildHistogram(records))
}

func TestLegacyHistogramCollision(t *testing.T) {
	records := []model.NodeRecord{
		{OS: "linux", OSVersion: "8", Arch: "x86", BuildType: model.BuildTypeBuild},
		{OS: "linux8", OSVersion: "", Arch: "x86", BuildType: model.BuildTypeBuild},
	}

	assert.Len(t, BuildHistogram(records), 2)

	legacy := BuildHistogramLegacy(records)
	if assert.Len(t, legacy, 1) {
		assert.Equal(t, "linux", legacy[0].OS)
		assert.Equal(t, "8", legacy[0].OSVersion)
		assert.Equal(t, 2, legacy[0].Count)
	}
}
