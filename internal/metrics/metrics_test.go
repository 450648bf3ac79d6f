package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/classify"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput() ([]model.HistogramEntry, *classify.Result) {
	res := &classify.Result{
		Records: []model.NodeRecord{
			{Name: "a", OS: "ubuntu", OSVersion: "20.04", Arch: "x86_64", BuildType: model.BuildTypeBuild, Online: true},
			{Name: "b", OS: "ubuntu", OSVersion: "20.04", Arch: "x86_64", BuildType: model.BuildTypeBuild, Online: false},
			{Name: "c", OS: "centos", OSVersion: "7", Arch: "arm64", BuildType: model.BuildTypeTest, Online: true},
		},
		Failures: []*classify.NodeError{
			{Node: "d", Err: &classify.MissingLabelError{Kind: classify.KindOS}},
		},
	}
	histogram := []model.HistogramEntry{
		{OS: "ubuntu", OSVersion: "20.04", Arch: "x86_64", BuildType: model.BuildTypeBuild, Count: 2},
		{OS: "centos", OSVersion: "7", Arch: "arm64", BuildType: model.BuildTypeTest, Count: 1},
	}
	return histogram, res
}

func TestNewRegistry(t *testing.T) {
	histogram, res := testInput()
	reg := NewRegistry(histogram, res, time.Unix(1700000000, 0))

	expected := `
# HELP fleet_nodes Number of classified nodes per OS, version, architecture and build type
# TYPE fleet_nodes gauge
fleet_nodes{arch="arm64",build_type="Test",os="centos",os_version="7"} 1
fleet_nodes{arch="x86_64",build_type="Build",os="ubuntu",os_version="20.04"} 2
# HELP fleet_nodes_offline Number of classified nodes reported offline
# TYPE fleet_nodes_offline gauge
fleet_nodes_offline 1
# HELP fleet_nodes_unclassifiable Number of nodes missing a required arch or os label
# TYPE fleet_nodes_unclassifiable gauge
fleet_nodes_unclassifiable 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"fleet_nodes", "fleet_nodes_offline", "fleet_nodes_unclassifiable")
	assert.NoError(t, err)
}

func TestWriteTextfile(t *testing.T) {
	histogram, res := testInput()
	path := filepath.Join(t.TempDir(), "fleet.prom")

	require.NoError(t, WriteTextfile(path, histogram, res))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fleet_nodes{arch="x86_64",build_type="Build",os="ubuntu",os_version="20.04"} 2`)
	assert.Contains(t, string(data), "fleet_inventory_last_run_timestamp_seconds")
}
