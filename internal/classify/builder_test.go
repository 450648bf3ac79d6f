package classify

import (
	"errors"
	"testing"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecord(t *testing.T) {
	n := &model.Node{
		Name:     "build-ubuntu2004-x64-1",
		HostName: "10.0.0.5",
		Labels:   []string{"hw.arch.x86_64", "sw.os.ubuntu.20_04", "ci.role.build"},
		Online:   true,
	}

	rec, err := BuildRecord(n)
	require.NoError(t, err)
	assert.Equal(t, model.NodeRecord{
		Name:      "build-ubuntu2004-x64-1",
		HostName:  "10.0.0.5",
		Arch:      "x86_64",
		OS:        "ubuntu",
		OSVersion: "20.04",
		BuildType: model.BuildTypeBuild,
		Online:    true,
	}, rec)
}

func TestBuildRecordOfflineReasonFirstLine(t *testing.T) {
	n := &model.Node{
		Name:          "test-rhel8-ppc64le-2",
		Labels:        []string{"hw.arch.ppc64le", "sw.os.rhel.8", "ci.role.test"},
		Online:        false,
		OfflineReason: "disk full\nretrying",
	}

	rec, err := BuildRecord(n)
	require.NoError(t, err)
	assert.False(t, rec.Online)
	assert.Equal(t, "disk full", rec.OfflineReason)
}

func TestBuildRecordOnlineDropsReason(t *testing.T) {
	n := &model.Node{
		Name:          "n",
		Labels:        []string{"hw.arch.x86_64", "sw.os.ubuntu.20_04"},
		Online:        true,
		OfflineReason: "stale reason",
	}

	rec, err := BuildRecord(n)
	require.NoError(t, err)
	assert.Empty(t, rec.OfflineReason)
}

func TestBuildRecordMissingLabel(t *testing.T) {
	n := &model.Node{Name: "mystery", Labels: []string{"hw.arch.x86_64"}}

	_, err := BuildRecord(n)
	require.Error(t, err)

	var nerr *NodeError
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, "mystery", nerr.Node)

	var missing *MissingLabelError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, KindOS, missing.Kind)
	assert.Equal(t, "mystery: missing os label", err.Error())
}
