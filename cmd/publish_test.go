package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/config"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/output"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	for _, args := range [][]string{
		{"init", "-q"},
		{"config", "user.email", "inventory@example.com"},
		{"config", "user.name", "Inventory"},
	} {
		out, err := exec.Command("git", append([]string{"-C", dir}, args...)...).CombinedOutput()
		require.NoError(t, err, string(out))
	}
	return dir
}

func commitCount(t *testing.T, dir string) int {
	t.Helper()
	out, err := exec.Command("git", "-C", dir, "rev-list", "--count", "HEAD").Output()
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	require.NoError(t, err)
	return n
}

func TestPublishGit(t *testing.T) {
	dir := initRepo(t)
	table := filepath.Join(dir, "nodes.txt")
	require.NoError(t, os.WriteFile(table, []byte("OS | VERSION | ARCH | BUILD TYPE | NUMBER\n"), 0644))

	cfg := config.GitPublish{Dir: dir, Message: "Update node inventory"}

	committed, err := publishGit(cfg, []string{table}, nil)
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, 1, commitCount(t, dir))

	// unchanged reports produce no commit
	committed, err = publishGit(cfg, []string{table}, nil)
	require.NoError(t, err)
	assert.False(t, committed)
	assert.Equal(t, 1, commitCount(t, dir))
}

func trackedFiles(t *testing.T, dir string) []string {
	t.Helper()
	out, err := exec.Command("git", "-C", dir, "ls-tree", "--name-only", "HEAD").Output()
	require.NoError(t, err)
	return strings.Fields(string(out))
}

func TestPublishGitRemovesResolvedAlert(t *testing.T) {
	dir := initRepo(t)
	names := config.Outputs{Table: "nodes.txt", INI: "inventory.ini", Alert: "alert.txt"}
	cfg := config.GitPublish{Dir: dir, Message: "Update node inventory"}

	written, removed, err := output.Write(dir, names, &render.Reports{
		Table: "OS | VERSION | ARCH | BUILD TYPE | NUMBER\n",
		INI:   "[x86_64:children]\n",
		Alert: "test-rhel8-ppc64le-2: disk full",
	})
	require.NoError(t, err)
	committed, err := publishGit(cfg, written, removed)
	require.NoError(t, err)
	require.True(t, committed)
	assert.Equal(t, []string{"alert.txt", "inventory.ini", "nodes.txt"}, trackedFiles(t, dir))

	// the next run has nothing to alert on
	written, removed, err = output.Write(dir, names, &render.Reports{
		Table: "OS | VERSION | ARCH | BUILD TYPE | NUMBER\n",
		INI:   "[x86_64:children]\n",
	})
	require.NoError(t, err)
	committed, err = publishGit(cfg, written, removed)
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, []string{"inventory.ini", "nodes.txt"}, trackedFiles(t, dir))
	assert.Equal(t, 2, commitCount(t, dir))
}

func TestPublishGitUntrackedRemovedPath(t *testing.T) {
	dir := initRepo(t)
	table := filepath.Join(dir, "nodes.txt")
	require.NoError(t, os.WriteFile(table, []byte("t\n"), 0644))

	committed, err := publishGit(config.GitPublish{Dir: dir}, []string{table}, []string{filepath.Join(dir, "alert.txt")})
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, []string{"nodes.txt"}, trackedFiles(t, dir))
}

func TestPublishGitNoFiles(t *testing.T) {
	committed, err := publishGit(config.GitPublish{Dir: t.TempDir()}, nil, nil)
	require.NoError(t, err)
	assert.False(t, committed)
}

func TestPublishGitNotARepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	f := filepath.Join(dir, "nodes.txt")
	require.NoError(t, os.WriteFile(f, []byte("x\n"), 0644))

	_, err := publishGit(config.GitPublish{Dir: dir}, []string{f}, nil)
	assert.Error(t, err)
}
