package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/aggregate"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() model.Tree {
	return aggregate.BuildTree([]model.NodeRecord{
		{Name: "build-1", HostName: "10.0.0.1", Arch: "x86_64", OS: "ubuntu", OSVersion: "20.04"},
		{Name: "build-2", Arch: "x86_64", OS: "ubuntu", OSVersion: "20.04"},
		{Name: "test-1", HostName: "test-1.example.org", Arch: "aarch64", OS: "centos", OSVersion: "7"},
	})
}

func TestRenderDefaultTemplate(t *testing.T) {
	out, err := RenderTemplate(DefaultINITemplate, testTree())
	require.NoError(t, err)

	expected := `# Generated node inventory. Do not edit by hand.

[aarch64:children]
aarch64_centos

[aarch64_centos:children]
aarch64_centos_7

[aarch64_centos_7]
test-1 ansible_host=test-1.example.org

[x86_64:children]
x86_64_ubuntu

[x86_64_ubuntu:children]
x86_64_ubuntu_20_04

[x86_64_ubuntu_20_04]
build-1 ansible_host=10.0.0.1
build-2
`
	assert.Equal(t, expected, out)
}

func TestRenderCustomTemplate(t *testing.T) {
	text := `{{ range $arch, $byOS := .tree }}{{ $arch }}={{ len $byOS }};{{ end }}`

	out, err := RenderTemplate(text, testTree())
	require.NoError(t, err)
	assert.Equal(t, "aarch64=1;x86_64=1;", out)
}

func TestRenderTemplateErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"malformed", `{{ range .tree }`},
		{"missing key", `{{ .nodes }}`},
		{"unknown function", `{{ shout .tree }}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderTemplate(tt.text, testTree())
			assert.Error(t, err)
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	text, err := LoadTemplate("")
	require.NoError(t, err)
	assert.Equal(t, DefaultINITemplate, text)

	path := filepath.Join(t.TempDir(), "custom.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{ len .tree }}"), 0o644))

	text, err = LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "{{ len .tree }}", text)

	_, err = LoadTemplate(filepath.Join(t.TempDir(), "missing.tmpl"))
	assert.Error(t, err)
}

func TestRenderDefaultTemplateKeepsCase(t *testing.T) {
	tree := aggregate.BuildTree([]model.NodeRecord{
		{Name: "sol-1", Arch: "SPARCv9", OS: "solaris", OSVersion: "11"},
		{Name: "sol-2", Arch: "sparcv9", OS: "solaris", OSVersion: "11"},
	})

	out, err := RenderTemplate(DefaultINITemplate, tree)
	require.NoError(t, err)
	assert.Contains(t, out, "[SPARCv9:children]")
	assert.Contains(t, out, "[sparcv9:children]")
	assert.Contains(t, out, "[SPARCv9_solaris_11]\nsol-1")
	assert.Contains(t, out, "[sparcv9_solaris_11]\nsol-2")
}
