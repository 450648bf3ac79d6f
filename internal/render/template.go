package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/util"
)

// TreeKey is the name the grouping tree is bound to in template data.
const TreeKey = "tree"

// DefaultINITemplate renders the tree as an Ansible-style INI inventory with
// one group per architecture, OS and OS version.
//
//go:embed templates/inventory.ini.tmpl
var DefaultINITemplate string

var templateFuncs = template.FuncMap{
	"id": util.JoinID,
}

// LoadTemplate returns the template text at path, or DefaultINITemplate when
// path is empty.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return DefaultINITemplate, nil
	}
	data, err := os.ReadFile(util.ExpandPath(path))
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}
	return string(data), nil
}

// RenderTemplate executes text with the tree bound under TreeKey and returns
// the output verbatim. References to keys other than TreeKey fail.
func RenderTemplate(text string, tree model.Tree) (string, error) {
	tmpl, err := template.New("inventory").
		Funcs(templateFuncs).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	data := map[string]any{
		TreeKey: tree,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}
