package cmd

import (
	"fmt"
	"os"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/collector"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/config"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/render"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your inventory.yml configuration",
	Long: `Check that all configured sources are valid: URLs are set, files exist,
the kubeconfig loads, and the INI template parses.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run '"+name+" init' to create a config file"))
		return err
	}

	fmt.Println(ui.Bold("Validating inventory.yml..."))

	rawSources := cfg.RawSources
	passed := 0
	failed := 0
	enabled := 0

	for _, c := range collector.All() {
		meta := c.Metadata()

		if !c.Enabled(rawSources) {
			continue
		}
		enabled++

		// Configure the collector
		section, _ := rawSources[meta.ConfigKey].(map[string]any)
		if err := c.Configure(section); err != nil {
			ui.ValidationErr(meta.DisplayName, err.Error(), "")
			failed++
			continue
		}

		// Run validation
		errs := c.Validate()
		if len(errs) == 0 {
			ui.ValidationOK(meta.DisplayName, "configuration valid")
			passed++
		} else {
			for _, ve := range errs {
				ui.ValidationErr(ve.Field, ve.Message, ve.Suggestion)
				failed++
			}
		}
	}

	if enabled == 0 {
		ui.ValidationErr("sources", "no node source configured", "add sources.jenkins, sources.kubernetes or sources.static")
		failed++
	}

	if err := validateTemplate(cfg.Template); err != nil {
		ui.ValidationErr("template", err.Error(), "see the built-in template for the available fields")
		failed++
	} else {
		ui.ValidationOK("template", "parses")
		passed++
	}

	fmt.Println()
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
	} else {
		fmt.Printf("%d checks passed, %d errors\n", passed, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%d validation errors", failed)
	}
	return nil
}

// validateTemplate loads the configured template and renders it against an
// empty tree.
func validateTemplate(path string) error {
	tmpl, err := render.LoadTemplate(path)
	if err != nil {
		return err
	}
	_, err = render.RenderTemplate(tmpl, model.Tree{})
	return err
}
