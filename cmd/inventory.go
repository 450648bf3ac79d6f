package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/classify"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/collector"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/config"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/metrics"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/notify"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/output"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/render"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/ui"
	"github.com/spf13/cobra"
)

var (
	outputDir    string
	templateFile string
	concurrency  int
	legacyKey    bool
	jenkinsURL   string
	jenkinsJSON  string
	nodeFile     string
	kubeconfig   string
	slackWebhook string
	metricsFile  string
	publish      bool
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Classify the fleet and write the inventory reports",
	Long: `Collect nodes from every configured source, classify each one by
architecture, OS, OS version and CI role, then write the count table, the
INI inventory and the alert file.`,
	RunE: runInventory,
}

func init() {
	rootCmd.AddCommand(inventoryCmd)

	inventoryCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the report files")
	inventoryCmd.Flags().StringVar(&templateFile, "template", "", "INI inventory template (default: built-in)")
	inventoryCmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel classification workers (0: config value)")
	inventoryCmd.Flags().BoolVar(&legacyKey, "legacy-key", false, "group the count table by the concatenated legacy key")
	inventoryCmd.Flags().StringVar(&jenkinsURL, "jenkins-url", "", "Jenkins controller URL")
	inventoryCmd.Flags().StringVar(&jenkinsJSON, "jenkins-json", "", "saved /computer/api/json response (instead of live)")
	inventoryCmd.Flags().StringVar(&nodeFile, "node-file", "", "static node file")
	inventoryCmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "collect nodes from the Kubernetes cluster in this kubeconfig")
	inventoryCmd.Flags().StringVar(&slackWebhook, "slack-webhook", "", "post the alert summary to this Slack webhook")
	inventoryCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write node-exporter textfile metrics")
	inventoryCmd.Flags().BoolVar(&publish, "publish", false, "commit the reports to the git repository in the output directory")
}

func runInventory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run '"+name+" init' to create a config file"))
		return err
	}

	applyFlagOverrides(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Println(ui.Bold("Collecting nodes..."))

	inv, results, err := collector.Collect(ctx, cfg)
	printCollectResults(results)
	if err != nil {
		return err
	}
	if inv.Len() == 0 {
		ui.Warn("no nodes found, check the sources in your config")
	}

	res, err := classify.Classify(ctx, inv.Nodes(), cfg.Concurrency)
	if err != nil {
		return err
	}
	for _, f := range res.Failures {
		ui.NodeFailed(f.Node, f.Err.Error())
	}

	tmpl, err := render.LoadTemplate(cfg.Template)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load template", err.Error(), ""))
		return err
	}

	reports := render.RenderReports(res, render.Options{
		Template:  tmpl,
		LegacyKey: cfg.Histogram.LegacyKey,
	})

	fmt.Println()
	ui.Section("Fleet", reports.Table)
	ui.Section("Needs attention", reports.Alert)

	written, removed, err := output.Write(cfg.OutputDir, cfg.Outputs, reports)
	for _, p := range written {
		ui.Success("Wrote " + p)
	}
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write reports", err.Error(), "check the template with: "+name+" validate"))
		return err
	}

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reports.Histogram, res); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Failed to write metrics", err.Error(), ""))
			return err
		}
		ui.Success("Wrote " + cfg.Metrics.Textfile)
	}

	if cfg.Notify.Slack.WebhookURL != "" {
		n := &notify.SlackNotifier{
			WebhookURL: cfg.Notify.Slack.WebhookURL,
			Channel:    cfg.Notify.Slack.Channel,
		}
		sent, err := n.Notify(ctx, notify.Message{
			Controller: inv.ControllerURL,
			Alert:      reports.Alert,
			Failures:   reports.Failures,
		})
		if err != nil {
			// a failed notification does not invalidate the written reports
			fmt.Fprint(os.Stderr, ui.FormatError("Slack notification failed", err.Error(), ""))
		} else if sent {
			ui.Success("Posted alert summary to Slack")
		}
	}

	if cfg.Publish.Git.Dir != "" {
		committed, err := publishGit(cfg.Publish.Git, written, removed)
		if err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Git publish failed", err.Error(), "check that "+cfg.Publish.Git.Dir+" is a git repository"))
			return err
		}
		if committed {
			ui.Success("Committed reports to " + cfg.Publish.Git.Dir)
		}
	}

	fmt.Println()
	fmt.Println(ui.Summary(len(res.Records), len(res.Failures), countOffline(res.Records)))
	slog.Debug("inventory complete", "nodes", inv.Len(), "records", len(res.Records), "failures", len(res.Failures))

	return nil
}

func printCollectResults(results []collector.CollectResult) {
	for _, r := range results {
		if r.Skipped {
			ui.CollectorSkipped(r.Name)
		} else if r.Err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError(r.Name+" failed", r.Err.Error(), ""))
		} else {
			ui.CollectorDone(r.Name, r.Detail)
		}
	}
}

func applyFlagOverrides(cfg *config.Config) {
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if templateFile != "" {
		cfg.Template = templateFile
	}
	if concurrency > 0 {
		cfg.Concurrency = concurrency
	}
	if legacyKey {
		cfg.Histogram.LegacyKey = true
	}
	if jenkinsURL != "" {
		cfg.Sources.Jenkins.URL = jenkinsURL
		rawSection(cfg, "jenkins")["url"] = jenkinsURL
	}
	if jenkinsJSON != "" {
		cfg.Sources.Jenkins.JsonFile = jenkinsJSON
		rawSection(cfg, "jenkins")["json_file"] = jenkinsJSON
	}
	if nodeFile != "" {
		cfg.Sources.Static.File = nodeFile
		rawSection(cfg, "static")["file"] = nodeFile
	}
	if kubeconfig != "" {
		cfg.Sources.Kubernetes.Kubeconfig = kubeconfig
		rawSection(cfg, "kubernetes")["kubeconfig"] = kubeconfig
	}
	if slackWebhook != "" {
		cfg.Notify.Slack.WebhookURL = slackWebhook
	}
	if metricsFile != "" {
		cfg.Metrics.Textfile = metricsFile
	}
	if publish && cfg.Publish.Git.Dir == "" {
		cfg.Publish.Git.Dir = cfg.OutputDir
	}
}

// rawSection returns the RawSources entry for key, creating it if needed.
func rawSection(cfg *config.Config, key string) map[string]any {
	if cfg.RawSources == nil {
		cfg.RawSources = map[string]any{}
	}
	section, ok := cfg.RawSources[key].(map[string]any)
	if !ok {
		section = map[string]any{}
		cfg.RawSources[key] = section
	}
	return section
}

func countOffline(records []model.NodeRecord) int {
	n := 0
	for _, r := range records {
		if !r.Online {
			n++
		}
	}
	return n
}
