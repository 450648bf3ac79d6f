package collector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/config"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
)

// CollectResult holds the result of a single collector run.
type CollectResult struct {
	Name    string
	Skipped bool
	Detail  string
	Err     error
}

// Collect runs all registered collectors and merges their nodes into one
// inventory. The first failing collector aborts the run.
func Collect(ctx context.Context, cfg *config.Config) (*model.Inventory, []CollectResult, error) {
	return run(ctx, All(), cfg.RawSources)
}

func run(ctx context.Context, collectors []RegisteredCollector, rawSources map[string]any) (*model.Inventory, []CollectResult, error) {
	inv := model.NewInventory()

	var results []CollectResult

	for _, c := range collectors {
		meta := c.Metadata()

		if !c.Enabled(rawSources) {
			results = append(results, CollectResult{Name: meta.DisplayName, Skipped: true})
			continue
		}

		// Extract this collector's config section
		section, _ := rawSources[meta.ConfigKey].(map[string]any)
		if err := c.Configure(section); err != nil {
			cerr := &CollectorError{Collector: meta.DisplayName, Err: err}
			results = append(results, CollectResult{Name: meta.DisplayName, Err: cerr})
			return nil, results, cerr
		}

		before := inv.Len()
		if err := c.Collect(ctx, inv); err != nil {
			cerr := &CollectorError{Collector: meta.DisplayName, Err: err}
			results = append(results, CollectResult{Name: meta.DisplayName, Err: cerr})
			return nil, results, cerr
		}

		added := inv.Len() - before
		slog.Debug("collector finished", "collector", meta.Name, "new_nodes", added, "total_nodes", inv.Len())
		results = append(results, CollectResult{Name: meta.DisplayName, Detail: fmt.Sprintf("(%d new nodes)", added)})
	}

	// Normalize labels across sources
	Merge(inv)

	return inv, results, nil
}
