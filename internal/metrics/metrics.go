// Package metrics exports inventory counts for the node exporter textfile
// collector, so fleet composition can be graphed and alerted on.
package metrics

import (
	"fmt"
	"time"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/classify"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

// NewRegistry returns a registry holding gauges for one inventory run.
func NewRegistry(histogram []model.HistogramEntry, res *classify.Result, now time.Time) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	nodes := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fleet_nodes",
			Help: "Number of classified nodes per OS, version, architecture and build type",
		},
		[]string{"os", "os_version", "arch", "build_type"},
	)
	offline := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_nodes_offline",
		Help: "Number of classified nodes reported offline",
	})
	unclassifiable := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_nodes_unclassifiable",
		Help: "Number of nodes missing a required arch or os label",
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_inventory_last_run_timestamp_seconds",
		Help: "Unix time of the inventory run that produced these values",
	})
	reg.MustRegister(nodes, offline, unclassifiable, lastRun)

	for _, e := range histogram {
		nodes.WithLabelValues(e.OS, e.OSVersion, e.Arch, e.BuildType.String()).Add(float64(e.Count))
	}
	for _, r := range res.Records {
		if !r.Online {
			offline.Inc()
		}
	}
	unclassifiable.Set(float64(len(res.Failures)))
	lastRun.Set(float64(now.Unix()))

	return reg
}

// WriteTextfile writes the inventory gauges to path in the Prometheus text
// format. The file is replaced atomically.
func WriteTextfile(path string, histogram []model.HistogramEntry, res *classify.Result) error {
	reg := NewRegistry(histogram, res, time.Now())
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
