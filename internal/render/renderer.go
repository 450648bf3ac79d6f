package render

import (
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/aggregate"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/classify"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
)

// Options controls how reports are built.
type Options struct {
	Template  string // template text for the INI report
	LegacyKey bool   // key the histogram by the concatenated legacy string
}

// Reports holds the rendered text of every inventory report.
type Reports struct {
	Histogram []model.HistogramEntry
	Table     string
	INI       string
	INIErr    error // template failures only affect the INI report
	Alert     string
	Failures  string
}

// RenderReports aggregates a classification result and renders all reports.
func RenderReports(res *classify.Result, opts Options) *Reports {
	histogram := aggregate.BuildHistogram(res.Records)
	if opts.LegacyKey {
		histogram = aggregate.BuildHistogramLegacy(res.Records)
	}

	tmpl := opts.Template
	if tmpl == "" {
		tmpl = DefaultINITemplate
	}

	r := &Reports{
		Histogram: histogram,
		Table:     RenderTable(histogram),
		Alert:     RenderAlert(res.Records),
		Failures:  RenderFailures(res.Failures),
	}
	r.INI, r.INIErr = RenderTemplate(tmpl, aggregate.BuildTree(res.Records))
	return r
}
