package render

import (
	"fmt"
	"strings"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
)

// TableHeader is the first line of the count table. Downstream jobs parse the
// table, so the layout is fixed.
const TableHeader = "OS | VERSION | ARCH | BUILD TYPE | NUMBER"

const tableSeparator = "--- | --- | --- | --- | ---"

// RenderTable renders the histogram as a pipe-delimited table, one row per
// entry in histogram order.
func RenderTable(entries []model.HistogramEntry) string {
	var b strings.Builder
	b.WriteString(TableHeader + "\n")
	b.WriteString(tableSeparator + "\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s | %s | %s | %s | %d\n", e.OS, e.OSVersion, e.Arch, e.BuildType, e.Count)
	}
	return b.String()
}
