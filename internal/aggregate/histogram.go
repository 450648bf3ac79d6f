// Package aggregate folds classified node records into report-ready shapes.
// Every function is pure and can be called repeatedly on the same records.
package aggregate

import "github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"

// BuildHistogram counts records sharing the same OS, version, architecture
// and build type. Entries are returned in order of first occurrence.
func BuildHistogram(records []model.NodeRecord) []model.HistogramEntry {
	return buildHistogram(records, func(r model.NodeRecord) model.HistogramKey {
		return model.KeyOf(r)
	})
}

// BuildHistogramLegacy is BuildHistogram keyed by the concatenated legacy
// string. Records whose fields concatenate to the same string are counted
// together under the first record's fields.
func BuildHistogramLegacy(records []model.NodeRecord) []model.HistogramEntry {
	return buildHistogram(records, func(r model.NodeRecord) string {
		return model.KeyOf(r).LegacyKey()
	})
}

func buildHistogram[K comparable](records []model.NodeRecord, keyOf func(model.NodeRecord) K) []model.HistogramEntry {
	var entries []model.HistogramEntry
	index := make(map[K]int)

	for _, r := range records {
		key := keyOf(r)
		if i, ok := index[key]; ok {
			entries[i].Count++
			continue
		}
		index[key] = len(entries)
		entries = append(entries, model.HistogramEntry{
			OS:        r.OS,
			OSVersion: r.OSVersion,
			Arch:      r.Arch,
			BuildType: r.BuildType,
			Count:     1,
		})
	}
	return entries
}

// Total sums the counts of all entries.
func Total(entries []model.HistogramEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	return total
}
