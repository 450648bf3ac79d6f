package model

// HistogramKey identifies a group of identically classified nodes.
type HistogramKey struct {
	OS        string
	OSVersion string
	Arch      string
	BuildType BuildType
}

// HistogramEntry counts the nodes sharing one HistogramKey.
type HistogramEntry struct {
	OS        string
	OSVersion string
	Arch      string
	BuildType BuildType
	Count     int
}

// KeyOf returns the histogram identity of a record.
func KeyOf(r NodeRecord) HistogramKey {
	return HistogramKey{OS: r.OS, OSVersion: r.OSVersion, Arch: r.Arch, BuildType: r.BuildType}
}

// LegacyKey is the plain string concatenation older report consumers key on.
// Distinct keys can produce the same string ("linux"+"8" and "linux8"+"").
func (k HistogramKey) LegacyKey() string {
	return k.OS + k.OSVersion + k.Arch + k.BuildType.String()
}
