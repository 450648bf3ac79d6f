package model

// Tree groups records by architecture, then OS, then OS version.
type Tree map[string]map[string]map[string][]NodeRecord

// Add appends a record to the leaf for its arch/os/version triple,
// creating intermediate levels as needed.
func (t Tree) Add(r NodeRecord) {
	byOS, ok := t[r.Arch]
	if !ok {
		byOS = make(map[string]map[string][]NodeRecord)
		t[r.Arch] = byOS
	}
	byVersion, ok := byOS[r.OS]
	if !ok {
		byVersion = make(map[string][]NodeRecord)
		byOS[r.OS] = byVersion
	}
	byVersion[r.OSVersion] = append(byVersion[r.OSVersion], r)
}

// Leaf returns the records grouped under arch/os/version.
func (t Tree) Leaf(arch, os, version string) []NodeRecord {
	return t[arch][os][version]
}
