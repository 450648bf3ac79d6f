package classify

import "regexp"

// Labels holds the platform fields extracted from a node's label set.
type Labels struct {
	Arch      string
	OS        string
	OSVersion string
}

// labelRule binds a label pattern to the fields it fills.
type labelRule struct {
	kind    LabelKind
	pattern *regexp.Regexp
	apply   func(l *Labels, match []string)
}

// rules are evaluated in order; the first matching label wins for each rule.
var rules = []labelRule{
	{
		kind:    KindArch,
		pattern: regexp.MustCompile(`hw\.arch\.(\w+)`),
		apply: func(l *Labels, m []string) {
			l.Arch = m[1]
		},
	},
	{
		kind:    KindOS,
		pattern: regexp.MustCompile(`sw\.os\.(\w+)\.(\w+)`),
		apply: func(l *Labels, m []string) {
			l.OS = m[1]
			l.OSVersion = NormalizeVersion(m[2])
		},
	},
}

// ParseLabels extracts architecture, OS family and OS version from an
// unordered label set. It fails with *MissingLabelError when a required
// label is absent; conflicting duplicates are not detected.
func ParseLabels(labels []string) (Labels, error) {
	var out Labels
	for _, r := range rules {
		match := firstMatch(r.pattern, labels)
		if match == nil {
			return Labels{}, &MissingLabelError{Kind: r.kind}
		}
		r.apply(&out, match)
	}
	return out, nil
}

func firstMatch(re *regexp.Regexp, labels []string) []string {
	for _, l := range labels {
		if m := re.FindStringSubmatch(l); m != nil {
			return m
		}
	}
	return nil
}

// NormalizeVersion turns label-safe version tokens like 20_04 into 20.04.
func NormalizeVersion(raw string) string {
	out := []byte(raw)
	for i := range out {
		if out[i] == '_' {
			out[i] = '.'
		}
	}
	return string(out)
}
