package classify

import "github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"

const (
	BuildRoleLabel = "ci.role.build"
	TestRoleLabel  = "ci.role.test"
)

// ClassifyRole derives a node's CI role from the presence of the build and
// test role labels.
func ClassifyRole(labels []string) model.BuildType {
	var build, test bool
	for _, l := range labels {
		switch l {
		case BuildRoleLabel:
			build = true
		case TestRoleLabel:
			test = true
		}
	}

	switch {
	case build && test:
		return model.BuildTypeBuildAndTest
	case build:
		return model.BuildTypeBuild
	case test:
		return model.BuildTypeTest
	default:
		return model.BuildTypeNone
	}
}
