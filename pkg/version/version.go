package version

import "fmt"

// Values for these are injected by the build.
var (
	version   = "edge"
	component = "outlier"
)

// Version returns the Outlier version. This is either a semantic version
// number or else, in the case of unreleased code, the string "edge".
func Version() string {
	if version == "edge" {
		return version
	}

	return fmt.Sprintf("v%s", version)
}

// Component returns the name of the binary this build was produced for.
func Component() string {
	return component
}

func SetComponent(name string) {
	component = name
}
