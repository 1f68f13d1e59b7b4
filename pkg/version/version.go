package version

// Version represents the current version of wiscat
const Version = "0.5.0"

// BuildVersion returns the version string for display
func BuildVersion() string {
	return "wiscat version " + Version
}
