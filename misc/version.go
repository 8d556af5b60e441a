// Package misc holds build time information.
package misc

// Set by the linker: -ldflags "-X tsg/misc.version=... -X tsg/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
	appName = "tsg"
)

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit the program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name used for log and report files.
func GetAppName() string {
	return appName
}
