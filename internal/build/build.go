// Package build holds build-time information.
package build

// Build metadata. The defaults can be overwritten by linker flags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies onto in outgoing requests.
func UserAgent() string {
	return "onto/" + Version
}
