package version

const (
	// Name of the application
	Name = "Arcano"
)

var (
	// Version is the semantic version
	Version = "1.4.0"
	// BuildTime is set during build via ldflags
	BuildTime = "unknown"
	// GitCommit is set during build via ldflags
	GitCommit = "unknown"
)

// Full returns the complete version string.
func Full() string {
	if BuildTime != "unknown" && GitCommit != "unknown" {
		return Version + " (commit: " + GitCommit + ", built: " + BuildTime + ")"
	}
	return Version
}

// UserAgent identifies outbound calls made by the backend (alerts, S3).
func UserAgent() string {
	return Name + "/" + Version
}
