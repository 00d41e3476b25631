package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/stowd/stowd/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/stowd/stowd/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/stowd/stowd/internal/version.Date={{.Date}}
)
