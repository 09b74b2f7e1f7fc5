package updater

import "time"

const (
	// GitHub repository that publishes release binaries.
	RepoOwner = "cfe-fetch"
	RepoName  = "cfe-fetch"

	DefaultCheckInterval = 1 * time.Hour

	// Wait after service start before the first check.
	StartupDelay = 30 * time.Second
)

// Config selects the release source and check cadence.
type Config struct {
	Owner          string
	Repo           string
	CheckInterval  time.Duration
	CurrentVersion string
}

func DefaultConfig(version string) *Config {
	return &Config{
		Owner:          RepoOwner,
		Repo:           RepoName,
		CheckInterval:  DefaultCheckInterval,
		CurrentVersion: version,
	}
}

// ParseDuration parses an interval flag value such as "1h" or "30m".
func ParseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
