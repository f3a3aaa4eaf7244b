package app

import "time"

// Config holds runtime configuration for the service.
type Config struct {
	// HTTP
	ListenAddr string

	// Fetching
	FetchTimeout time.Duration
	UserAgent    string

	// Cache
	CacheDir string

	// Behavior
	Verbose bool
}

// Defaults applied after flags, env and file config have been merged.
const (
	DefaultListenAddr = ":5000"
	DefaultUserAgent  = "contactscout/1.0 (+https://github.com/outreachkit/contactscout)"
)

// ApplyDefaults fills any still-unset fields with service defaults.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
}
