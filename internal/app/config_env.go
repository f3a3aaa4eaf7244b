package app

import (
	"os"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.ListenAddr == "" {
		// Support both LISTEN_ADDR and a bare PORT; prefer LISTEN_ADDR.
		if v := os.Getenv("LISTEN_ADDR"); v != "" {
			cfg.ListenAddr = v
		} else if p := os.Getenv("PORT"); p != "" {
			cfg.ListenAddr = ":" + p
		}
	}

	if cfg.FetchTimeout == 0 {
		if s := os.Getenv("FETCH_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.FetchTimeout = d
			}
		}
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("USER_AGENT")
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("CACHE_DIR")
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			if s == "1" || s == "true" || s == "yes" || s == "on" {
				*dst = true
			}
		}
	}
	setBool(&cfg.Verbose, "VERBOSE")
}
