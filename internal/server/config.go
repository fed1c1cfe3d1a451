package server

import "github.com/caarlos0/env/v11"

// AppConfig is the server's runtime configuration. Environment variables
// provide the defaults; command-line flags in main override them.
type AppConfig struct {
	// Addr is the listen address.
	Addr string `env:"SWIPESTATE_ADDR" envDefault:":8080"`
	// ContentDir optionally points at authored route JSON documents which
	// override the built-in routes per route type.
	ContentDir string `env:"SWIPESTATE_CONTENT_DIR"`
}

// LoadConfigFromEnv reads configuration from the environment with defensive
// defaults.
func LoadConfigFromEnv() AppConfig {
	var cfg AppConfig
	_ = env.Parse(&cfg)
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg
}
