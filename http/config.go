package napihttp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the REST binding. Zero values fall back to
// DefaultConfig semantics.
type Config struct {
	// ListenAddr is the address ListenAndServe binds to.
	ListenAddr string `yaml:"listen_addr"`
	// EnableSubmit exposes POST /v1/transactions. A binding does not
	// have to expose every service operation.
	EnableSubmit bool `yaml:"enable_submit"`
	// RateLimit bounds inbound requests. PerSecond 0 disables limiting.
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig is a token-bucket limit over all inbound requests.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// DefaultConfig returns the binding defaults: loopback listener,
// submission enabled, no rate limit.
func DefaultConfig() Config {
	return Config{
		ListenAddr:   "127.0.0.1:14265",
		EnableSubmit: true,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
