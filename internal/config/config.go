package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for dexfetch.
type Config struct {
	Fetcher Fetcher `mapstructure:"fetcher" yaml:"fetcher"`
	Batch   Batch   `mapstructure:"batch"   yaml:"batch"`
	Storage Storage `mapstructure:"storage" yaml:"storage"`
	Logging Logging `mapstructure:"logging" yaml:"logging"`
	Metrics Metrics `mapstructure:"metrics" yaml:"metrics"`
}

// Fetcher controls the page fetcher.
type Fetcher struct {
	Type            string        `mapstructure:"type"              yaml:"type"` // http or browser
	RequestTimeout  time.Duration `mapstructure:"request_timeout"   yaml:"request_timeout"`
	UserAgent       string        `mapstructure:"user_agent"        yaml:"user_agent"`
	FollowRedirects bool          `mapstructure:"follow_redirects"  yaml:"follow_redirects"`
	MaxRedirects    int           `mapstructure:"max_redirects"     yaml:"max_redirects"`
	MaxBodySize     int64         `mapstructure:"max_body_size"     yaml:"max_body_size"`
	TLSInsecure     bool          `mapstructure:"tls_insecure"      yaml:"tls_insecure"`
	IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    yaml:"max_idle_conns"`
	Stealth         bool          `mapstructure:"stealth"           yaml:"stealth"` // browser fetcher only
}

// Batch controls the sequential batch runner.
type Batch struct {
	// Delay is the fixed pause between successive fetches. This is a
	// politeness delay toward the wiki, not adaptive backoff.
	Delay time.Duration `mapstructure:"delay" yaml:"delay"`
}

// Storage controls where rendered records go.
type Storage struct {
	Type            string `mapstructure:"type"             yaml:"type"` // text, jsonl, mongodb
	OutputPath      string `mapstructure:"output_path"      yaml:"output_path"`
	MongoURI        string `mapstructure:"mongo_uri"        yaml:"mongo_uri"`
	MongoDatabase   string `mapstructure:"mongo_database"   yaml:"mongo_database"`
	MongoCollection string `mapstructure:"mongo_collection" yaml:"mongo_collection"`
}

// Logging controls logging behavior.
type Logging struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Metrics controls the metrics endpoint.
type Metrics struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Port    int    `mapstructure:"port"    yaml:"port"`
	Path    string `mapstructure:"path"    yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fetcher: Fetcher{
			Type:            "http",
			RequestTimeout:  10 * time.Second,
			UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			FollowRedirects: true,
			MaxRedirects:    10,
			MaxBodySize:     10 * 1024 * 1024, // 10MB
			IdleConnTimeout: 90 * time.Second,
			MaxIdleConns:    10,
		},
		Batch: Batch{
			Delay: 1 * time.Second,
		},
		Storage: Storage{
			Type:            "text",
			OutputPath:      "processed_output.md",
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   "dexfetch",
			MongoCollection: "results",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Metrics: Metrics{
			Enabled: false,
			Port:    9090,
			Path:    "/metrics",
		},
	}
}
