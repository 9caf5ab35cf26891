package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	// MaxContentBytes caps a single post body; MaxPosts caps the feed
	// length (appends past the cap are rejected, the feed never shrinks).
	MaxContentBytes int `mapstructure:"max_content_bytes" yaml:"max_content_bytes"`
	MaxPosts        int `mapstructure:"max_posts" yaml:"max_posts"`

	// StreamWriteTimeout bounds a single write to a streaming client so a
	// stalled connection ends only its own subscription.
	StreamWriteTimeout time.Duration `mapstructure:"stream_write_timeout" yaml:"stream_write_timeout"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:               ":8080",
		ReadHeaderTimeout:  5 * time.Second,
		ShutdownTimeout:    5 * time.Second,
		LogLevel:           "info",
		MaxContentBytes:    4096,
		MaxPosts:           10000,
		StreamWriteTimeout: 5 * time.Second,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.MaxContentBytes != 0 {
		c.MaxContentBytes = other.MaxContentBytes
	}
	if other.MaxPosts != 0 {
		c.MaxPosts = other.MaxPosts
	}
	if other.StreamWriteTimeout != 0 {
		c.StreamWriteTimeout = other.StreamWriteTimeout
	}
}
