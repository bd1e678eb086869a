// Package config provides configuration types, defaults and the default
// config file for camarim.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/flags"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/log"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/tracing"
)

// EnvPrefix is prepended to every environment override, e.g. CAMARIM_DEBUG.
const EnvPrefix = "CAMARIM"

// Config holds all configuration options for camarim.
type Config struct {
	Debug       bool              `mapstructure:"debug"`
	LogPath     string            `mapstructure:"log_path"`
	LogLevel    string            `mapstructure:"log_level"`
	SeedFile    string            `mapstructure:"seed_file"`
	ReportCache ReportCacheConfig `mapstructure:"report_cache"`
	Audit       AuditConfig       `mapstructure:"audit"`
	Tracing     tracing.Config    `mapstructure:"tracing"`
	Flags       map[string]bool   `mapstructure:"flags"`
}

// ReportCacheConfig controls caching of rendered reports.
type ReportCacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
	// Sliding restarts an entry's TTL each time it is served.
	Sliding bool `mapstructure:"sliding"`
}

// AuditConfig controls the in-memory change history.
type AuditConfig struct {
	// Capacity is how many changes the history keeps; 0 disables it.
	Capacity int `mapstructure:"capacity"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Debug:    false,
		LogPath:  "debug.log",
		LogLevel: "debug",
		ReportCache: ReportCacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
		Audit: AuditConfig{
			Capacity: 100,
		},
		Tracing: tracing.DefaultConfig(),
		Flags:   defaultFlags(),
	}
}

func defaultFlags() map[string]bool {
	out := make(map[string]bool, len(flags.Known))
	for name, on := range flags.Known {
		out[name] = on
	}
	return out
}

// Validate checks the whole config.
func (c Config) Validate() error {
	if c.ReportCache.TTL < 0 {
		return fmt.Errorf("report_cache.ttl must not be negative, got %s", c.ReportCache.TTL)
	}
	if c.Audit.Capacity < 0 {
		return fmt.Errorf("audit.capacity must not be negative, got %d", c.Audit.Capacity)
	}
	if c.Debug && c.LogPath == "" {
		return fmt.Errorf("log_path is required when debug is on")
	}
	return ValidateTracing(c.Tracing)
}

// ValidateTracing checks tracing configuration. Empty values use defaults.
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	switch t.Exporter {
	case "", tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
	default:
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
	}

	if t.Enabled {
		if t.Exporter == tracing.ExporterFile && t.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if t.Exporter == tracing.ExporterOTLP && t.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}
	return nil
}

// SearchPaths returns the config file locations tried in order when no
// --config flag is given.
func SearchPaths() []string {
	paths := []string{filepath.Join(".camarim", "config.yaml")}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "camarim", "config.yaml"))
	}
	return paths
}

// WriteDefaultConfig creates a config file at configPath holding the
// defaults, with comments. Parent directories are created. An existing file
// is not overwritten.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	data, err := DefaultConfigYAML()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
