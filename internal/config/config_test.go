package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/flags"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/tracing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.False(t, cfg.Debug)
	require.Equal(t, "debug.log", cfg.LogPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Empty(t, cfg.SeedFile)
	require.True(t, cfg.ReportCache.Enabled)
	require.Equal(t, 5*time.Minute, cfg.ReportCache.TTL)
	require.False(t, cfg.ReportCache.Sliding)
	require.Equal(t, 100, cfg.Audit.Capacity)
	require.False(t, cfg.Tracing.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestDefaults_FlagsAreACopy(t *testing.T) {
	cfg := Defaults()
	require.Contains(t, cfg.Flags, flags.FlagStrictRoomRefs)

	cfg.Flags[flags.FlagStrictRoomRefs] = true
	require.False(t, flags.Known[flags.FlagStrictRoomRefs])
	require.False(t, Defaults().Flags[flags.FlagStrictRoomRefs])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative ttl", func(c *Config) { c.ReportCache.TTL = -time.Second }, "report_cache.ttl"},
		{"negative capacity", func(c *Config) { c.Audit.Capacity = -1 }, "audit.capacity"},
		{"debug without log path", func(c *Config) { c.Debug = true; c.LogPath = "" }, "log_path"},
		{"bad sample rate", func(c *Config) { c.Tracing.SampleRate = 1.5 }, "sample_rate"},
		{"zero ttl is fine", func(c *Config) { c.ReportCache.TTL = 0 }, ""},
		{"zero capacity is fine", func(c *Config) { c.Audit.Capacity = 0 }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateTracing(t *testing.T) {
	require.NoError(t, ValidateTracing(tracing.Config{}), "empty config uses defaults")

	err := ValidateTracing(tracing.Config{Exporter: "jaeger"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "tracing.exporter")

	err = ValidateTracing(tracing.Config{Enabled: true, Exporter: tracing.ExporterFile})
	require.Error(t, err)
	require.Contains(t, err.Error(), "file_path")

	err = ValidateTracing(tracing.Config{Enabled: true, Exporter: tracing.ExporterOTLP})
	require.Error(t, err)
	require.Contains(t, err.Error(), "otlp_endpoint")

	// Missing paths only matter when tracing is on.
	require.NoError(t, ValidateTracing(tracing.Config{Exporter: tracing.ExporterFile}))
	require.NoError(t, ValidateTracing(tracing.Config{Enabled: true, Exporter: tracing.ExporterStdout}))
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths()
	require.NotEmpty(t, paths)
	require.Equal(t, filepath.Join(".camarim", "config.yaml"), paths[0])
}

func TestWriteDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(configPath))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "# Camarim configuration")
	require.Contains(t, string(data), "report_cache:")

	err = WriteDefaultConfig(configPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}
