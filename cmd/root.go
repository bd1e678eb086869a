package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/config"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/flags"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/log"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/menu"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/watcher"
)

var (
	version    = "dev"
	cfgFile    string
	cfg        config.Config
	configUsed string
	configErr  error
	verbose    bool
	closeLog   = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "camarim",
	Short: "Controle de estoque de camarins",
	Long: `Controle de estoque de camarins para casas de show: catálogo de itens,
estoque central, camarins, artistas, pedidos e listas de compras.

Sem subcomando abre o menu interativo.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: func(*cobra.Command, []string) error { closeLog(); return nil },
	RunE:               runMenu,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .camarim/config.yaml, then ~/.config/camarim/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "write debug log to log_path")
	rootCmd.PersistentFlags().StringP("seed", "s", "", "YAML file loaded into the venue at startup")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "echo log lines to stderr")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("seed_file", rootCmd.PersistentFlags().Lookup("seed"))
}

func initConfig() {
	// A missing .env is fine.
	_ = godotenv.Load()
	cfg, configUsed, configErr = loadConfig(viper.GetViper(), cfgFile)
}

// loadConfig reads defaults, the config file and CAMARIM_* environment
// overrides into a Config. An explicit path must exist; otherwise
// config.SearchPaths is tried in order. The file used is returned, empty
// when none was found.
func loadConfig(v *viper.Viper, path string) (config.Config, string, error) {
	setDefaults(v, config.Defaults())
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path == "" {
		for _, p := range config.SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, path, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, path, fmt.Errorf("decoding config: %w", err)
	}
	return c, path, nil
}

func setDefaults(v *viper.Viper, d config.Config) {
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_path", d.LogPath)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("seed_file", d.SeedFile)
	v.SetDefault("report_cache.enabled", d.ReportCache.Enabled)
	v.SetDefault("report_cache.ttl", d.ReportCache.TTL)
	v.SetDefault("report_cache.sliding", d.ReportCache.Sliding)
	v.SetDefault("audit.capacity", d.Audit.Capacity)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("flags", d.Flags)
}

// setupLogging validates the loaded config and starts the debug log when
// asked. --verbose without --debug logs to stderr only.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch {
	case cfg.Debug:
		closeFile, err := log.Init(cfg.LogPath)
		if err != nil {
			return err
		}
		closeLog = closeFile
	case verbose:
		closeLog = log.SetDefault(log.New(nil))
	default:
		return nil
	}
	log.SetMinLevel(log.ParseLevel(cfg.LogLevel))
	log.Info(log.CatConfig, "Config loaded", "file", configUsed, "version", version)

	if verbose {
		go echoLog(cmd.Context(), cmd.ErrOrStderr())
	}
	return nil
}

func echoLog(ctx context.Context, w io.Writer) {
	ch := log.Subscribe(ctx)
	if ch == nil {
		return
	}
	for ev := range ch {
		_, _ = io.WriteString(w, ev.Payload)
	}
}

func runMenu(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, shutdown, err := openVenue(ctx, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer shutdown()

	if configUsed != "" {
		stop := watchFlags(ctx, configUsed, a.Flags())
		defer stop()
	}
	return menu.New(a, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
}

// watchFlags reloads the flags section of path into r whenever the file
// changes. The returned func stops watching.
func watchFlags(ctx context.Context, path string, r *flags.Registry) func() {
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err == nil {
		var onChange <-chan struct{}
		if onChange, err = w.Start(); err == nil {
			go reloadFlags(ctx, path, r, onChange)
			return func() { _ = w.Stop() }
		}
		_ = w.Stop()
	}
	log.ErrorErr(log.CatConfig, "Config watch unavailable", err, "path", path)
	return func() {}
}

func reloadFlags(ctx context.Context, path string, r *flags.Registry, onChange <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-onChange:
			if !ok {
				return
			}
			c, _, err := loadConfig(viper.New(), path)
			if err != nil {
				log.ErrorErr(log.CatConfig, "Config reload failed", err, "path", path)
				continue
			}
			r.Update(c.Flags)
		}
	}
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
