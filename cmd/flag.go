package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/config"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/flags"
)

var flagCmd = &cobra.Command{
	Use:   "flag",
	Short: "Show or change feature flags",
}

var flagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known feature flags and their state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listFlags(cmd.OutOrStdout(), flags.New(cfg.Flags))
	},
}

var flagSetCmd = &cobra.Command{
	Use:   "set <name> <on|off>",
	Short: "Turn a feature flag on or off in the config file",
	Long: `Turn a feature flag on or off in the config file.

The file named by --config is edited, or the one found on the search path,
or .camarim/config.yaml. Comments and other keys are kept.

Example:
  camarim flag set strict-room-refs on`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configUsed
		if path == "" {
			path = config.SearchPaths()[0]
		}
		return setFlag(cmd.OutOrStdout(), path, args[0], args[1])
	},
}

func init() {
	flagCmd.AddCommand(flagListCmd, flagSetCmd)
	rootCmd.AddCommand(flagCmd)
}

func listFlags(out io.Writer, r *flags.Registry) error {
	for _, name := range slices.Sorted(maps.Keys(flags.Known)) {
		state := "off"
		if r.Enabled(name) {
			state = "on"
		}
		if _, err := fmt.Fprintf(out, "%-20s %s\n", name, state); err != nil {
			return err
		}
	}
	return nil
}

func setFlag(out io.Writer, path, name, value string) error {
	if _, ok := flags.Known[name]; !ok {
		return fmt.Errorf("unknown flag %q (known: %s)", name,
			strings.Join(slices.Sorted(maps.Keys(flags.Known)), ", "))
	}

	var on bool
	switch strings.ToLower(value) {
	case "on", "true", "1":
		on = true
	case "off", "false", "0":
	default:
		return fmt.Errorf("flag value must be on or off, got %q", value)
	}

	if err := config.SetFlag(path, name, on); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%s = %s em %s\n", name, value, path)
	return err
}
