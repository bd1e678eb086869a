package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/config"
)

var configInitCmd = &cobra.Command{
	Use:   "config:init [path]",
	Short: "Write a commented default config file",
	Long: `Write a commented default config file.

Without a path the file goes to .camarim/config.yaml. An existing file is
never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.SearchPaths()[0]
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuração criada em %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configInitCmd)
}
