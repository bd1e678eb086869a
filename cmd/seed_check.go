package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/seed"
)

var seedCheckCmd = &cobra.Command{
	Use:   "seed:check <file>",
	Short: "Validate a seed file without starting the menu",
	Long: `Validate a seed file without starting the menu.

The file is applied to an empty scratch venue, so references between
sections (stock to catalog, artists to rooms, ...) are checked too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeedCheck(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(seedCheckCmd)
}

func runSeedCheck(ctx context.Context, out io.Writer, path string) error {
	s, err := seed.Load(path)
	if err != nil {
		return err
	}
	sum, err := seed.Check(ctx, s)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	_, err = fmt.Fprintf(out, "%s: ok (%s)\n", path, sum)
	return err
}
