package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/config"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report <catalog|stock|artists|rooms|requests|shopping>",
	Short: "Print one report of the venue and exit",
	Long: `Print one report of the venue and exit.

The venue starts empty, so this is mostly useful with --seed or a config
that sets seed_file.

Examples:
  camarim report stock --seed venue.yaml
  camarim report requests --seed venue.yaml --json | jq '.[] | select(.fulfilled == false)'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd.Context(), cmd.OutOrStdout(), cfg, args[0], reportJSON)
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print JSON instead of text")
	rootCmd.AddCommand(reportCmd)
}

func runReport(ctx context.Context, out io.Writer, c config.Config, kind string, asJSON bool) error {
	d, err := app.ParseDomain(kind)
	if err != nil {
		return err
	}
	a, shutdown, err := openVenue(ctx, c, nil)
	if err != nil {
		return err
	}
	defer shutdown()

	text, err := a.Report(ctx, d, asJSON)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, text)
	return err
}
