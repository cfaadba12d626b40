package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

func importCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import cards from pasted text or a JSON export",
		Long: "Imports cards from a file or stdin. By default the input is\n" +
			"pipe-delimited bulk text, one card per line. With --json the\n" +
			"input is a JSON export document from a previous export.",
		Example: `  card-tracker import cards.txt
  pbpaste | card-tracker import
  card-tracker import --json backup.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			c := newClient()
			var summary *domain.ImportSummary
			if asJSON {
				summary, err = c.ImportJSON(cmd.Context(), data)
			} else {
				summary, err = c.ImportBulk(cmd.Context(), string(data))
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(summary)
			}
			return printImportSummary(summary)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "treat input as a JSON export document")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}
