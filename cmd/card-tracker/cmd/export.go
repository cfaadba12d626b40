package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the inventory",
	}

	cmd.AddCommand(exportJSONCmd())
	cmd.AddCommand(exportEbayCmd())

	return cmd
}

func exportJSONCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Export all cards as a JSON interchange document",
		Example: `  card-tracker export json -o backup.json
  card-tracker export json | jq '.items | length'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newClient().ExportJSON(cmd.Context())
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(env, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			data = append(data, '\n')

			return writeOutput(outFile, data)
		},
	}

	cmd.Flags().StringVarP(&outFile, "output-file", "o", "", "write to file instead of stdout")

	return cmd
}

func exportEbayCmd() *cobra.Command {
	var (
		outFile string
		status  string
		usdRate float64
	)

	cmd := &cobra.Command{
		Use:   "ebay-csv",
		Short: "Export cards as an eBay bulk-listing CSV",
		Example: `  card-tracker export ebay-csv -o listings.csv
  card-tracker export ebay-csv --status listed --usd-rate 1.10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := newClient().ExportEbayCSV(cmd.Context(), status, usdRate)
			if err != nil {
				return err
			}
			return writeOutput(outFile, data)
		},
	}

	cmd.Flags().StringVarP(&outFile, "output-file", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&status, "status", "", "card status to export (default available)")
	cmd.Flags().Float64Var(&usdRate, "usd-rate", 0, "EUR to USD rate (default from server config)")

	return cmd
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
	return nil
}
