// Package cmd implements the card-tracker CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/filamvp/card-tracker/internal/api/client"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "card-tracker",
	Short: "Card collection inventory and sales tracker",
	Long: "An API-first service for managing a trading card collection:\n" +
		"bulk text import with title deduplication, image ingestion with\n" +
		"vision-based field extraction, and marketplace exports.",
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "config.yaml", "config file path (server commands)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL (client commands)")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(cardsCmd())
	rootCmd.AddCommand(queueCmd())
}

func initConfig() {
	viper.SetEnvPrefix("CARDTRACKER")
	viper.AutomaticEnv()
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
