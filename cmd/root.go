package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seo-optimizer/contentseo/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "contentseo",
	Short: "Score articles against on-page SEO rules",
	Long: `contentseo checks an article's title, meta description, slug and body
against a catalogue of SEO rules for one or more focus keyphrases.

Run it as an HTTP API with 'serve', or analyze a single article with 'analyze'.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the YAML config file")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
