package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/igreport/internal/config"
	"github.com/gyeh/igreport/internal/exitcode"
)

var (
	cfg        config.Config
	configFile string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "igreport",
	Short: "Generate per-patient IgG food-allergen PDF reports",
	Long:  "Reads a lab results workbook, classifies every food-item concentration into severity tiers, and renders one templated PDF report per patient via WeasyPrint.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Optional YAML config file with site-stable settings")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&debug, "debug", false, "Enable per-record debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
