package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/igreport/internal/exitcode"
	"github.com/gyeh/igreport/internal/extract"
	"github.com/gyeh/igreport/internal/logging"
	"github.com/gyeh/igreport/internal/render"
	"github.com/gyeh/igreport/internal/schema"
	"github.com/gyeh/igreport/internal/sheetread"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no PDFs written)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to results workbook (required)")
	f.StringVar(&cfg.TemplateDir, "template-dir", "", "Directory holding report templates (default templates)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, debug)

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	cfg.ApplyDefaults()

	if cfg.FilePath == "" {
		log.Error().Msg("--file is required")
		os.Exit(exitcode.UsageError)
	}

	registry, err := schema.NewRegistry()
	if err != nil {
		log.Error().Err(err).Msg("schema registry validation failed")
		os.Exit(exitcode.ConfigError)
	}

	rows, err := sheetread.ReadFile(cfg.FilePath, sheetread.DefaultLayout)
	if err != nil {
		log.Error().Err(err).Msg("failed to read workbook")
		os.Exit(exitcode.InputError)
	}

	// Count rows per project code; extract (without rendering) to see how
	// many would survive validation.
	extractor := extract.NewExtractor(registry, nil)
	perCode := make(map[string]int)
	unknownCodes := make(map[string]bool)
	valid := 0
	for i := range rows {
		code := strings.TrimSpace(rows[i].ProjectCode)
		perCode[code]++
		if _, resolveErr := registry.Resolve(code); resolveErr != nil {
			unknownCodes[code] = true
		}
		if _, extractErr := extractor.Extract(&rows[i]); extractErr == nil {
			valid++
		}
	}

	templateIDs := make([]string, 0, len(registry.Schemas()))
	for _, s := range registry.Schemas() {
		templateIDs = append(templateIDs, s.TemplateID)
	}
	templateStatus := "OK"
	if err := render.CheckTemplates(cfg.TemplateDir, templateIDs); err != nil {
		templateStatus = err.Error()
	}

	fmt.Println("=== igreport plan ===")
	fmt.Printf("File:       %s\n", cfg.FilePath)
	fmt.Printf("Rows:       %d\n", len(rows))
	fmt.Printf("Extractable: %d (%d would be skipped)\n", valid, len(rows)-valid)
	fmt.Println()
	fmt.Println("Rows per project code:")
	for _, s := range registry.Schemas() {
		if n := perCode[s.Code]; n > 0 {
			fmt.Printf("  %-12s %4d rows (%d items each)\n", s.Code, n, s.ItemCount)
		}
	}
	for code := range unknownCodes {
		fmt.Printf("  %-12s %4d rows (UNSUPPORTED)\n", code, perCode[code])
	}
	fmt.Println()
	fmt.Printf("Registry validation: OK\n")
	fmt.Printf("Templates: %s\n", templateStatus)

	return nil
}
