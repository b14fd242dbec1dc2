package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/igreport/internal/exitcode"
	"github.com/gyeh/igreport/internal/logging"
	"github.com/gyeh/igreport/internal/model"
	"github.com/gyeh/igreport/internal/report"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate PDF reports from a results workbook",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to results workbook (required)")
	f.StringVar(&cfg.OutputDir, "output-dir", "", "Directory for generated PDFs (default output_reports)")
	f.StringVar(&cfg.TemplateDir, "template-dir", "", "Directory holding report templates (default templates)")
	f.StringVar(&cfg.SignatureDir, "signature-dir", "", "Directory of signature images keyed by person name")
	f.StringVar(&cfg.RendererPath, "renderer", "", "WeasyPrint executable (default weasyprint)")
	f.IntVar(&cfg.TimeoutSec, "render-timeout", 0, "Per-report renderer timeout in seconds (default 120)")
	f.BoolVar(&cfg.IDSuffix, "id-suffix", false, "Include the patient ID in output filenames")
	f.StringVar(&cfg.ExportParquet, "export-parquet", "", "Also write classified results to a Parquet file")
	_ = generateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, debug)
	ctx := context.Background()

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := report.Run(ctx, log, &cfg)
	if err != nil {
		var pe *report.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("generate failed")
			switch pe.Phase {
			case "preflight":
				os.Exit(exitcode.ConfigError)
			case "read":
				os.Exit(exitcode.InputError)
			default:
				os.Exit(exitcode.RenderError)
			}
		}
		log.Error().Err(err).Msg("generate failed")
		os.Exit(exitcode.RenderError)
	}

	printSummary(summary)

	if summary.Skipped > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

func printSummary(s *model.BatchSummary) {
	fmt.Printf("Generate complete: %d rows read, %d rendered, %d skipped (%.1fs)\n",
		s.RowsRead, s.Rendered, s.Skipped, s.DurationTotal.Seconds())
	for _, f := range s.Failures {
		patient := f.Patient
		if patient == "" {
			patient = "(unknown)"
		}
		fmt.Printf("  row %d  %-12s [%s] %s\n", f.Row, patient, f.Kind, f.Detail)
	}
}
