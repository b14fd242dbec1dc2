package report

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gyeh/igreport/internal/config"
	"github.com/gyeh/igreport/internal/extract"
	"github.com/gyeh/igreport/internal/model"
	"github.com/gyeh/igreport/internal/render"
	"github.com/gyeh/igreport/internal/schema"
	"github.com/gyeh/igreport/internal/sheetread"
	"github.com/gyeh/igreport/internal/signature"
)

// Exporter consumes a validated record and produces its PDF, returning
// the output path. The production implementation is *render.Renderer.
type Exporter interface {
	Export(ctx context.Context, rec *model.PatientRecord) (string, error)
}

// Deps holds everything the processing loop needs, resolved once during
// preflight.
type Deps struct {
	Registry  *schema.Registry
	Extractor *extract.Extractor
	Exporter  Exporter
	Layout    sheetread.Layout
}

// preflight builds the registry, signature store and renderer, failing
// fast on any configuration-integrity problem.
func preflight(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*Deps, error) {
	registry, err := schema.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("schema registry: %w", err)
	}

	signatures, err := signature.Load(cfg.SignatureDir)
	if err != nil {
		return nil, err
	}
	if cfg.SignatureDir != "" {
		log.Info().Int("assets", signatures.Len()).Str("dir", cfg.SignatureDir).Msg("signature assets indexed")
	}

	templateIDs := make([]string, 0, len(registry.Schemas()))
	for _, s := range registry.Schemas() {
		templateIDs = append(templateIDs, s.TemplateID)
	}

	renderer, err := render.New(render.Options{
		TemplateDir: cfg.TemplateDir,
		OutputDir:   cfg.OutputDir,
		Binary:      cfg.RendererPath,
		Timeout:     cfg.RenderTimeout(),
		IDSuffix:    cfg.IDSuffix,
	}, templateIDs, log)
	if err != nil {
		return nil, err
	}

	if err := renderer.CheckBinary(ctx); err != nil {
		return nil, err
	}

	log.Info().
		Strs("project_codes", registry.Codes()).
		Str("output_dir", cfg.OutputDir).
		Msg("preflight complete")

	return &Deps{
		Registry:  registry,
		Extractor: extract.NewExtractor(registry, signatures),
		Exporter:  renderer,
		Layout:    sheetread.DefaultLayout,
	}, nil
}
