package report

import (
	"fmt"
	"os"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/igreport/internal/model"
)

// writeParquetExport writes the flat per-item analytics rows to a Parquet
// file. An empty batch still produces a valid file with zero rows.
func writeParquetExport(path string, rows []model.ResultExportRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	w := goparquet.NewGenericWriter[model.ResultExportRow](f)
	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			w.Close()
			f.Close()
			return fmt.Errorf("write export rows: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close export writer: %w", err)
	}
	return f.Close()
}
