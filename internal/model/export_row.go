package model

// ResultExportRow mirrors the Parquet schema for the optional analytics
// export: one flat row per (patient, food item), written after a batch
// completes. Level and category are stored as their string forms.
type ResultExportRow struct {
	BatchID     string `parquet:"batch_id"`
	SourceRow   int64  `parquet:"source_row"`
	PatientID   string `parquet:"patient_id"`
	PatientName string `parquet:"patient_name"`
	Gender      string `parquet:"gender"`
	Age         string `parquet:"age"`
	ProjectCode string `parquet:"project_code"`
	TestTime    string `parquet:"test_time"`

	FoodName      string  `parquet:"food_name"`
	Category      string  `parquet:"category"`
	Concentration float64 `parquet:"concentration"`
	Level         string  `parquet:"level"`
}

// ExportRows flattens a record into analytics rows.
func ExportRows(rec *PatientRecord, batchID string, sourceRow int) []ResultExportRow {
	rows := make([]ResultExportRow, 0, len(rec.Results))
	for _, fr := range rec.Results {
		rows = append(rows, ResultExportRow{
			BatchID:       batchID,
			SourceRow:     int64(sourceRow),
			PatientID:     rec.PatientID,
			PatientName:   rec.PatientName,
			Gender:        rec.Gender,
			Age:           rec.Age,
			ProjectCode:   rec.ProjectCode,
			TestTime:      rec.TestTime,
			FoodName:      fr.Name,
			Category:      string(fr.Category),
			Concentration: fr.Concentration,
			Level:         fr.Level.String(),
		})
	}
	return rows
}
