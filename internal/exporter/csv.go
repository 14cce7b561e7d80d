package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
	"github.com/KaramelBytes/ehrqc-cli/internal/utils"
)

// WriteSummaryCSV persists the report's check/detail rows, matching the
// shape of the historical summary table.
func WriteSummaryCSV(path string, rep *qc.Report) error {
	records := make([][]string, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		records = append(records, []string{row.Check, row.Detail})
	}
	return writeCSV(path, []string{"check", "detail"}, records)
}

// WriteIssueCSVs writes one <issue_name>.csv per issue into dir and
// returns the written paths in issue order.
func WriteIssueCSVs(dir string, issues []qc.Issue) ([]string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("ensure output dir: %w", err)
	}
	paths := make([]string, 0, len(issues))
	for _, is := range issues {
		path := filepath.Join(dir, is.Name+".csv")
		if err := writeCSV(path, is.Table.Columns, is.Table.Rows); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteDatasetCSV persists a dataset as-is, nulls as empty cells.
func WriteDatasetCSV(path string, ds *dataset.Dataset) error {
	fields := ds.Fields()
	records := make([][]string, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		r := ds.Record(i)
		row := make([]string, 0, len(fields))
		for _, f := range fields {
			s, _ := r.String(f)
			row = append(row, s)
		}
		records = append(records, row)
	}
	return writeCSV(path, fields, records)
}

func writeCSV(path string, header []string, records [][]string) error {
	slog.Info("writing csv",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for i, rec := range records {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	return w.Error()
}
