package exporter

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
	"github.com/KaramelBytes/ehrqc-cli/internal/utils"
)

// Excel caps sheet names at 31 characters.
const maxSheetName = 31

// WriteWorkbook persists the whole report as one XLSX workbook: a
// Summary sheet with the check/detail rows plus one sheet per issue.
func WriteWorkbook(path string, rep *qc.Report) error {
	slog.Info("writing workbook",
		slog.String("path", path),
		slog.Int("issue_count", len(rep.Issues)))

	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := setRow(f, summary, 1, []string{"check", "detail"}); err != nil {
		return err
	}
	for i, row := range rep.Rows {
		if err := setRow(f, summary, i+2, []string{row.Check, row.Detail}); err != nil {
			return err
		}
	}

	for _, is := range rep.Issues {
		sheet := sheetName(is.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("new sheet %q: %w", sheet, err)
		}
		if err := setRow(f, sheet, 1, is.Table.Columns); err != nil {
			return err
		}
		for i, row := range is.Table.Rows {
			if err := setRow(f, sheet, i+2, row); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	vals := make([]any, len(cells))
	for i, c := range cells {
		vals[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
		return fmt.Errorf("set row %d on %q: %w", rowNum, sheet, err)
	}
	return nil
}

func sheetName(issue string) string {
	if len(issue) > maxSheetName {
		return issue[:maxSheetName]
	}
	return issue
}
