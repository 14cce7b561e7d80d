package loader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
)

// LoadXLSX reads one worksheet into a Dataset. An empty sheet name
// selects the first sheet in the workbook.
func LoadXLSX(path, sheet string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return dataset.New(nil, nil), nil
	}

	fields := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		fields[i] = strings.TrimSpace(h)
	}
	var out [][]dataset.Value
	for _, rec := range rows[1:] {
		row := make([]dataset.Value, len(fields))
		for i := range fields {
			if i < len(rec) {
				row[i] = cell(rec[i])
			} else {
				row[i] = dataset.Null()
			}
		}
		out = append(out, row)
	}
	return dataset.New(fields, out), nil
}
