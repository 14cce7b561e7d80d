package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
)

// nullTokens are cell spellings treated as missing on load, in
// addition to the empty cell.
var nullTokens = map[string]bool{
	"NA": true, "N/A": true, "NaN": true, "nan": true,
	"null": true, "NULL": true, "None": true,
}

// LoadCSV reads a delimited file into a Dataset. The first row is the
// header; rows shorter than the header are padded with nulls. If
// delimiter is 0 it is sniffed from the extension (.tsv gets a tab).
func LoadCSV(path string, delimiter rune) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	if delimiter == 0 {
		delimiter = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delimiter

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return dataset.New(nil, nil), nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	fields := make([]string, len(header))
	for i, h := range header {
		fields[i] = strings.TrimSpace(h)
	}

	var rows [][]dataset.Value
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make([]dataset.Value, len(fields))
		for i := range fields {
			if i < len(rec) {
				row[i] = cell(rec[i])
			} else {
				row[i] = dataset.Null()
			}
		}
		rows = append(rows, row)
	}
	return dataset.New(fields, rows), nil
}

func cell(raw string) dataset.Value {
	if nullTokens[strings.TrimSpace(raw)] {
		return dataset.Null()
	}
	return dataset.Cell(raw)
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
