package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
	"github.com/KaramelBytes/ehrqc-cli/internal/loader"
	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
)

// loadDataset picks the loader by extension. delimiter and sheet come
// from command flags and may be empty.
func loadDataset(path, delimiter, sheet string) (*dataset.Dataset, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") {
		return loader.LoadXLSX(path, sheet)
	}
	var delim rune
	switch delimiter {
	case "":
	case ",":
		delim = ','
	case ";":
		delim = ';'
	case "\t", "tab":
		delim = '\t'
	default:
		return nil, fmt.Errorf("unsupported --delimiter: %s", delimiter)
	}
	if delim == 0 && cfg != nil && cfg.Delimiter != "" {
		switch cfg.Delimiter {
		case ",":
			delim = ','
		case ";":
			delim = ';'
		case "tab":
			delim = '\t'
		}
	}
	return loader.LoadCSV(path, delim)
}

// qcConfig resolves engine thresholds from config plus the
// --reference-date override.
func qcConfig(referenceDate string) (qc.Config, error) {
	engineCfg := qc.DefaultConfig()
	if cfg != nil {
		c, err := cfg.QC()
		if err != nil {
			return engineCfg, err
		}
		engineCfg = c
	}
	if referenceDate != "" {
		t, err := time.Parse("2006-01-02", referenceDate)
		if err != nil {
			return engineCfg, fmt.Errorf("parse --reference-date: %w", err)
		}
		engineCfg.ReferenceDate = t
	}
	return engineCfg, nil
}
