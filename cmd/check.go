package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/ehrqc-cli/internal/exporter"
	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
	"github.com/KaramelBytes/ehrqc-cli/internal/run"
)

var (
	checkOutputDir  string
	checkFormat     string
	checkDelimiter  string
	checkSheet      string
	checkRefDate    string
	checkShowTables bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the full quality report over a CSV/TSV/XLSX extract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		ds, err := loadDataset(path, checkDelimiter, checkSheet)
		if err != nil {
			return err
		}
		engineCfg, err := qcConfig(checkRefDate)
		if err != nil {
			return err
		}
		rep := qc.GenerateSummaryReport(ds, engineCfg)

		fmt.Print(exporter.Render(rep))
		if checkShowTables && len(rep.Issues) > 0 {
			fmt.Println()
			fmt.Print(exporter.RenderIssues(rep.Issues))
		}

		if checkOutputDir == "" {
			return nil
		}
		switch checkFormat {
		case "csv":
			if err := exporter.WriteSummaryCSV(filepath.Join(checkOutputDir, "ehr_qc_summary.csv"), rep); err != nil {
				return err
			}
			if _, err := exporter.WriteIssueCSVs(checkOutputDir, rep.Issues); err != nil {
				return err
			}
		case "xlsx":
			if err := exporter.WriteWorkbook(filepath.Join(checkOutputDir, "ehr_qc_report.xlsx"), rep); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported --format: %s (use csv or xlsx)", checkFormat)
		}
		meta := run.New(path, rep)
		if err := meta.Save(checkOutputDir); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote report to %s (run %s)\n", checkOutputDir, meta.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkOutputDir, "output-dir", "o", "", "directory to write the summary and per-issue tables")
	checkCmd.Flags().StringVar(&checkFormat, "format", "csv", "output format: csv | xlsx")
	checkCmd.Flags().StringVar(&checkDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	checkCmd.Flags().StringVar(&checkSheet, "sheet", "", "XLSX: sheet name (default first sheet)")
	checkCmd.Flags().StringVar(&checkRefDate, "reference-date", "", "age baseline as YYYY-MM-DD (default today)")
	checkCmd.Flags().BoolVar(&checkShowTables, "tables", false, "print full issue detail tables")
}
