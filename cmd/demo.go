package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
	"github.com/KaramelBytes/ehrqc-cli/internal/exporter"
	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
	"github.com/KaramelBytes/ehrqc-cli/internal/run"
)

var (
	demoOutputDir string
	demoRefDate   string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the full pipeline over the bundled demonstration extract",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds := dataset.Demo()
		engineCfg, err := qcConfig(demoRefDate)
		if err != nil {
			return err
		}
		rep := qc.GenerateSummaryReport(ds, engineCfg)

		fmt.Print(exporter.Render(rep))
		fmt.Println()
		fmt.Print(exporter.RenderIssues(rep.Issues))

		if demoOutputDir == "" && cfg != nil {
			demoOutputDir = cfg.OutputDir
		}
		if demoOutputDir == "" {
			return nil
		}
		if err := exporter.WriteDatasetCSV(filepath.Join(demoOutputDir, "demo_ehr_data.csv"), ds); err != nil {
			return err
		}
		if err := exporter.WriteSummaryCSV(filepath.Join(demoOutputDir, "ehr_qc_summary.csv"), rep); err != nil {
			return err
		}
		if _, err := exporter.WriteIssueCSVs(demoOutputDir, rep.Issues); err != nil {
			return err
		}
		meta := run.New("demo", rep)
		if err := meta.Save(demoOutputDir); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote demo data and report to %s\n", demoOutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVarP(&demoOutputDir, "output-dir", "o", "", "directory to write the demo CSV and report tables")
	demoCmd.Flags().StringVar(&demoRefDate, "reference-date", "", "age baseline as YYYY-MM-DD (default today)")
}
