package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/ehrqc-cli/internal/exporter"
	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
)

var (
	consDelimiter string
	consSheet     string
	consRefDate   string
)

var consistencyCmd = &cobra.Command{
	Use:   "consistency <file>",
	Short: "Run the cross-field logical checks over an extract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0], consDelimiter, consSheet)
		if err != nil {
			return err
		}
		engineCfg, err := qcConfig(consRefDate)
		if err != nil {
			return err
		}
		issues := qc.AnalyzeConsistency(ds, engineCfg)
		if len(issues) == 0 {
			fmt.Println("✓ No consistency issues found")
			return nil
		}
		fmt.Print(exporter.RenderIssues(issues))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(consistencyCmd)
	consistencyCmd.Flags().StringVar(&consDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	consistencyCmd.Flags().StringVar(&consSheet, "sheet", "", "XLSX: sheet name (default first sheet)")
	consistencyCmd.Flags().StringVar(&consRefDate, "reference-date", "", "age baseline as YYYY-MM-DD (default today)")
}
