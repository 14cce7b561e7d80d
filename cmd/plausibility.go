package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/ehrqc-cli/internal/exporter"
	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
)

var (
	plausDelimiter string
	plausSheet     string
)

var plausibilityCmd = &cobra.Command{
	Use:   "plausibility <file>",
	Short: "Check numeric fields against physiological ranges",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0], plausDelimiter, plausSheet)
		if err != nil {
			return err
		}
		engineCfg, err := qcConfig("")
		if err != nil {
			return err
		}
		issues := qc.DetectPotentialErrors(ds, engineCfg)
		if len(issues) == 0 {
			fmt.Println("✓ No plausibility issues found")
			return nil
		}
		fmt.Print(exporter.RenderIssues(issues))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plausibilityCmd)
	plausibilityCmd.Flags().StringVar(&plausDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	plausibilityCmd.Flags().StringVar(&plausSheet, "sheet", "", "XLSX: sheet name (default first sheet)")
}
