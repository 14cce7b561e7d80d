package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
)

var (
	compDelimiter string
	compSheet     string
)

var completenessCmd = &cobra.Command{
	Use:   "completeness <file>",
	Short: "Report per-field missingness for an extract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0], compDelimiter, compSheet)
		if err != nil {
			return err
		}
		rows := qc.AnalyzeCompleteness(ds)
		fmt.Printf("Records: %d\n", ds.Len())
		for _, r := range rows {
			fmt.Printf("- %s: %d missing (%.2f%%), %d present\n",
				r.Field, r.MissingCount, r.MissingPercent, r.NonMissingCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completenessCmd)
	completenessCmd.Flags().StringVar(&compDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	completenessCmd.Flags().StringVar(&compSheet, "sheet", "", "XLSX: sheet name (default first sheet)")
}
