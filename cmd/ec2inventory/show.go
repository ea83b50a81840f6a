package main

import (
	"github.com/spf13/cobra"

	"ec2inventory/internal/report"
)

func newShowCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print an exported inventory workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := report.ReadReport(args[0])
			if err != nil {
				return err
			}
			return report.PrintRecords(cmd.OutOrStdout(), args[0], records, report.ParseOutputFormat(outputFormat))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "Output format: table or json")

	return cmd
}
