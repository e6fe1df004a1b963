package main

import (
	"github.com/spf13/cobra"

	"trailers/inventory/internal/codec"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the inventory tree in its canonical form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := exportFormat
		if name == "" {
			name = application.Config.Export.Format
		}

		format, err := codec.ParseFormat(name)
		if err != nil {
			return err
		}
		return application.Service.Export(cmd.OutOrStdout(), format)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: json or yaml (default export.format)")
	rootCmd.AddCommand(exportCmd)
}
