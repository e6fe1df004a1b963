package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Check that every referenced image is served by the asset host",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := application.Service.CheckAssets(cmd.Context())
		if err != nil {
			return err
		}

		for _, image := range report.Missing {
			fmt.Fprintln(cmd.OutOrStdout(), image)
		}
		if !report.OK() {
			return fmt.Errorf("%d of %d images missing", len(report.Missing), report.Checked)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}
