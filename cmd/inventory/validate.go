package main

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that inventory paths are unique and nested under their parents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Service.Validate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
