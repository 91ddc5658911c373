package main

import (
	"github.com/bocanonline/demo2d"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Rotate a single white square with the left and right arrow keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindowed(demo2d.TemplateAppConfig(), demo2d.VariantTemplate)
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
