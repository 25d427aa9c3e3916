package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oukeidos/wcgen/internal/licenses"
)

func newLicensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "licenses",
		Short:        "Show third-party license notices",
		Args:         cobra.NoArgs,
		RunE:         runLicenses,
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runLicenses(cmd *cobra.Command, _ []string) error {
	text := licenses.NoticesText()
	if text == "" {
		return fmt.Errorf("embedded THIRD_PARTY_NOTICES is empty")
	}
	_, err := cmd.OutOrStdout().Write([]byte(text))
	return err
}
