package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oukeidos/wcgen/internal/stopwords"
)

func newStopwordsCmd() *cobra.Command {
	var count bool
	cmd := &cobra.Command{
		Use:   "stopwords",
		Short: "List the built-in excluded words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := stopwords.Standard().Words()
			if count {
				fmt.Fprintln(cmd.OutOrStdout(), len(words))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, "\n"))
			return nil
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().BoolVar(&count, "count", false, "Print only the number of words")
	return cmd
}
