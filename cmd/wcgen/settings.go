package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oukeidos/wcgen/internal/settings"
)

func newSettingsCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or reset the desktop app settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, settings.NewStore(path))
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(groupUsageTemplate)
	cmd.PersistentFlags().StringVar(&path, "file", "", "Settings file (default ~/"+settings.FileName+")")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, settings.NewStore(path))
		},
		SilenceUsage: true,
	}
	show.SetUsageTemplate(subcommandUsageTemplate)

	var yes bool
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := settings.NewStore(path)
			ok, err := newConfirmer().Confirm(fmt.Sprintf("Reset settings in %s?", store.Path()), "--yes", yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := store.Save(settings.Defaults()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings reset: %s\n", store.Path())
			return nil
		},
		SilenceUsage: true,
	}
	reset.SetUsageTemplate(subcommandUsageTemplate)
	reset.Flags().BoolVarP(&yes, "yes", "y", false, "Reset without asking")

	cmd.AddCommand(show, reset)
	return cmd
}

func showSettings(cmd *cobra.Command, store *settings.Store) error {
	s, err := store.Read()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	mode := "light"
	if s.DarkMode {
		mode = "dark"
	}
	words := 0
	if strings.TrimSpace(s.ExclusionList) != "" {
		words = len(strings.Split(strings.TrimSpace(s.ExclusionList), "\n"))
	}
	fmt.Fprintf(out, "File:       %s\n", store.Path())
	fmt.Fprintf(out, "Theme:      %s\n", mode)
	fmt.Fprintf(out, "Exclusions: %d lines\n", words)
	if words > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.TrimSpace(s.ExclusionList))
	}
	return nil
}
