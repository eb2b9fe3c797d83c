package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func assetsCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List saved assets, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			infos, err := eng.ListSavedAssets(pattern)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(infos) == 0 {
				fmt.Fprintln(out, "No saved assets.")
				return nil
			}
			for _, info := range infos {
				fmt.Fprintf(out, "%-28s %-18s %s  %s\n",
					info.Name, info.Kind, info.SavedAt.Format(time.RFC3339), info.File)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "Glob over asset files relative to the store (default **/*.json)")
	return cmd
}
