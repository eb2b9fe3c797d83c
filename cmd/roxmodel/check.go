package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <name>",
		Short: "Load a saved asset and report violations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			sess, err := eng.OpenSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := sess.Validate().Err(); err != nil {
				return fmt.Errorf("check %s: %w", sess.Name(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d nodes, no violations\n", sess.Name(), sess.Len())
			return nil
		},
	}
}
