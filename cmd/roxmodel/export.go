package main

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/roxmodel/export"
)

func exportCmd(a *app) *cobra.Command {
	var format, profile string

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a saved asset as RDF on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			p, err := export.ParseProfile(profile)
			if err != nil {
				return err
			}

			eng, err := a.engine()
			if err != nil {
				return err
			}
			sess, err := eng.OpenSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return sess.Export(cmd.OutOrStdout(), export.Options{Format: f, Profile: p})
		},
	}

	cmd.Flags().StringVar(&format, "format", "turtle", "Output format (turtle, ntriples, jsonld)")
	cmd.Flags().StringVar(&profile, "profile", "minimal", "Export profile (minimal, full)")
	return cmd
}
