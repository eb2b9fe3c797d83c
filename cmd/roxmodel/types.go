package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/roxmodel/engine"
	"github.com/c360studio/roxmodel/schema"
)

func typesCmd(a *app) *cobra.Command {
	var vocab, search string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the registered asset types",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			var defs []*schema.TypeDefinition
			if search != "" {
				defs = eng.SearchTypes(search)
				if vocab != "" {
					defs = filterVocabulary(defs, vocab)
				}
			} else {
				defs = eng.ListTypes(engine.TypeFilter{Vocabulary: vocab})
			}

			out := cmd.OutOrStdout()
			if len(defs) == 0 {
				fmt.Fprintln(out, "No types matched.")
				return nil
			}
			for _, def := range defs {
				fmt.Fprintf(out, "%-36s %s\n", def.ID, def.Label)
			}
			fmt.Fprintf(out, "\n%d types\n", len(defs))
			return nil
		},
	}

	cmd.Flags().StringVar(&vocab, "vocabulary", "", "Filter by vocabulary prefix (dcat, opcua)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive search over id, label, and hierarchy path")
	return cmd
}

func filterVocabulary(defs []*schema.TypeDefinition, vocab string) []*schema.TypeDefinition {
	out := make([]*schema.TypeDefinition, 0, len(defs))
	for _, def := range defs {
		if def.Vocabulary == vocab {
			out = append(out, def)
		}
	}
	return out
}
