package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/roxmodel/schema"
	"github.com/c360studio/roxmodel/vocabulary"
)

func describeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <type-id>",
		Short: "Show one type in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			def, err := eng.DescribeType(schema.ID(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", def.ID, def.Label)
			fmt.Fprintf(out, "Vocabulary: %s\n", def.Vocabulary)
			if def.IRI != "" {
				fmt.Fprintf(out, "IRI: %s\n", def.IRI)
			}
			if def.NodeKind != "" {
				fmt.Fprintf(out, "Node: %s", def.NodeKind)
				if def.NodeID != 0 {
					fmt.Fprintf(out, " %d", def.NodeID)
				}
				fmt.Fprintln(out)
			}
			if path := eng.Registry().Path(def.ID); len(path) > 1 {
				fmt.Fprintf(out, "Path: %s\n", joinIDs(path, " > "))
			}
			if len(def.Parents) > 0 {
				fmt.Fprintf(out, "Parents: %s\n", joinIDs(def.Parents, ", "))
			}
			if len(def.Children) > 0 {
				fmt.Fprintf(out, "Children: %s\n", joinIDs(def.Children, ", "))
			}

			if len(def.Properties) == 0 {
				return nil
			}
			fmt.Fprintln(out, "\nProperties:")
			for _, p := range def.Properties {
				fmt.Fprintf(out, "  %-24s %s\n", p.Name, propertySummary(p))
			}
			return nil
		},
	}
}

func propertySummary(p schema.PropertyDefinition) string {
	kind := string(p.Kind)
	if p.Kind == vocabulary.KindReference && p.RefType != "" {
		kind = fmt.Sprintf("ref(%s)", p.RefType)
	}
	if p.Cardinality == schema.CardinalityMultiple {
		kind += ", multiple"
	}
	if p.Required {
		kind += ", required"
	}
	return kind
}

func joinIDs(ids []schema.ID, sep string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, string(id))
	}
	return strings.Join(parts, sep)
}
