// Package main provides the roxmodel binary entry point.
// Roxmodel describes robotics digital assets with controlled
// vocabularies and validates every description before it persists.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "roxmodel"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "roxmodel",
		Short: "Vocabulary-driven descriptions of robotics assets",
		Long: `Roxmodel describes robotics digital assets with controlled
vocabularies. It merges a DCAT catalog vocabulary with the OPC UA
robotics companion model into one type registry, validates asset
descriptions against it, and exports them as RDF.

Assets are stored as JSON files under the configured storage
directory. Configuration layers a user config file, a project
roxmodel.yaml, and flags.`,
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		typesCmd(a),
		describeCmd(a),
		assetsCmd(a),
		checkCmd(a),
		exportCmd(a),
		deleteCmd(a),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}
