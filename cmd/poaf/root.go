package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	offline    bool
	dataDir    string
	updateOnly bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "poaf",
	Short: "Protein Ontology and Annotation Framework",
	Long: `poaf keeps a local copy of the Protein Ontology (OBO) and the Protein
Annotation File (PAF) in step with their upstream sources, loads both into
memory and answers term and annotation queries.

Without a subcommand it refreshes the data files and starts the interactive shell.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env, err := resolveEnv()
		if err != nil {
			fatal("Error resolving data directory", err)
		}

		pterm.DefaultHeader.WithFullWidth().Println("Protein Ontology and Annotation Framework (POAF)")
		if err := runUpdate(ctx, env, false); err != nil {
			fatal("Setup failed", err)
		}
		if updateOnly {
			pterm.Success.Println("Data update complete.")
			return
		}

		if err := runShell(ctx, env); err != nil {
			fatal("Error", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Never download; use the files already on disk")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory (default: .PRO in the project root)")
	rootCmd.Flags().BoolVar(&updateOnly, "update-only", false, "Only update data files without starting interactive mode")
}
