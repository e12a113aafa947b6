package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/poaf/pkg/core"
)

var termJSON bool

var termCmd = &cobra.Command{
	Use:   "term [id]",
	Short: "Show every field of one ontology term",
	Long:  `Look up a term by its exact, case-sensitive id (e.g. PR:000000650).`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env, svc := mustLoad(context.Background())

		term, err := svc.GetTerm(args[0])
		if errors.Is(err, core.ErrNotFound) {
			stdoutDisplay(env, 0).warning("Term not found")
			os.Exit(1)
		}
		if err != nil {
			fatal("Error reading term", err)
		}

		if termJSON {
			fields := make(map[string][]string, len(term.Fields))
			for name, v := range term.Fields {
				fields[name] = v.Values()
			}
			if err := writeJSON(os.Stdout, map[string]any{"id": term.ID, "fields": fields}); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}
		stdoutDisplay(env, 0).term(term)
	},
}

func init() {
	rootCmd.AddCommand(termCmd)
	termCmd.Flags().BoolVar(&termJSON, "json", false, "Output in JSON format")
}
