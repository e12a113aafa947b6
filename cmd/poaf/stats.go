package main

import (
	"context"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/poaf"
)

var (
	statsJSON  bool
	statsState bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show counts, parse diagnostics and last update times",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env, svc := mustLoad(context.Background())

		if statsState {
			src := poaf.NewSource(env.dataDir, env.opts...)
			if err := writeJSON(os.Stdout, componentStates(svc, src)); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if statsJSON {
			if err := writeJSON(os.Stdout, svc.Stats()); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}
		stdoutDisplay(env, 0).stats(svc.Stats())
	},
}

type inspectable interface {
	introspection.Introspectable
	introspection.Component
}

// componentStates keys each component's State by its ComponentType.
func componentStates(components ...inspectable) map[string]any {
	states := make(map[string]any, len(components))
	for _, c := range components {
		states[c.ComponentType()] = c.State()
	}
	return states
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output in JSON format")
	statsCmd.Flags().BoolVar(&statsState, "state", false, "Output the internal state of each component as JSON")
}
