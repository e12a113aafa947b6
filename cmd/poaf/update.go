package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aretw0/poaf"
)

var (
	updateForce bool
	updateJSON  bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download missing or changed data files",
	Long: `Compare the local OBO and PAF files against the hashes recorded in
versions.json and download the ones that are missing or changed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := resolveEnv()
		if err != nil {
			fatal("Error resolving data directory", err)
		}

		if updateJSON {
			opts := append(env.opts, poaf.WithForceUpdate(updateForce))
			results, err := poaf.Update(context.Background(), env.dataDir, opts...)
			if err != nil {
				fatal("Error updating data files", err)
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(results); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if err := runUpdate(context.Background(), env, updateForce); err != nil {
			fatal("Error updating data files", err)
		}
	},
}

// runUpdate refreshes the data directory behind a spinner and reports
// what happened to each source.
func runUpdate(ctx context.Context, env *env, force bool) error {
	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Checking data files in %s...", env.dataDir))

	opts := append(env.opts, poaf.WithForceUpdate(force))
	results, err := poaf.Update(ctx, env.dataDir, opts...)
	if err != nil {
		spinner.Fail("Failed to update data files")
		return err
	}
	spinner.Success("Data files are up to date")

	newDisplay(os.Stdout, env.limit()).updateResults(results)
	return nil
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false, "Download even when the local copy looks current")
	updateCmd.Flags().BoolVar(&updateJSON, "json", false, "Output in JSON format")
}
