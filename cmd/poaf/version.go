package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/poaf"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of poaf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("poaf version %s\n", strings.TrimSpace(poaf.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
