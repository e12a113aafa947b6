package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/poaf/pkg/annotation"
	"github.com/aretw0/poaf/pkg/query"
)

var (
	searchJSON    bool
	searchLimit   int
	searchFields  []string
	searchColumns []string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search ontology terms or annotation records",
}

var searchTermsCmd = &cobra.Command{
	Use:   "terms [query]",
	Short: "Case-insensitive substring search over ontology terms",
	Long: `Search ontology terms. Fields are tried in the given order (default
id, name, def) and each term is reported once, tagged with the first field
that matched.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env, svc := mustLoad(context.Background())
		q := strings.TrimSpace(args[0])
		hits := svc.SearchOntology(q, searchFields...)

		if searchJSON {
			shown, _ := query.Page(hits, searchLimit)
			if err := writeJSON(os.Stdout, shown); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}
		stdoutDisplay(env, searchLimit).termHits(q, hits)
	},
}

var searchAnnotationsCmd = &cobra.Command{
	Use:   "annotations [query]",
	Short: "Case-insensitive substring search over every annotation column",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env, svc := mustLoad(context.Background())
		q := strings.TrimSpace(args[0])
		hits := svc.SearchAnnotations(q)

		columns, err := selectColumns(svc.Annotations().Header().Names(), searchColumns)
		if err != nil {
			fatal("Error selecting columns", err)
		}

		if searchJSON {
			shown, _ := query.Page(hits, searchLimit)
			if len(searchColumns) > 0 {
				shown = projectHits(shown, columns)
			}
			if err := writeJSON(os.Stdout, shown); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		d := stdoutDisplay(env, searchLimit)
		if len(searchColumns) == 0 {
			d.annotationHits(q, hits)
			return
		}
		lines, rows := hitRows(hits)
		if err := d.table(lines, rows, columns); err != nil {
			fatal("Error rendering table", err)
		}
	},
}

func projectHits(hits []annotation.SearchHit, columns []string) []annotation.SearchHit {
	lines, rows := hitRows(hits)
	rows = project(rows, columns)
	out := make([]annotation.SearchHit, len(hits))
	for i := range hits {
		out[i] = hits[i]
		out[i].LineNumber = lines[i]
		out[i].Fields = rows[i]
	}
	return out
}

func hitRows(hits []annotation.SearchHit) ([]int, []map[string]string) {
	lines := make([]int, len(hits))
	rows := make([]map[string]string, len(hits))
	for i, h := range hits {
		lines[i] = h.LineNumber
		rows[i] = h.Fields
	}
	return lines, rows
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchTermsCmd, searchAnnotationsCmd)

	searchCmd.PersistentFlags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	searchCmd.PersistentFlags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum results to show (0: configured display limit; JSON: all)")
	searchTermsCmd.Flags().StringSliceVar(&searchFields, "fields", nil, "Fields to search, in priority order (default id,name,def)")
	searchAnnotationsCmd.Flags().StringSliceVar(&searchColumns, "columns", nil, "Glob patterns of columns to show, e.g. 'Ontology_*'")
}
