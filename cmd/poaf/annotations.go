package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/poaf/pkg/annotation"
	"github.com/aretw0/poaf/pkg/core"
	"github.com/aretw0/poaf/pkg/query"
)

var (
	annotationsJSON    bool
	annotationsLimit   int
	annotationsColumn  string
	annotationsColumns []string
)

var annotationsCmd = &cobra.Command{
	Use:   "annotations [key]",
	Short: "List the annotation records of one protein",
	Long: `List every record whose identifier column (PRO_ID unless configured)
equals key exactly. Use --by to filter on another column.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env, svc := mustLoad(context.Background())
		store := svc.Annotations()

		var (
			recs []annotation.Record
			err  error
		)
		if annotationsColumn != "" {
			recs, err = store.GetByKey(annotationsColumn, args[0])
		} else {
			recs, err = svc.GetAnnotationsForKey(args[0])
		}
		if errors.Is(err, core.ErrNotFound) {
			stdoutDisplay(env, 0).warning("No annotations found for this protein")
			os.Exit(1)
		}
		if err != nil {
			fatal("Error reading annotations", err)
		}

		columns, err := selectColumns(store.Header().Names(), annotationsColumns)
		if err != nil {
			fatal("Error selecting columns", err)
		}

		if annotationsJSON {
			shown, _ := query.Page(recs, annotationsLimit)
			if len(annotationsColumns) > 0 {
				shown = projectRecords(shown, columns)
			}
			if err := writeJSON(os.Stdout, shown); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		d := stdoutDisplay(env, annotationsLimit)
		if len(annotationsColumns) == 0 {
			d.annotations(recs, store.AnnotationColumn())
			return
		}
		lines := make([]int, len(recs))
		rows := make([]map[string]string, len(recs))
		for i, r := range recs {
			lines[i], rows[i] = r.LineNumber, r.Fields
		}
		if err := d.table(lines, rows, columns); err != nil {
			fatal("Error rendering table", err)
		}
	},
}

func projectRecords(recs []annotation.Record, columns []string) []annotation.Record {
	rows := make([]map[string]string, len(recs))
	for i, r := range recs {
		rows[i] = r.Fields
	}
	rows = project(rows, columns)
	out := make([]annotation.Record, len(recs))
	for i, r := range recs {
		r.Fields = rows[i]
		out[i] = r
	}
	return out
}

func init() {
	rootCmd.AddCommand(annotationsCmd)
	annotationsCmd.Flags().BoolVar(&annotationsJSON, "json", false, "Output in JSON format")
	annotationsCmd.Flags().IntVarP(&annotationsLimit, "limit", "n", 0, "Maximum records to show (0: configured display limit; JSON: all)")
	annotationsCmd.Flags().StringVar(&annotationsColumn, "by", "", "Column to match the key against (default: identifier column)")
	annotationsCmd.Flags().StringSliceVar(&annotationsColumns, "columns", nil, "Glob patterns of columns to show, e.g. 'Ontology_*'")
}
