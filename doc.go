// Package poaf is the Composition Root for the protein knowledge tool.
//
// It connects the parsing and query core (ontology, annotation and query
// packages) with the infrastructure adapters (a local data directory and
// a remote downloader) using the Hexagonal Architecture pattern.
//
// Two sources are supported:
//
//   - The Protein Ontology in OBO format: "[Term]" stanzas of key: value
//     lines, indexed by id and searchable by field.
//   - The Protein Annotation File (PAF): tab-separated records under a
//     header line, searchable across every column and filterable by key.
//
// Usage:
//
//	// Refresh .PRO from the network (when stale) and load a snapshot
//	svc, err := poaf.New(ctx, ".PRO",
//		poaf.WithLogger(logger),
//	)
//
//	// Case-insensitive substring search over id, then name, then def
//	hits := svc.SearchOntology("kinase")
//
//	// Every annotation row for one protein
//	rows, err := svc.GetAnnotationsForKey("PR:000000650")
//
// Callers that already hold the file contents can skip the data directory:
//
//	svc, err := poaf.Load(ctx, "", poaf.WithSource(core.StaticSource{
//		Ontology:   oboText,
//		Annotation: pafText,
//	}))
package poaf
