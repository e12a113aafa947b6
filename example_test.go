package poaf_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/poaf"
	"github.com/aretw0/poaf/pkg/core"
)

const exampleOBO = `[Term]
id: PR:000000001
name: protein
def: "An amino acid chain."

[Term]
id: PR:000000650
name: kinase
synonym: "PK" EXACT []
`

const examplePAF = "PRO_ID\tObject_term\tRelation\n" +
	"PR:000000650\tprotein kinase activity\tenables\n" +
	"PR:000000650\tnucleus\tlocated_in\n"

// Example_basic demonstrates loading a data directory that already holds
// both source files, then querying it.
func Example_basic() {
	// Create a temporary data directory for the example
	tmpDir, err := os.MkdirTemp("", "poaf-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	dataDir := filepath.Join(tmpDir, poaf.DefaultDataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatal(err)
	}
	_ = os.WriteFile(filepath.Join(dataDir, "protein_ontology.obo"), []byte(exampleOBO), 0644)
	_ = os.WriteFile(filepath.Join(dataDir, "protein_annotations.paf"), []byte(examplePAF), 0644)

	// Load never touches the network.
	svc, err := poaf.Load(context.Background(), dataDir)
	if err != nil {
		log.Fatal(err)
	}

	// 1. Search terms (id, then name, then def)
	for _, hit := range svc.SearchOntology("PROTEIN") {
		fmt.Printf("%s %s (matched %s)\n", hit.ID, hit.Name, hit.MatchedField)
	}

	// 2. Annotations for one protein
	rows, err := svc.GetAnnotationsForKey("PR:000000650")
	if err != nil {
		log.Fatal(err)
	}
	for _, row := range rows {
		fmt.Printf("line %d: %s\n", row.LineNumber, row.GetOr("Object_term", "N/A"))
	}
	// Output:
	// PR:000000001 protein (matched name)
	// line 2: protein kinase activity
	// line 3: nucleus
}

// ExampleLoad demonstrates querying text that is already in memory.
func ExampleLoad() {
	svc, err := poaf.Load(context.Background(), "", poaf.WithSource(core.StaticSource{
		Ontology:   exampleOBO,
		Annotation: examplePAF,
	}))
	if err != nil {
		log.Fatal(err)
	}

	term, err := svc.GetTerm("PR:000000650")
	if err != nil {
		log.Fatal(err)
	}
	syn, _ := term.Get("synonym")
	fmt.Println(term.Name(), syn.First())

	for _, hit := range svc.SearchAnnotations("located") {
		fmt.Println(hit.Identifier(), hit.MatchedColumn)
	}
	// Output:
	// kinase "PK" EXACT []
	// PR:000000650 Relation
}
