package query_test

import (
	"fmt"
	"log"

	"github.com/aretw0/poaf/pkg/annotation"
	"github.com/aretw0/poaf/pkg/ontology"
	"github.com/aretw0/poaf/pkg/query"
)

func Example() {
	ont := ontology.ParseString("[Term]\nid: PR:000001\nname: alpha protein\n")
	ann, err := annotation.ParseString("PRO_ID\tObject_term\nPR:000001\tbinds\n")
	if err != nil {
		log.Fatal(err)
	}

	svc := query.New(ont, ann, query.Metadata{})

	for _, hit := range svc.SearchOntology("ALPHA") {
		fmt.Printf("%s %s (matched %s)\n", hit.ID, hit.Name, hit.MatchedField)
	}

	recs, err := svc.GetAnnotationsForKey("PR:000001")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("line %d: %s\n", recs[0].LineNumber, recs[0].Fields["Object_term"])

	// Output:
	// PR:000001 alpha protein (matched name)
	// line 2: binds
}

func ExamplePage() {
	shown, remaining := query.Page([]string{"a", "b", "c"}, 2)
	fmt.Println(shown, remaining)
	// Output: [a b] 1
}
