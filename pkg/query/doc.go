// Package query is the facade callers use to query both stores.
//
// A Service composes an ontology.Store and an annotation.Store loaded from
// the same snapshot and delegates to them. It owns no parsing or matching
// logic. Stores always return complete result sequences; truncating them
// for display is done with Page by the presentation layer.
//
// Reloading means building new stores and a new Service. A Service is never
// mutated after construction and may be shared between goroutines.
package query
