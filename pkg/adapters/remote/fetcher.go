// Package remote refreshes the local data directory from the upstream
// ontology and annotation downloads.
package remote

import (
	"context"
	"fmt"

	getter "github.com/hashicorp/go-getter"
)

// Default upstream locations.
const (
	DefaultOntologyURL   = "http://purl.obolibrary.org/obo/pr.obo"
	DefaultAnnotationURL = "https://proconsortium.org/download/current/PAF.txt"
)

// Fetcher downloads src into the file dst.
type Fetcher interface {
	Fetch(ctx context.Context, src, dst string) error
}

// GetterFetcher downloads single files with go-getter, so any source it
// detects (http, https, s3, gcs, local paths) can back a data directory.
type GetterFetcher struct {
	// Pwd resolves relative local sources. Empty means the process cwd.
	Pwd string
}

// Fetch implements Fetcher.
func (f GetterFetcher) Fetch(ctx context.Context, src, dst string) error {
	client := &getter.Client{
		Ctx:     ctx,
		Src:     src,
		Dst:     dst,
		Pwd:     f.Pwd,
		Mode:    getter.ClientModeFile,
		Getters: getter.Getters,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", src, err)
	}
	return nil
}

var _ Fetcher = GetterFetcher{}
