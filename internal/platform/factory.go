package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/poaf/pkg/adapters/fs"
	"github.com/aretw0/poaf/pkg/adapters/remote"
	"github.com/aretw0/poaf/pkg/annotation"
	"github.com/aretw0/poaf/pkg/core"
	"github.com/aretw0/poaf/pkg/ontology"
	"github.com/aretw0/poaf/pkg/query"
)

// New refreshes the data directory and loads a query service from it.
//
//	svc, err := poaf.New(ctx, ".PRO", poaf.WithOffline(true))
//
// The refresh is skipped when a custom source is injected or WithSkipUpdate is set.
func New(ctx context.Context, dataDir string, opts ...Option) (*query.Service, error) {
	o := buildOptions(opts)
	if o.source == nil && !o.skipUpdate {
		if _, err := Update(ctx, dataDir, opts...); err != nil {
			return nil, err
		}
	}
	return Load(ctx, dataDir, opts...)
}

// NewSource builds the data directory adapter the options describe.
func NewSource(dataDir string, opts ...Option) *fs.Source {
	return newSource(dataDir, buildOptions(opts))
}

func newSource(dataDir string, o *options) *fs.Source {
	return fs.NewSource(fs.Config{
		Path:           dataDir,
		OntologyFile:   o.ontologyFile,
		AnnotationFile: o.annotationFile,
		MustExist:      o.mustExist,
		Logger:         o.logger,
	})
}

// Update downloads missing or changed source files into dataDir.
func Update(ctx context.Context, dataDir string, opts ...Option) ([]remote.Result, error) {
	o := buildOptions(opts)
	updater := remote.NewUpdater(newSource(dataDir, o), remote.Config{
		OntologyURL:   o.ontologyURL,
		AnnotationURL: o.annotationURL,
		Fetcher:       o.fetcher,
		Logger:        o.logger,
	})
	return updater.Update(ctx, remote.UpdateOptions{Force: o.force, Offline: o.offline})
}

// Load parses both sources into a query service without touching the network.
func Load(ctx context.Context, dataDir string, opts ...Option) (*query.Service, error) {
	o := buildOptions(opts)

	var (
		src  core.Source = o.source
		meta query.Metadata
	)
	if src == nil {
		dir := newSource(dataDir, o)
		src = dir
		m, err := describe(dir)
		if err != nil {
			return nil, err
		}
		meta = m
	}

	ontText, err := src.OntologyText(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ontology: %w", err)
	}
	ont := ontology.ParseString(ontText,
		ontology.WithLogger(o.logger),
		ontology.WithEmptyQueryPolicy(o.emptyQuery),
	)

	annText, err := src.AnnotationText(ctx)
	if err != nil {
		return nil, fmt.Errorf("load annotations: %w", err)
	}
	ann, err := annotation.ParseString(annText,
		annotation.WithLogger(o.logger),
		annotation.WithEmptyQueryPolicy(o.emptyQuery),
		annotation.WithIDColumn(o.idColumn),
		annotation.WithAnnotationColumn(o.annotationColumn),
	)
	if err != nil {
		return nil, fmt.Errorf("load annotations: %w", err)
	}

	if o.logger != nil {
		o.logger.Info("snapshot loaded", "terms", ont.Len(), "records", ann.Len())
	}
	return query.New(ont, ann, meta), nil
}

func describe(dir *fs.Source) (query.Metadata, error) {
	manifest, err := dir.Manifest()
	if err != nil {
		return query.Metadata{}, err
	}
	info := func(kind core.SourceKind) query.SourceInfo {
		return query.SourceInfo{
			Location:    dir.PathFor(kind),
			Hash:        manifest.Hash(kind),
			LastUpdated: manifest.LastUpdated(kind),
		}
	}
	return query.Metadata{
		DataDir:    dir.Path,
		Ontology:   info(core.SourceOntology),
		Annotation: info(core.SourceAnnotation),
	}, nil
}
