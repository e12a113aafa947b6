package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/aretw0/poaf"
	"github.com/aretw0/poaf/pkg/query"
)

// env is what every command needs to reach the data: where it lives and
// how to load it.
type env struct {
	root    string
	dataDir string
	config  poaf.Config
	opts    []poaf.Option
}

// resolveEnv finds the project root from the working directory, reads
// poaf.yaml when present and applies the persistent flags on top.
func resolveEnv() (*env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	root, err := poaf.FindRoot(wd)
	if err != nil {
		root = wd
	}

	cfg, err := poaf.LoadConfig(filepath.Join(root, poaf.ConfigFileName))
	if err != nil {
		return nil, err
	}

	dir := dataDir
	switch {
	case dir != "":
	case cfg.DataDir != "" && filepath.IsAbs(cfg.DataDir):
		dir = cfg.DataDir
	case cfg.DataDir != "":
		dir = filepath.Join(root, cfg.DataDir)
	default:
		dir = filepath.Join(root, poaf.DefaultDataDir)
	}

	opts := append(cfg.Options(), poaf.WithLogger(slog.Default()))
	if offline {
		opts = append(opts, poaf.WithOffline(true))
	}
	opts = slices.Clip(opts)

	return &env{root: root, dataDir: dir, config: cfg, opts: opts}, nil
}

// limit is the number of results shown before "... and N more".
func (e *env) limit() int {
	if e.config.DisplayLimit > 0 {
		return e.config.DisplayLimit
	}
	return query.DefaultLimit
}

// load parses the data directory as it is on disk.
func (e *env) load(ctx context.Context) (*query.Service, error) {
	return poaf.Load(ctx, e.dataDir, e.opts...)
}
