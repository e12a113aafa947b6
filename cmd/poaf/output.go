package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/poaf/pkg/query"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// mustLoad loads the data directory or exits with a hint.
func mustLoad(ctx context.Context) (*env, *query.Service) {
	env, err := resolveEnv()
	if err != nil {
		fatal("Error resolving data directory", err)
	}
	svc, err := env.load(ctx)
	if err != nil {
		fatal("Error loading data (run 'poaf update' first?)", err)
	}
	return env, svc
}

func stdoutDisplay(env *env, limit int) *display {
	if limit == 0 {
		limit = env.limit()
	}
	return newDisplay(os.Stdout, limit)
}
