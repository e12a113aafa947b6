// Package lifecycle exposes data directory changes as a lifecycle.Source so
// long-running consumers (the interactive shell) can treat reloads like any
// other lifecycle event.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/poaf/pkg/core"
)

type changeSource struct {
	events <-chan core.Event
	kinds  map[core.SourceKind]bool
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits source change events.
// When kinds is non-empty only events for those sources are forwarded.
func NewSource(events <-chan core.Event, kinds ...core.SourceKind) lifecycle.Source {
	s := &changeSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
	if len(kinds) > 0 {
		s.kinds = make(map[core.SourceKind]bool, len(kinds))
		for _, k := range kinds {
			s.kinds[k] = true
		}
	}
	return s
}

func (s *changeSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *changeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if s.kinds != nil && !s.kinds[e.Kind] {
					continue
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
