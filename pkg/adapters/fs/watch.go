package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/poaf/pkg/core"
)

// debounceInterval coalesces the burst of events a single write produces.
const debounceInterval = 50 * time.Millisecond

// Watch observes the data directory and emits an Event when a source file
// whose base name matches pattern changes. An empty pattern means "*".
// The channel is closed when ctx is cancelled.
func (s *Source) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	out := make(chan core.Event)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		defer s.setWatcherActive(false)
		defer watcher.Close()
		return s.watchLoop(ctx, watcher, pattern, out)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.handleWatchError(fmt.Errorf("watcher panic: %w", err))
	}))

	return out, nil
}

// watchLoop collects events per path and flushes them once the directory
// has been quiet for debounceInterval.
func (s *Source) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, out chan<- core.Event) error {
	pending := make(map[string]core.Event)
	timer := time.NewTimer(debounceInterval)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := s.mapEvent(event, pattern)
			if !ok {
				continue
			}
			s.logDebug("event received", "name", event.Name, "op", event.Op.String())
			pending[e.Path] = e
			timer.Reset(debounceInterval)

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			s.handleWatchError(wErr)

		case <-timer.C:
			for path, e := range pending {
				delete(pending, path)
				select {
				case out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}
}

// mapEvent filters an fsnotify event down to a source change.
func (s *Source) mapEvent(event fsnotify.Event, pattern string) (core.Event, bool) {
	base := filepath.Base(event.Name)

	var kind core.SourceKind
	switch base {
	case s.config.OntologyFile:
		kind = core.SourceOntology
	case s.config.AnnotationFile:
		kind = core.SourceAnnotation
	default:
		return core.Event{}, false
	}

	if ok, _ := doublestar.Match(pattern, base); !ok {
		return core.Event{}, false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{
		Type:      eType,
		Kind:      kind,
		Path:      event.Name,
		Timestamp: time.Now().Unix(),
	}, true
}

func (s *Source) handleWatchError(err error) {
	if s.config.Logger != nil {
		s.config.Logger.Error("fsnotify error", "error", err)
	}
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
	}
}

var _ core.Watchable = (*Source)(nil)
