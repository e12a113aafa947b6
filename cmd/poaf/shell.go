package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	"github.com/aretw0/poaf"
	poaflifecycle "github.com/aretw0/poaf/pkg/adapters/lifecycle"
	"github.com/aretw0/poaf/pkg/core"
	"github.com/aretw0/poaf/pkg/query"
)

var shellNoWatch bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive menu without refreshing the data files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := resolveEnv()
		if err != nil {
			fatal("Error resolving data directory", err)
		}
		if err := runShell(context.Background(), env); err != nil {
			fatal("Error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().BoolVar(&shellNoWatch, "no-watch", false, "Do not reload when the data files change on disk")
}

// runShell loads the data directory and runs the menu on stdin/stdout.
// Unless disabled, the data directory is watched and the snapshot is
// replaced whenever a source file changes.
func runShell(ctx context.Context, env *env) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d := newDisplay(os.Stdout, env.limit())
	d.info("Loading data into memory...")
	svc, err := env.load(ctx)
	if err != nil {
		return err
	}
	stats := svc.Stats()
	d.success(fmt.Sprintf("Setup complete! %d terms, %d annotations", stats.Terms, stats.Records))

	sh := newShell(svc, os.Stdin, os.Stdout, env.limit())
	if !shellNoWatch {
		if err := watchAndReload(ctx, env, sh); err != nil {
			slog.Warn("hot reload disabled", "error", err)
		}
	}
	return sh.Run(ctx)
}

func watchAndReload(ctx context.Context, env *env, sh *shell) error {
	events, err := poaf.NewSource(env.dataDir, env.opts...).Watch(ctx, "*")
	if err != nil {
		return err
	}

	changes := poaflifecycle.NewSource(events)
	if err := changes.Start(ctx); err != nil {
		return err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for e := range changes.Events() {
			slog.Debug("data file changed", "event", e.String())
			svc, err := env.load(ctx)
			if err != nil {
				slog.Warn("reload failed, keeping previous snapshot", "error", err)
				continue
			}
			sh.swap(svc)
			slog.Info("snapshot reloaded", "terms", svc.Stats().Terms, "records", svc.Stats().Records)
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		slog.Error("reload loop failed", "error", err)
	}))
	return nil
}

// shell is the numbered menu loop. The service behind it can be swapped
// while it runs; each action works on the snapshot current when it began.
type shell struct {
	mu  sync.RWMutex
	svc *query.Service

	in *bufio.Scanner
	d  *display
}

func newShell(svc *query.Service, in io.Reader, out io.Writer, limit int) *shell {
	return &shell{
		svc: svc,
		in:  bufio.NewScanner(in),
		d:   newDisplay(out, limit),
	}
}

func (s *shell) service() *query.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.svc
}

func (s *shell) swap(svc *query.Service) {
	s.mu.Lock()
	s.svc = svc
	s.mu.Unlock()
}

// Run shows the menu until the user picks Exit, input ends or ctx is done.
func (s *shell) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		s.menu()
		choice, ok := s.prompt("\nEnter your choice (1-6): ")
		if !ok {
			s.d.println()
			s.d.info("Goodbye!")
			return s.in.Err()
		}

		switch choice {
		case "1":
			ok = s.searchTerms()
		case "2":
			ok = s.searchAnnotations()
		case "3":
			ok = s.termDetails()
		case "4":
			ok = s.proteinAnnotations()
		case "5":
			s.d.stats(s.service().Stats())
		case "6":
			s.d.success("Thank you for using POAF!")
			return nil
		default:
			s.d.warning("Invalid choice. Please try again.")
		}
		if !ok {
			return s.in.Err()
		}
	}
	return nil
}

func (s *shell) menu() {
	s.d.println()
	s.d.println("=== Search Options ===")
	s.d.println("1. Search OBO terms")
	s.d.println("2. Search PAF annotations")
	s.d.println("3. Get term details by ID")
	s.d.println("4. Get annotations for protein")
	s.d.println("5. Show statistics")
	s.d.println("6. Exit")
}

// prompt reads one trimmed line. ok is false once input is exhausted.
func (s *shell) prompt(label string) (line string, ok bool) {
	s.d.printf("%s", label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// ask prompts for a required value; an empty answer is reported with
// emptyMsg and yields "".
func (s *shell) ask(label, emptyMsg string) (value string, ok bool) {
	value, ok = s.prompt(label)
	if ok && value == "" {
		s.d.warning(emptyMsg)
	}
	return value, ok
}

func (s *shell) searchTerms() bool {
	q, ok := s.ask("Enter search term: ", "Search term cannot be empty")
	if q != "" {
		s.d.termHits(q, s.service().SearchOntology(q))
	}
	return ok
}

func (s *shell) searchAnnotations() bool {
	q, ok := s.ask("Enter search term: ", "Search term cannot be empty")
	if q != "" {
		s.d.annotationHits(q, s.service().SearchAnnotations(q))
	}
	return ok
}

func (s *shell) termDetails() bool {
	id, ok := s.ask("Enter term ID: ", "Term ID cannot be empty")
	if id == "" {
		return ok
	}

	s.d.printf("\nGetting details for term: %s\n", id)
	term, err := s.service().GetTerm(id)
	switch {
	case errors.Is(err, core.ErrNotFound):
		s.d.warning("Term not found")
	case err != nil:
		s.d.failure(err.Error())
	default:
		s.d.term(term)
	}
	return ok
}

func (s *shell) proteinAnnotations() bool {
	id, ok := s.ask("Enter protein ID: ", "Protein ID cannot be empty")
	if id == "" {
		return ok
	}

	s.d.printf("\nGetting annotations for protein: %s\n", id)
	svc := s.service()
	recs, err := svc.GetAnnotationsForKey(id)
	switch {
	case errors.Is(err, core.ErrNotFound):
		s.d.warning("No annotations found for this protein")
	case err != nil:
		s.d.failure(err.Error())
	default:
		s.d.annotations(recs, svc.Annotations().AnnotationColumn())
	}
	return ok
}
