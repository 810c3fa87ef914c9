package tui

import (
	"context"

	"foldercolor/internal/catalog"
	"foldercolor/internal/errors"
	"foldercolor/internal/log"
	"foldercolor/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
)

// Querier reports the name of the currently applied entry.
type Querier interface {
	Current(ctx context.Context) (string, error)
}

type Options struct {
	Catalog *catalog.Catalog
	Querier Querier
	Applier Applier
	Keys    *types.KeyMap

	// ProgramOptions are appended after the defaults, so they can override
	// input and output for tests.
	ProgramOptions []tea.ProgramOption
}

// Result is how a session ended.
type Result struct {
	Outcome types.Outcome
	Applied string
}

// ResolveActive asks q for the active entry and maps it to a catalog index.
// Any failure falls back to index 0.
func ResolveActive(ctx context.Context, cat *catalog.Catalog, q Querier) int {
	if q == nil {
		return 0
	}
	name, err := q.Current(ctx)
	if err != nil {
		log.LogWithError(err).Warn("could not query active folder color, using first entry")
		return 0
	}
	idx, ok := cat.IndexOf(name)
	if !ok {
		log.Warnf("active folder color %q is not in the catalog, using first entry", name)
		return 0
	}
	return idx
}

// Run queries the active entry, then drives one interactive session until
// the user applies an entry or exits.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Catalog == nil || opts.Catalog.Size() == 0 {
		return Result{}, errors.NewCatalogError("catalog is empty", "", errors.InvalidCatalog, nil)
	}
	if opts.Applier == nil {
		return Result{}, errors.New("no applier configured")
	}

	active := ResolveActive(ctx, opts.Catalog, opts.Querier)
	m := New(opts.Catalog, active, opts.Applier)
	m.SetKeys(opts.Keys)

	progOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts.ProgramOptions...)

	final, err := tea.NewProgram(m, progOpts...).Run()
	switch {
	case err == nil:
	case errors.Is(err, tea.ErrInterrupted), errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		log.Info("session interrupted")
		return Result{Outcome: types.OutcomeCancelled}, nil
	default:
		return Result{}, errors.Wrap(err, "unexpected failure")
	}

	fm, ok := final.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected failure: unknown final model")
	}
	return Result{Outcome: fm.Outcome(), Applied: fm.Applied()}, nil
}
