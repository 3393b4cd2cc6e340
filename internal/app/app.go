// Package app wires together the mechsize adapters and domain logic: the
// profile catalog, the design store, the file watcher and drive evaluation.
// Commands build one App per invocation and Close it on exit.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/corey/mechsize/belts"
	"github.com/corey/mechsize/internal/adapters/bbolt"
	fsw "github.com/corey/mechsize/internal/adapters/fsnotify"
	"github.com/corey/mechsize/internal/config"
	"github.com/corey/mechsize/internal/domain/drive"
	"github.com/corey/mechsize/internal/ports"
	"github.com/corey/mechsize/profiles"
	"go.uber.org/zap"
)

// App holds the per-invocation state shared by commands.
type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Catalog []belts.Profile

	mu    sync.Mutex
	store *bbolt.Store
}

// New loads the embedded profile catalog. The design store is opened on
// first use so that commands which never touch it do not take its lock.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	catalog, err := belts.LoadProfiles(profiles.FS, profiles.Dir)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	log.Debug("profiles loaded", zap.Int("count", len(catalog)))

	return &App{Config: cfg, Log: log, Catalog: catalog}, nil
}

// Store returns the design store, opening it on first call.
func (a *App) Store() (ports.DesignStore, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store != nil {
		return a.store, nil
	}
	a.Log.Debug("opening design store", zap.String("path", a.Config.StorePath))
	s, err := bbolt.NewStore(a.Config.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open design store: %w", err)
	}
	a.store = s
	return s, nil
}

// Close releases the design store if it was opened.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// Options returns evaluation options from the configuration.
func (a *App) Options() drive.Options {
	return drive.Options{ScrewEfficiency: a.Config.ScrewEfficiency}
}

// Evaluate resolves doc against the catalog and evaluates it.
func (a *App) Evaluate(doc *drive.Document) (*drive.Report, error) {
	d, err := drive.Resolve(doc, a.Catalog)
	if err != nil {
		return nil, fmt.Errorf("design %s: %w", doc.Name, err)
	}
	a.Log.Debug("design resolved",
		zap.String("name", d.Name),
		zap.Stringer("driver", d.Driver),
		zap.Stringer("driven", d.Driven),
		zap.Float64("center_mm", d.Center.Millimeters()))

	r, err := drive.Evaluate(d, a.Options())
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", doc.Name, err)
	}
	for _, w := range r.Warnings {
		a.Log.Debug("design warning", zap.String("name", d.Name), zap.String("warning", w))
	}
	return r, nil
}

// EvaluateFile reads, resolves and evaluates the design document at path.
func (a *App) EvaluateFile(path string) (*drive.Report, error) {
	doc, _, err := drive.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return a.Evaluate(doc)
}

// SaveDesign validates the document at path and stores its source under
// the design's name, replacing an earlier version.
func (a *App) SaveDesign(path string) (*ports.DesignRecord, error) {
	doc, src, err := drive.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	if _, err := drive.Resolve(doc, a.Catalog); err != nil {
		return nil, fmt.Errorf("design %s: %w", doc.Name, err)
	}

	store, err := a.Store()
	if err != nil {
		return nil, err
	}
	rec := &ports.DesignRecord{Name: doc.Name, Source: src}
	if err := store.SaveDesign(rec); err != nil {
		return nil, fmt.Errorf("save design %s: %w", doc.Name, err)
	}
	a.Log.Debug("design saved", zap.String("id", rec.ID), zap.String("name", rec.Name))
	return rec, nil
}

// EvaluateStored loads a stored design by ID or name and evaluates it.
func (a *App) EvaluateStored(ref string) (*ports.DesignRecord, *drive.Report, error) {
	store, err := a.Store()
	if err != nil {
		return nil, nil, err
	}
	rec, err := store.LoadDesign(ref)
	if err != nil {
		return nil, nil, fmt.Errorf("load design %q: %w", ref, err)
	}
	doc, err := drive.ParseDocument(rec.Source)
	if err != nil {
		return rec, nil, fmt.Errorf("stored design %s: %w", rec.Name, err)
	}
	r, err := a.Evaluate(doc)
	return rec, r, err
}

// Watch evaluates the design at path once, then again after every change,
// passing each result to onReport until ctx is cancelled. onReport runs on
// the watcher goroutine for changes.
func (a *App) Watch(ctx context.Context, path string, onReport func(*drive.Report, error)) error {
	w, err := fsw.NewWatcher(a.Config.WatchDebounce)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	w.OnError(func(err error) {
		a.Log.Warn("watcher error", zap.Error(err))
	})

	onReport(a.EvaluateFile(path))

	err = w.Watch(path, func(changed string) {
		a.Log.Debug("design changed", zap.String("path", changed))
		r, err := a.EvaluateFile(changed)
		if err != nil {
			a.Log.Warn("re-evaluation failed", zap.String("path", changed), zap.Error(err))
		}
		onReport(r, err)
	})
	if err != nil {
		w.Stop()
		return err
	}

	<-ctx.Done()
	return w.Stop()
}
