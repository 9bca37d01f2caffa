package timetable

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher validates the timetable document whenever it changes on disk, so a
// bad edit shows up in the logs right away instead of on the next query or
// reminder tick. Queries still read the file fresh; the watcher only reports.
type Watcher struct {
	source *FileSource
	logger *zap.Logger
	fw     *fsnotify.Watcher
}

func NewWatcher(source *FileSource, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors and atomic writers replace
	// the file and drop a direct watch on it.
	if err := fw.Add(filepath.Dir(source.Path())); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{source: source, logger: logger, fw: fw}, nil
}

func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	const debounce = 200 * time.Millisecond

	target := filepath.Clean(w.source.Path())
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Debounce: editors fire several events per save.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, w.validate)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("timetable watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) validate() {
	tt, err := w.source.Load()
	if err != nil {
		w.logger.Error("timetable document changed and failed validation", zap.Error(err))
		return
	}

	classes := 0
	for _, day := range tt.Days {
		classes += len(day)
	}
	w.logger.Info("timetable document reloaded",
		zap.Int("days", len(tt.Days)),
		zap.Int("classes", classes),
	)
}
