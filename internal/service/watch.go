package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 300 * time.Millisecond

// Watch regenerates a job whenever its input file changes, until ctx is
// cancelled. Parent directories are watched so that editors which save by
// rename keep triggering events. onResult is called after every regeneration.
func (s *Service) Watch(ctx context.Context, jobs []Job, debounce time.Duration, onResult func(Report, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	byPath := make(map[string]Job, len(jobs))
	dirs := make(map[string]bool)
	for _, job := range jobs {
		abs, err := filepath.Abs(job.Input)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", job.Input, err)
		}
		byPath[abs] = job
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	pending := make(map[string]Job)
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			job, ok := byPath[abs]
			if !ok {
				continue
			}
			s.log.Debug("input changed", zap.String("path", abs), zap.String("op", ev.Op.String()))
			pending[abs] = job
			fire = time.After(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watch error", zap.Error(err))

		case <-fire:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			for _, p := range paths {
				r, err := s.Generate(ctx, pending[p])
				if onResult != nil {
					onResult(r, err)
				}
			}
			clear(pending)
			fire = nil
		}
	}
}
