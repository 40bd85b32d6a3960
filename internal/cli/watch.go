package cli

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settleDelay coalesces editor save bursts into one regeneration.
const settleDelay = 250 * time.Millisecond

// watch regenerates whenever a Go file in the package directory changes.
// Events for the generated file itself are ignored so a run does not retrigger
// itself.
func (r *runnerImpl) watch(ctx context.Context, cfg *Config, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "start watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "watch %q", dir)
	}
	r.log.Info("watching", zap.String("dir", dir))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantEvent(ev, cfg.OutputFilename()) {
				continue
			}
			r.log.Debug("change detected", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			pending = time.After(settleDelay)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("watch error", zap.Error(werr))
		case <-pending:
			pending = nil
			if _, err := r.generate(cfg); err != nil {
				r.log.Error("regeneration failed", zap.Error(err))
			}
		}
	}
}

func isRelevantEvent(ev fsnotify.Event, outputFile string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	if !strings.HasSuffix(ev.Name, ".go") {
		return false
	}
	return filepath.Base(ev.Name) != filepath.Base(outputFile)
}
