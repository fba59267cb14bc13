package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay collapses the burst of events editors produce on save
const debounceDelay = 100 * time.Millisecond

// Watcher reloads configuration when one of its files changes
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	reload   func() (*Config, error)
	onChange func(*Config)
	logger   *slog.Logger
}

// NewWatcher watches files and calls onChange with the freshly loaded
// config after each change. Directories are watched rather than the files
// themselves so that editors which replace the file on save are handled.
func NewWatcher(files []string, reload func() (*Config, error), onChange func(*Config), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]bool, len(files)),
		reload:   reload,
		onChange: onChange,
		logger:   logger,
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		clean := filepath.Clean(f)
		w.files[clean] = true
		dirs[filepath.Dir(clean)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// Run processes events until ctx is cancelled, then closes the watcher
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, w.apply)
			mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) apply() {
	cfg, err := w.reload()
	if err != nil {
		w.logger.Warn("config reload failed", slog.String("error", err.Error()))
		return
	}
	if err := cfg.Validate(); err != nil {
		w.logger.Warn("reloaded config is invalid", slog.String("error", err.Error()))
		return
	}
	w.onChange(cfg)
}
