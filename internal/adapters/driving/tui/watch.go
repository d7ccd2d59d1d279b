package tui

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/hovertip/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hovertip/internal/logger"
)

// errWatcherClosed is reported when the fsnotify channels close.
var errWatcherClosed = errors.New("tui: page watcher closed")

// pageWatcher reports writes to one file. It watches the parent
// directory so editors that replace the file on save are still seen.
type pageWatcher struct {
	fsw  *fsnotify.Watcher
	name string
}

func newPageWatcher(path string) (*pageWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return &pageWatcher{fsw: fsw, name: filepath.Base(path)}, nil
}

// next blocks until the watched file changes.
func (w *pageWatcher) next() error {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return errWatcherClosed
			}
			if filepath.Base(ev.Name) != w.name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				logger.Debug("page watcher: %s", ev)
				return nil
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errWatcherClosed
			}
			logger.Warn("page watcher: %v", err)
		}
	}
}

// Close stops watching.
func (w *pageWatcher) Close() error {
	return w.fsw.Close()
}

// watchCmd waits for the next change on w.
func watchCmd(w *pageWatcher) tea.Cmd {
	return func() tea.Msg {
		if err := w.next(); err != nil {
			return messages.WatchStopped{Err: err}
		}
		return messages.PageChanged{}
	}
}
