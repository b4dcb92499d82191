// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a theme file whenever it changes on disk, for live
// theme editing. The onChange callback runs on the watcher goroutine;
// hosts must hand the new theme off to their UI loop rather than
// mutating elements from the callback.
type Watcher struct {
	filename  string
	watcher   *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
}

// Watch starts watching the given theme file, invoking onChange with
// the reloaded theme (or a load error) after each write.
func Watch(filename string, onChange func(th *Theme, err error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory: editors typically replace the file, which
	// drops a watch registered on the file itself
	if err := fw.Add(filepath.Dir(filename)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{filename: filename, watcher: fw, done: make(chan struct{})}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func(th *Theme, err error)) {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.filename) {
				continue
			}
			th, err := Open(w.filename)
			onChange(th, err)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("theme.Watcher: watch error", "file", w.filename, "err", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
