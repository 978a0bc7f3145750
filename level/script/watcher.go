// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Watcher - reload scripts when their files change
type Watcher struct {
	log     *logger.L
	set     *Set
	watcher *fsnotify.Watcher
}

// NewWatcher - watch every directory holding a script of the set
//
// directories are watched rather than files so that editors which
// replace a file are still seen
func NewWatcher(set *Set) (*Watcher, error) {
	log := logger.New("script-watcher")

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	for _, d := range set.Directories() {
		if err := watcher.Add(d); nil != err {
			log.Errorf("watch: %q  error: %s", d, err)
			watcher.Close()
			return nil, err
		}
		log.Infof("watching: %q", d)
	}

	return &Watcher{
		log:     log,
		set:     set,
		watcher: watcher,
	}, nil
}

// Run - background process
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if !isChange(event) {
				continue loop
			}
			found, err := w.set.Reload(event.Name)
			if !found {
				continue loop
			}
			if nil != err {
				log.Errorf("reload: %q  error: %s", event.Name, err)
			} else {
				log.Infof("reloaded: %q", event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	w.watcher.Close()
	log.Info("stopped")
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
