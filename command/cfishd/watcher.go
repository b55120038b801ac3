// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/util"
	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// configWatcher - reports writes to the configuration file
type configWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
	done     chan struct{}
}

func newConfigWatcher(log *logger.L, fileName string) (*configWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrConfigurationNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &configWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}, nil
}

// Start - watch the parent directory so editors that replace the
// file are still followed
func (w *configWatcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.filePath)); nil != err {
		w.log.Errorf("watcher add error: %s", err)
		w.watcher.Close()
		return err
	}

	go w.loop()
	return nil
}

// Close - stop watching
func (w *configWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *configWatcher) loop() {
	defer close(w.done)
	base := filepath.Base(w.filePath)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if event.Op&fsnotify.Remove == fsnotify.Remove {
				w.log.Warnf("configuration: %q removed", w.filePath)
				signal(w.remove)
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Chmod) != 0 {
				signal(w.change)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// non-blocking: a pending event already covers this one
func signal(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// reload the log levels from a changed configuration file
func reloadLevels(log *logger.L, fileName string) error {
	c, err := getConfiguration(fileName)
	if nil != err {
		log.Errorf("configuration reload error: %s", err)
		return err
	}
	logger.LoadLevels(c.Logging.Levels)
	log.Infof("log levels reloaded: %v", c.Logging.Levels)
	return nil
}
