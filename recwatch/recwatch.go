// Mathlang
// Copyright (C) James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package recwatch provides file watching events via fsnotify.
package recwatch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event represents a watcher event. These can include errors.
type Event struct {
	Error error
	Body  *fsnotify.Event
}

// RecWatcher watches a single file. The directory that contains it is what is
// actually watched, so that the file can be replaced by renaming another file
// over it, which is how many editors save. Run Init() on it.
type RecWatcher struct {
	Path string // path of the file to watch

	Debug bool
	Logf  func(format string, v ...interface{})

	safename string // clean absolute path
	watcher  *fsnotify.Watcher
	events   chan Event // one channel for events and err...
	closed   bool       // is the events channel closed?
	mutex    sync.Mutex // lock guarding the channel closing
	wg       sync.WaitGroup
	exit     chan struct{}
}

// NewRecWatcher creates and initializes a new watcher.
func NewRecWatcher(path string) (*RecWatcher, error) {
	obj := &RecWatcher{
		Path: path,
		Logf: func(format string, v ...interface{}) {}, // noop
	}
	return obj, obj.Init()
}

// Init starts the file watcher.
func (obj *RecWatcher) Init() error {
	if obj.Logf == nil {
		obj.Logf = func(format string, v ...interface{}) {} // noop
	}
	obj.events = make(chan Event)
	obj.exit = make(chan struct{})

	safename, err := filepath.Abs(obj.Path)
	if err != nil {
		return err
	}
	obj.safename = filepath.Clean(safename)

	dir := filepath.Dir(obj.safename)
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return fmt.Errorf("can't watch in missing dir: %s", dir)
	}

	obj.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if obj.Debug {
		obj.Logf("watching: %s", dir)
	}
	if err := obj.watcher.Add(dir); err != nil {
		obj.watcher.Close()
		obj.watcher = nil
		if os.IsPermission(err) {
			return fmt.Errorf("permission denied adding a watch: %v", err)
		}
		return fmt.Errorf("unknown error adding a watch: %v", err)
	}

	obj.wg.Add(1)
	go func() {
		defer obj.wg.Done()
		if err := obj.Watch(); err != nil {
			// we need this mutex, because if we Init and then Close
			// immediately, this can send after closed which panics!
			obj.mutex.Lock()
			if !obj.closed {
				select {
				case obj.events <- Event{Error: err}:
				case <-obj.exit:
				}
			}
			obj.mutex.Unlock()
		}
	}()
	return nil
}

// Close shuts down the watcher.
func (obj *RecWatcher) Close() error {
	var err error
	close(obj.exit) // send exit signal
	obj.wg.Wait()
	if obj.watcher != nil {
		err = obj.watcher.Close()
		obj.watcher = nil
	}
	obj.mutex.Lock()
	obj.closed = true
	close(obj.events)
	obj.mutex.Unlock()
	return err
}

// Events returns a channel of events. These include events for errors.
func (obj *RecWatcher) Events() chan Event { return obj.events }

// Watch is the primary listener and it outputs events. Only the events which
// change the contents of the file are sent.
func (obj *RecWatcher) Watch() error {
	if obj.watcher == nil {
		return fmt.Errorf("watcher is not initialized")
	}
	for {
		select {
		case event, ok := <-obj.watcher.Events:
			if !ok {
				return nil
			}
			if obj.Debug {
				obj.Logf("event(%s): %v", event.Name, event.Op)
			}
			if filepath.Clean(event.Name) != obj.safename {
				continue // another file in the same dir
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue // chmod and remove don't change what we'd run
			}

			select {
			case obj.events <- Event{Error: nil, Body: &event}:
			case <-obj.exit:
				return nil
			}

		case err, ok := <-obj.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("unknown watcher error: %v", err)

		case <-obj.exit:
			return nil
		}
	}
}
