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


package recwatch

import (
	"sync"
)

// ConfigWatcher returns events on a channel anytime one of its files changes.
// It's used to rerun a program when either the code or its config is edited.
type ConfigWatcher struct {
	Debug bool
	Logf  func(format string, v ...interface{})

	ch        chan string
	wg        sync.WaitGroup
	closechan chan struct{}
	errorchan chan error
}

// NewConfigWatcher creates a new ConfigWatcher struct.
func NewConfigWatcher() *ConfigWatcher {
	return &ConfigWatcher{
		Logf:      func(format string, v ...interface{}) {}, // noop
		ch:        make(chan string),
		closechan: make(chan struct{}),
		errorchan: make(chan error),
	}
}

// Add new file paths to watch for events on.
func (obj *ConfigWatcher) Add(file ...string) {
	if len(file) == 0 {
		return
	}
	if len(file) > 1 {
		for _, f := range file { // add all the files...
			obj.Add(f) // recurse
		}
		return
	}
	// otherwise, add the one file passed in...
	obj.wg.Add(1)
	go func() {
		defer obj.wg.Done()
		ch := obj.ConfigWatch(file[0])
		for {
			e, ok := <-ch
			if !ok { // channel closed
				return
			}
			if e != nil {
				select {
				case obj.errorchan <- e:
				case <-obj.closechan:
				}
				return
			}
			select {
			case obj.ch <- file[0]: // send on channel
			case <-obj.closechan:
				return // never mind, close early!
			}
		}
	}()
}

// Error returns a channel of errors that notifies us of permanent issues.
func (obj *ConfigWatcher) Error() <-chan error {
	return obj.errorchan
}

// Events returns a channel to listen on for file events. It closes when it is
// emptied after the Close() method is called. You can test for closure with the
// f, more := <-obj.Events() pattern.
func (obj *ConfigWatcher) Events() chan string {
	return obj.ch
}

// Close shuts down the ConfigWatcher object. It closes the Events channel after
// all the currently pending events have been emptied.
func (obj *ConfigWatcher) Close() {
	if obj.ch == nil {
		return
	}
	close(obj.closechan)
	obj.wg.Wait() // wait until everyone is done sending on obj.ch
	close(obj.ch)
	obj.ch = nil
	close(obj.errorchan)
}

// ConfigWatch writes on the channel every time an event is seen for the path.
// The channel closes after an error is sent, or when the watcher is closed.
func (obj *ConfigWatcher) ConfigWatch(file string) chan error {
	ch := make(chan error)
	go func() {
		defer close(ch)
		recWatcher := &RecWatcher{
			Path:  file,
			Debug: obj.Debug,
			Logf:  obj.Logf,
		}
		if err := recWatcher.Init(); err != nil {
			select {
			case ch <- err:
			case <-obj.closechan:
			}
			return
		}
		defer recWatcher.Close()
		if obj.Debug {
			obj.Logf("watching: %v", file)
		}
		for {
			select {
			case event, ok := <-recWatcher.Events():
				if !ok { // channel is closed
					return
				}
				select {
				case ch <- event.Error: // nil means a plain event
				case <-obj.closechan:
					return
				}
				if event.Error != nil {
					return
				}

			case <-obj.closechan:
				return
			}
		}
	}()
	return ch
}
