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


package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	cliUtil "github.com/mathlang/mathlang/cli/util"
	"github.com/mathlang/mathlang/lang"
	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/recwatch"
	"github.com/mathlang/mathlang/util"
	"github.com/mathlang/mathlang/util/errwrap"

	"github.com/sanity-io/litter"
	"github.com/spf13/afero"
)

// RunArgs is the CLI parsing structure and type of the parsed result. This
// particular one is for the `run` subcommand.
type RunArgs struct {
	// Input is the code, a file or directory path, or - for stdin.
	Input string `arg:"positional,required" help:"a .mth file, a directory with a main.mth, - for stdin, or code"`

	cliUtil.LangArgs // embedded (can't be a pointer) https://github.com/alexflint/go-arg/issues/240

	Watch   bool `arg:"--watch" help:"run again whenever the program or its config changes"`
	DumpAST bool `arg:"--dump-ast" help:"log the parsed program before running it"`

	stdin  io.Reader `arg:"-"`
	stdout io.Writer `arg:"-"`
	fs     afero.Fs  `arg:"-"`
}

// Run executes the program. It returns true since it's always activated when
// it runs.
func (obj *RunArgs) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	Logf := func(format string, v ...interface{}) {
		data.Flags.Logf("main: "+format, v...)
	}
	if obj.fs == nil {
		obj.fs = afero.NewOsFs()
	}
	if obj.stdin == nil {
		obj.stdin = os.Stdin
	}
	if obj.stdout == nil {
		obj.stdout = os.Stdout
	}

	if !obj.Watch {
		if err := obj.runOnce(data); err != nil {
			return false, err
		}
		return true, nil
	}

	paths, err := obj.watchPaths()
	if err != nil {
		return false, err
	}
	defer Logf("goodbye!")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// install the exit signal handler
	wg := &sync.WaitGroup{}
	defer wg.Wait()
	exit := make(chan struct{})
	defer close(exit)
	wg.Add(1)
	go func() {
		defer wg.Done()
		// must have buffer for max number of signals
		signals := make(chan os.Signal, 1+1) // 1 * ^C + 1 * SIGTERM
		signal.Notify(signals, os.Interrupt) // catch ^C
		signal.Notify(signals, syscall.SIGTERM)
		defer signal.Stop(signals)
		select {
		case sig := <-signals: // any signal will do
			Logf("interrupted by %v", sig)
			cancel()
		case <-exit:
		}
	}()

	watcher := recwatch.NewConfigWatcher()
	watcher.Debug = data.Flags.Debug
	watcher.Logf = func(format string, v ...interface{}) {
		data.Flags.Logf("watch: "+format, v...)
	}
	watcher.Add(paths...)
	defer watcher.Close()

	for {
		if err := obj.runOnce(data); err != nil {
			printErr(os.Stderr, err) // keep watching
		}
		Logf("watching: %v", paths)

		select {
		case file, ok := <-watcher.Events():
			if !ok {
				return true, nil
			}
			Logf("changed: %s", file)

		case err := <-watcher.Error():
			return false, errwrap.Wrapf(err, "watch failed")

		case <-ctx.Done():
			return true, nil
		}
	}
}

// runOnce sets up a new lang and runs the program with it.
func (obj *RunArgs) runOnce(data *cliUtil.Data) error {
	config, err := loadConfig(obj.fs, obj.Input, &obj.LangArgs, data)
	if err != nil {
		return err
	}
	l, err := newLang(obj.fs, config, data, obj.stdin, obj.stdout)
	if err != nil {
		return err
	}
	l.Input = obj.Input

	prog, err := l.Parse()
	if err != nil {
		return err
	}
	if obj.DumpAST {
		data.Flags.Logf("main: ast: %s", litter.Sdump(prog))
	}
	_, err = l.Interpret(prog)
	return err
}

// watchPaths returns the files that the program and its config are read from.
func (obj *RunArgs) watchPaths() ([]string, error) {
	if obj.Input == interfaces.StdinInput {
		return nil, fmt.Errorf("can't watch stdin")
	}
	paths := []string{}
	if isDir, err := afero.IsDir(obj.fs, obj.Input); err == nil && isDir {
		paths = append(paths, filepath.Join(obj.Input, interfaces.MainFilename))
	} else if util.IsFile(obj.fs, obj.Input) {
		paths = append(paths, obj.Input)
	} else {
		return nil, fmt.Errorf("can only watch a file or a directory")
	}

	config := obj.Config
	if config == "" {
		config = lang.FindConfig(obj.fs, obj.Input)
	}
	if config != "" {
		paths = append(paths, config)
	}
	return paths, nil
}

// loadConfig reads the config that the args point to, or the one next to the
// input if none was given. The defaults are used if there isn't one.
func loadConfig(fs afero.Fs, input string, args *cliUtil.LangArgs, data *cliUtil.Data) (*lang.Config, error) {
	config := lang.DefaultConfig()
	name := args.Config
	if name == "" {
		name = lang.FindConfig(fs, input)
	}
	if name != "" {
		if data.Flags.Debug {
			data.Flags.Logf("main: config: %s", name)
		}
		var err error
		if config, err = lang.ReadConfig(fs, name); err != nil {
			return nil, err
		}
	}
	if args.Depth != nil {
		config.MaxDepth = *args.Depth
	}
	return config, nil
}

// newLang builds and initializes a lang.
func newLang(fs afero.Fs, config *lang.Config, data *cliUtil.Data, stdin io.Reader, stdout io.Writer) (*lang.Lang, error) {
	l := &lang.Lang{
		Fs:     fs,
		Config: config,
		Stdin:  stdin,
		Stdout: stdout,
		Debug:  data.Flags.Debug,
		Logf: func(format string, v ...interface{}) {
			data.Flags.Logf("lang: "+format, v...)
		},
	}
	if err := l.Init(); err != nil {
		return nil, errwrap.Wrapf(err, "could not init the lang")
	}
	return l, nil
}
