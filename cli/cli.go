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


// Package cli handles all of the core command line parsing. It's the first
// entry point after the real main function, and it runs the lang front end.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	cliUtil "github.com/mathlang/mathlang/cli/util"
	"github.com/mathlang/mathlang/util/errwrap"

	"github.com/alexflint/go-arg"
)

// CLI is the entry point for using mathlang normally from the CLI.
func CLI(ctx context.Context, data *cliUtil.Data) error {
	// test for sanity
	if data == nil {
		return fmt.Errorf("this CLI was not run correctly")
	}
	if data.Program == "" || data.Version == "" {
		return fmt.Errorf("program was not compiled correctly")
	}
	if data.Copying == "" {
		return fmt.Errorf("program copyrights were removed, can't run")
	}
	if len(data.Args) == 0 {
		return fmt.Errorf("missing program name in args")
	}
	if data.Flags.Logf == nil {
		data.Flags.Logf = func(format string, v ...interface{}) {} // noop
	}

	args := Args{}
	args.version = data.Version // copy this in
	args.description = data.Tagline

	config := arg.Config{
		Program: data.Program,
	}
	parser, err := arg.NewParser(config, &args)
	if err != nil {
		// programming error
		return errwrap.Wrapf(err, "cli config error")
	}
	err = parser.Parse(data.Args[1:]) // XXX: args[0] needs to be dropped
	if err == arg.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	if err == arg.ErrVersion {
		fmt.Printf("%s\n", data.Version) // byon: bring your own newline
		return nil
	}
	if err != nil {
		return cliUtil.CliParseError(err) // consistent errors
	}

	// display the license
	if args.License {
		fmt.Printf("%s", data.Copying) // file comes with a trailing nl
		return nil
	}

	if args.Debug {
		data.Flags.Debug = true
	}
	if args.Verbose {
		data.Flags.Verbose = true
	}
	if !data.Flags.Debug && !data.Flags.Verbose {
		data.Flags.Logf = func(format string, v ...interface{}) {} // quiet
	}
	cliUtil.Hello(data.Program, data.Version, data.Flags) // say hello!

	if ok, err := args.Run(ctx, data); err != nil {
		return err
	} else if ok { // did we activate one of the commands?
		return nil
	}

	// print help if no subcommands are set
	parser.WriteHelp(os.Stdout)

	return nil
}

// Args is the CLI parsing structure and type of the parsed result. This
// particular struct is the top-most one.
type Args struct {
	License bool `arg:"--license" help:"display the license and exit"`

	Debug   bool `arg:"--debug" help:"add additional log messages"`
	Verbose bool `arg:"--verbose" help:"add extra log message output"`

	RunCmd *RunArgs `arg:"subcommand:run" help:"run a program"`

	ReplCmd *ReplArgs `arg:"subcommand:repl" help:"start an interactive session"`

	InfoCmd *InfoArgs `arg:"subcommand:info" help:"list the built-in functions"`

	// version is a private handle for our version string.
	version string `arg:"-"` // ignored from parsing

	// description is a private handle for our description string.
	description string `arg:"-"` // ignored from parsing

	// stdin and stdout are used by the subcommands. They default to the os
	// ones when nil.
	stdin  io.Reader `arg:"-"`
	stdout io.Writer `arg:"-"`
}

// Version returns the version string. Implementing this signature is part of
// the API for the cli library.
func (obj *Args) Version() string {
	return obj.version
}

// Description returns a description string. Implementing this signature is part
// of the API for the cli library.
func (obj *Args) Description() string {
	return obj.description
}

// Run executes the correct subcommand. It errors if there's ever an error. It
// returns true if we did activate one of the subcommands. It returns false if
// we did not. This information is used so that the top-level parser can return
// usage or help information if no subcommand activates.
func (obj *Args) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	stdin, stdout := obj.stdin, obj.stdout
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	if cmd := obj.RunCmd; cmd != nil {
		obj.logCmd(data, cmd)
		cmd.stdin, cmd.stdout = stdin, stdout
		return cmd.Run(ctx, data)
	}

	if cmd := obj.ReplCmd; cmd != nil {
		obj.logCmd(data, cmd)
		return cmd.Run(ctx, data)
	}

	if cmd := obj.InfoCmd; cmd != nil {
		obj.logCmd(data, cmd)
		cmd.stdout = stdout
		return cmd.Run(ctx, data)
	}

	return false, nil // nobody activated
}

func (obj *Args) logCmd(data *cliUtil.Data, cmd interface{}) {
	if data.Flags.Debug {
		data.Flags.Logf("main: subcommand: %s", cliUtil.LookupSubcommand(obj, cmd))
	}
}
