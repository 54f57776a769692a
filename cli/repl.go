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
	"strings"

	cliUtil "github.com/mathlang/mathlang/cli/util"
	"github.com/mathlang/mathlang/lang/parser"
	"github.com/mathlang/mathlang/util"
	"github.com/mathlang/mathlang/util/errwrap"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"
)

const (
	replPrompt = ">>> "
	contPrompt = "... " // shown while a statement is incomplete
)

// ReplArgs is the CLI parsing structure and type of the parsed result. This
// particular one is for the `repl` subcommand.
type ReplArgs struct {
	cliUtil.LangArgs // embedded (can't be a pointer) https://github.com/alexflint/go-arg/issues/240

	History string `arg:"--history,env:MATHLANG_HISTORY" help:"file to keep the line history in"`
}

// Run starts the interactive session. Each entry runs in the scope that the
// previous ones left behind. It ends on EOF (^D).
func (obj *ReplArgs) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	fs := afero.NewOsFs()
	config, err := loadConfig(fs, "", &obj.LangArgs, data)
	if err != nil {
		return false, err
	}

	history, err := util.ExpandHome(obj.History)
	if err != nil {
		return false, err
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return false, err
	}
	defer rl.Close()

	// read shares the terminal with the line editor, so it prompts there
	stdin := &lineReader{
		rl:     rl,
		prompt: config.Prompt,
	}
	config.Prompt = ""

	l, err := newLang(fs, config, data, stdin, rl.Stdout())
	if err != nil {
		return false, err
	}

	lines := []string{}
	reset := func() {
		lines = []string{}
		rl.SetPrompt(replPrompt)
	}
	for {
		if ctx.Err() != nil {
			return true, nil
		}
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			reset() // discard the pending input
			continue
		}
		if err == io.EOF {
			return true, nil
		}
		if err != nil {
			return false, err
		}

		lines = append(lines, line)
		code := strings.Join(lines, "\n")
		if strings.TrimSpace(code) == "" {
			reset()
			continue
		}

		out, err := l.Eval(code)
		if errwrap.Is(err, parser.ErrParseEOF) {
			rl.SetPrompt(contPrompt)
			continue
		}
		reset()
		if err != nil {
			printErr(rl.Stderr(), err)
			continue
		}
		if out != "" {
			fmt.Fprintln(rl.Stdout(), color.CyanString("%s", out))
		}
	}
}

// lineReader is an io.Reader which gets each line from the line editor.
type lineReader struct {
	rl     *readline.Instance
	prompt string

	buf []byte
}

// Read returns the rest of the current line, or prompts for a new one if it's
// all been read.
func (obj *lineReader) Read(p []byte) (int, error) {
	if len(obj.buf) == 0 {
		obj.rl.SetPrompt(obj.prompt)
		line, err := obj.rl.Readline()
		obj.rl.SetPrompt(replPrompt)
		if err == readline.ErrInterrupt {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		obj.buf = []byte(line + "\n")
	}
	n := copy(p, obj.buf)
	obj.buf = obj.buf[n:]
	return n, nil
}

// printErr displays an error in red.
func printErr(w io.Writer, err error) {
	fmt.Fprintln(w, color.RedString("error: %v", err))
}
