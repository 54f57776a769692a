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


package lang

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/util"
	"github.com/mathlang/mathlang/util/errwrap"

	"github.com/spf13/afero"
)

// An input string can be a path to a program, a path to a directory which has
// a main program in it, a dash for stdin, or the code itself. Each of the input
// parsers below checks for one of these, and they are tried in order until one
// of them activates.

var (
	// inputOrder contains the correct running order of the input functions.
	inputOrder = []func(string, afero.Fs, io.Reader) (*ParsedInput, error){
		inputEmpty,
		inputStdin,
		inputMth,
		inputDirectory,
		inputCode,
	}
)

// ParsedInput is the output struct which contains all the information we need.
type ParsedInput struct {
	// Name is the file that the code came from. It is empty for raw code
	// and for stdin.
	Name string

	// Base is the directory the program is in, with a trailing slash. It
	// is empty if it isn't known.
	Base string

	// Main is the code itself.
	Main []byte
}

// ParseInput runs the list of input parsers to know how to find the code to run.
// The fs input is the source filesystem to look in, and stdin is only read if
// the input asks for it.
func ParseInput(s string, fs afero.Fs, stdin io.Reader) (*ParsedInput, error) {
	for _, fn := range inputOrder { // list of input detection functions
		output, err := fn(s, fs, stdin)
		if err != nil {
			return nil, err
		}
		if output != nil { // activated!
			return output, nil
		}
	}
	return nil, fmt.Errorf("input is invalid")
}

// dirify ensures path ends with a trailing slash, so that it's a dir.
func dirify(str string) string {
	if !strings.HasSuffix(str, "/") {
		return str + "/"
	}
	return str
}

// inputEmpty is a simple empty string contents check.
func inputEmpty(s string, _ afero.Fs, _ io.Reader) (*ParsedInput, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("input is empty")
	}
	return nil, nil // pass (this test never succeeds)
}

// inputStdin checks if we're looking at stdin.
func inputStdin(s string, fs afero.Fs, stdin io.Reader) (*ParsedInput, error) {
	if s != interfaces.StdinInput {
		return nil, nil // not us, but no error
	}
	if stdin == nil {
		return nil, fmt.Errorf("stdin is not available")
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errwrap.Wrapf(err, "can't read in stdin")
	}
	return &ParsedInput{
		Main: b,
	}, nil
}

// inputMth checks if we have a path to a *.mth file.
func inputMth(s string, fs afero.Fs, _ io.Reader) (*ParsedInput, error) {
	if !strings.HasSuffix(s, interfaces.DotFileNameExtension) || strings.Contains(s, "\n") {
		return nil, nil // not us, but no error
	}
	b, err := util.ReadFile(fs, s)
	if err != nil {
		return nil, errwrap.Wrapf(err, "can't read from file: `%s`", s)
	}
	return &ParsedInput{
		Name: s,
		Base: dirify(filepath.Dir(s)),
		Main: b,
	}, nil
}

// inputDirectory checks if we're given the path to a directory.
func inputDirectory(s string, fs afero.Fs, stdin io.Reader) (*ParsedInput, error) {
	if !strings.HasSuffix(s, "/") {
		return nil, nil // not us, but no error
	}
	fi, err := fs.Stat(s)
	if err != nil {
		return nil, errwrap.Wrapf(err, "dir: `%s` does not exist", s)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("dir: `%s` is not a dir", s)
	}

	// try looking for a main.mth file in the root
	mf := s + interfaces.MainFilename
	if !util.IsFile(fs, mf) {
		return nil, fmt.Errorf("dir: `%s` has no %s", s, interfaces.MainFilename)
	}
	return inputMth(mf, fs, stdin) // recurse
}

// inputCode checks if this is raw code. This is the last possibility.
func inputCode(s string, _ afero.Fs, _ io.Reader) (*ParsedInput, error) {
	return &ParsedInput{
		Main: []byte(s),
	}, nil
}
