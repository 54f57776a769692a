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
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/util"

	"github.com/spf13/afero"
	"golang.org/x/tools/txtar"
)

// testPlotter writes a short summary of each series instead of drawing it.
type testPlotter struct{}

func (obj *testPlotter) Plot(w io.Writer, series []*interfaces.Series, opts *interfaces.GraphOptions) error {
	for _, s := range series {
		gaps := 0
		for _, y := range s.Y {
			if math.IsNaN(y) {
				gaps++
			}
		}
		fmt.Fprintf(w, "graph: %s: %d points, %d gaps\n", s.Name, len(s.Y), gaps)
	}
	return nil
}

// TestAstFunc1 runs each program from the test directory and compares what it
// prints. Each test is a txtar archive with a main.mth file and an OUTPUT file.
// It can also have an INPUT file which is used as stdin, and a config file. If
// the OUTPUT starts with the magic error prefix, then the rest of it is the
// error that the program should fail with.
func TestAstFunc1(t *testing.T) {
	const magicError = "# err: "
	const magicErrorLexParse = "errLexParse: "
	const magicErrorInit = "errInit: "
	const magicErrorInterpret = "errInterpret: "
	const magicEmpty = "# empty!"
	dir, err := util.TestDirFull()
	if err != nil {
		t.Errorf("could not get tests directory: %+v", err)
		return
	}
	t.Logf("tests directory is: %s", dir)

	type test struct { // an individual test
		name string
		path string // relative txtar path inside tests dir
	}
	testCases := []test{}

	// build test array automatically from reading the dir
	files, err := os.ReadDir(dir)
	if err != nil {
		t.Errorf("could not read through tests directory: %+v", err)
		return
	}
	sorted := []string{}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if !strings.HasSuffix(f.Name(), ".txtar") {
			continue
		}

		sorted = append(sorted, f.Name())
	}
	sort.Strings(sorted)
	for _, f := range sorted {
		// add automatic test case
		testCases = append(testCases, test{
			name: f,
			path: f, // <something>.txtar
		})
	}

	if testing.Short() {
		t.Logf("available tests:")
	}
	names := []string{}
	for index, tc := range testCases { // run all the tests
		if tc.name == "" {
			t.Errorf("test #%d: not named", index)
			continue
		}
		if util.StrInList(tc.name, names) {
			t.Errorf("test #%d: duplicate sub test name of: %s", index, tc.name)
			continue
		}
		names = append(names, tc.name)

		testName := fmt.Sprintf("test #%d (%s)", index, tc.name)
		if testing.Short() { // make listing tests easier
			t.Logf("%s", testName)
			continue
		}
		t.Run(testName, func(t *testing.T) {
			name, path := tc.name, tc.path
			txtarFile := dir + path

			archive, err := txtar.ParseFile(txtarFile)
			if err != nil {
				t.Errorf("err parsing txtar(%s): %+v", txtarFile, err)
				return
			}
			comment := strings.TrimSpace(string(archive.Comment))
			t.Logf("comment: %s\n", comment)

			// copy files out into the test filesystem
			fs := afero.NewMemMapFs()
			var testOutput, testInput []byte
			found := false
			for _, file := range archive.Files {
				switch file.Name {
				case "OUTPUT":
					testOutput = file.Data
					found = true
					continue
				case "INPUT":
					testInput = file.Data
					continue
				}
				if err := afero.WriteFile(fs, "/"+file.Name, file.Data, 0660); err != nil {
					t.Errorf("err writing file(%s): %+v", file.Name, err)
					return
				}
			}

			if !found { // skip missing tests
				return
			}

			expstr := string(testOutput) // expected output

			// if the output file has a magic error string, it's a failure
			errStr := ""
			failLexParse := false
			failInit := false
			failInterpret := false
			if strings.HasPrefix(expstr, magicError) {
				errStr = strings.TrimPrefix(expstr, magicError)
				expstr = errStr

				if strings.HasPrefix(expstr, magicErrorLexParse) {
					errStr = strings.TrimPrefix(expstr, magicErrorLexParse)
					expstr = errStr
					failLexParse = true
				}
				if strings.HasPrefix(expstr, magicErrorInit) {
					errStr = strings.TrimPrefix(expstr, magicErrorInit)
					expstr = errStr
					failInit = true
				}
				if strings.HasPrefix(expstr, magicErrorInterpret) {
					errStr = strings.TrimPrefix(expstr, magicErrorInterpret)
					expstr = errStr
					failInterpret = true
				}
			}

			fail := errStr != ""
			expstr = strings.Trim(expstr, "\n")
			if expstr == magicEmpty {
				expstr = ""
			}

			t.Logf("\n\ntest #%d (%s) ----------------\n\n", index, name)

			logf := func(format string, v ...interface{}) {
				t.Logf(fmt.Sprintf("test #%d", index)+": "+format, v...)
			}

			tree, err := util.FsTree(fs, "/")
			if err != nil {
				t.Errorf("test #%d: FAIL", index)
				t.Errorf("test #%d: FsTree failed: %+v", index, err)
				return
			}
			logf("tree:\n%s", tree)

			config := DefaultConfig()
			if util.IsFile(fs, "/"+interfaces.ConfigFilename) {
				config, err = ReadConfig(fs, "/"+interfaces.ConfigFilename)
			}
			stdout := &bytes.Buffer{}
			obj := &Lang{
				Fs:      fs,
				Input:   "/",
				Config:  config,
				Stdin:   bytes.NewReader(testInput),
				Stdout:  stdout,
				Plotter: &testPlotter{},
				Debug:   testing.Verbose(),
				Logf: func(format string, v ...interface{}) {
					logf("lang: "+format, v...)
				},
			}
			if err == nil {
				err = obj.Init()
			}
			if (!fail || !failInit) && err != nil {
				t.Errorf("test #%d: FAIL", index)
				t.Errorf("test #%d: init failed with: %+v", index, err)
				return
			}
			if failInit && err != nil {
				s := err.Error() // convert to string
				if s != expstr {
					t.Errorf("test #%d: FAIL", index)
					t.Errorf("test #%d: expected different error", index)
					t.Logf("test #%d: err: %s", index, s)
					t.Logf("test #%d: exp: %s", index, expstr)
				}
				return // fail happened during init, done!
			}
			if failInit && err == nil {
				t.Errorf("test #%d: FAIL", index)
				t.Errorf("test #%d: init passed, expected fail", index)
				return
			}

			prog, err := obj.Parse()
			if (!fail || !failLexParse) && err != nil {
				t.Errorf("test #%d: FAIL", index)
				t.Errorf("test #%d: lex/parse failed with: %+v", index, err)
				return
			}
			if failLexParse && err != nil {
				s := err.Error() // convert to string
				if s != expstr {
					t.Errorf("test #%d: FAIL", index)
					t.Errorf("test #%d: expected different error", index)
					t.Logf("test #%d: err: %s", index, s)
					t.Logf("test #%d: exp: %s", index, expstr)
				}
				return // fail happened during lexparse, don't run interpret!
			}
			if failLexParse && err == nil {
				t.Errorf("test #%d: FAIL", index)
				t.Errorf("test #%d: lex/parse passed, expected fail", index)
				return
			}

			result, err := obj.Interpret(prog)
			if (!fail || !failInterpret) && err != nil {
				t.Errorf("test #%d: FAIL", index)
				t.Errorf("test #%d: interpret failed with: %+v", index, err)
				return
			}
			if failInterpret && err != nil {
				s := err.Error() // convert to string
				if s != expstr {
					t.Errorf("test #%d: FAIL", index)
					t.Errorf("test #%d: expected different error", index)
					t.Logf("test #%d: err: %s", index, s)
					t.Logf("test #%d: exp: %s", index, expstr)
				}
				return
			}
			if failInterpret && err == nil {
				t.Errorf("test #%d: FAIL", index)
				t.Errorf("test #%d: interpret passed, expected fail", index)
				t.Logf("test #%d: output: %s", index, stdout.String())
				return
			}
			logf("result: %v", result)

			str := strings.Trim(stdout.String(), "\n")
			if expstr != str {
				t.Errorf("test #%d: FAIL", index)
				t.Errorf("test #%d: output did not match expected", index)
				t.Logf("test #%d:   actual: \n\n%s\n", index, str)
				t.Logf("test #%d: expected: \n\n%s", index, expstr)
				return
			}
		})
	}
	if testing.Short() {
		t.Skip("skipping all tests...")
	}
}
