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
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	cliUtil "github.com/mathlang/mathlang/cli/util"
	"github.com/mathlang/mathlang/lang/core"
)

const (
	twMinWidth = 0
	twTabWidth = 8
	twPadding  = 2   // ensure columns have at least a space between them
	twPadChar  = ' ' // using a tab here creates 'jumpy' columns on output
	twFlags    = 0
)

// InfoArgs is the CLI parsing structure and type of the parsed result. This
// particular one is for the `info` subcommand.
type InfoArgs struct {
	Type bool `arg:"--type" help:"show the signature and description of each built-in"`

	Module string `arg:"--module" help:"only list the built-ins of this module"`

	stdout io.Writer `arg:"-"`
}

// Run prints the table of built-ins.
func (obj *InfoArgs) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	output, err := obj.infoCmd()
	if err != nil {
		return false, err
	}
	stdout := obj.stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	w := tabwriter.NewWriter(stdout, twMinWidth, twTabWidth, twPadding, twPadChar, twFlags)
	fmt.Fprint(w, output.String())
	return true, w.Flush()
}

// infoCmd returns the requested output before it's aligned.
func (obj *InfoArgs) infoCmd() (bytes.Buffer, error) {
	var out bytes.Buffer
	found := false
	type row struct {
		name   string
		module string
		sig    string
		doc    string
	}
	rows := []row{}
	for _, module := range core.Modules() {
		if obj.Module != "" && module.Name != obj.Module {
			continue
		}
		found = true
		for _, b := range module.Builtins {
			rows = append(rows, row{
				name:   b.Name,
				module: module.Name,
				sig:    b.Sig,
				doc:    b.Doc,
			})
		}
	}
	if !found {
		return out, fmt.Errorf("unknown module: %s", obj.Module)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })
	for _, r := range rows {
		if obj.Type {
			fmt.Fprintf(&out, "%s\t%s\t%s\t%s\n", r.name, r.module, r.sig, r.doc)
		} else {
			fmt.Fprintln(&out, r.name)
		}
	}
	return out, nil
}
