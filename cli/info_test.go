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
	"strings"
	"testing"

	cliUtil "github.com/mathlang/mathlang/cli/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo1(t *testing.T) {
	out := &bytes.Buffer{}
	args := &InfoArgs{
		Module: "io",
		stdout: out,
	}
	ok, err := args.Run(context.Background(), &cliUtil.Data{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "print\nread\n", out.String())
}

func TestInfo2(t *testing.T) {
	out := &bytes.Buffer{}
	args := &InfoArgs{
		Type:   true,
		Module: "io",
		stdout: out,
	}
	_, err := args.Run(context.Background(), &cliUtil.Data{})
	require.NoError(t, err)

	exp := "print  io  print(v...)  write each value on its own line\n" +
		"read   io  read()       prompt for a number and read it from a line of input\n"
	assert.Equal(t, exp, out.String())
}

func TestInfo3(t *testing.T) {
	args := &InfoArgs{}
	output, err := args.infoCmd()
	require.NoError(t, err)

	names := strings.Split(strings.TrimSpace(output.String()), "\n")
	for _, name := range []string{"print", "read", "round", "ceil", "floor", "log", "sin", "cos", "tan", "sqrt", "cbrt", "nrt", "len", "get", "set", "sum", "product", "map", "graph"} {
		assert.Contains(t, names, name)
	}
	assert.IsIncreasing(t, names)
}

func TestInfoErr1(t *testing.T) {
	args := &InfoArgs{
		Module: "nope",
	}
	_, err := args.infoCmd()
	assert.Error(t, err)
}
