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
	"math"
	"path/filepath"
	"strings"

	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/util"
	"github.com/mathlang/mathlang/util/errwrap"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// Config is the optional config file. Anything which isn't specified keeps its
// default value.
type Config struct {
	// Prompt is written by read before it waits for input.
	Prompt string `yaml:"prompt"`

	// MaxDepth is the call depth limit. If it is negative, then there is
	// no limit.
	MaxDepth int `yaml:"max-depth"`

	// Variables are additional predefined numeric variables.
	Variables map[string]float64 `yaml:"variables"`

	// Graph contains the parameters for the graph built-in.
	Graph *interfaces.GraphOptions `yaml:"graph"`

	// bug395 is a flag to workaround the yaml parser resetting all the
	// default struct field values when it finds an empty yaml document.
	// See: https://github.com/go-yaml/yaml/issues/395 for more information.
	bug395 bool
}

// DefaultConfig returns the config that is used for absent values.
func DefaultConfig() *Config {
	return &Config{
		Prompt:    interfaces.DefaultPrompt,
		MaxDepth:  interfaces.DefaultMaxDepth,
		Variables: make(map[string]float64),
		Graph:     interfaces.DefaultGraphOptions(),

		bug395: true, // workaround
	}
}

// UnmarshalYAML is the standard unmarshal method for this struct.
func (obj *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type indirect Config // indirection to avoid infinite recursion
	raw := indirect(*DefaultConfig()) // the defaults go here

	if err := unmarshal(&raw); err != nil {
		return err
	}

	*obj = Config(raw) // restore from indirection with type conversion!
	return nil
}

// Validate checks that the config is usable.
func (obj *Config) Validate() error {
	if obj.Graph == nil {
		return fmt.Errorf("the graph section must not be empty")
	}
	if obj.Graph.Width <= 0 || obj.Graph.Height <= 0 {
		return fmt.Errorf("the graph size must be positive")
	}
	if obj.Graph.Samples < 2 {
		return fmt.Errorf("the graph needs at least two samples")
	}
	if !(obj.Graph.Min < obj.Graph.Max) {
		return fmt.Errorf("the graph min must be less than the max")
	}
	for _, name := range util.SortedKeys(obj.Variables) {
		if math.IsNaN(obj.Variables[name]) {
			return fmt.Errorf("variable `%s` is not a number", name)
		}
	}
	return nil
}

// ParseConfig reads from some input and returns a *Config struct that contains
// plausible values to be used. Unknown fields are an error.
func ParseConfig(reader io.Reader) (*Config, error) {
	config := DefaultConfig() // populate this
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errwrap.Wrapf(err, "can't read config")
	}
	if err := yaml.UnmarshalStrict(b, config); err != nil {
		return nil, errwrap.Wrapf(err, "can't parse config")
	}

	if !config.bug395 { // workaround
		// we must have gotten an empty document, so use a new default!
		config = DefaultConfig()
	}
	if config.Variables == nil { // `variables:` with nothing after it
		config.Variables = make(map[string]float64)
	}

	if err := config.Validate(); err != nil {
		return nil, errwrap.Wrapf(err, "invalid config")
	}
	return config, nil
}

// ReadConfig parses the config file at the path on the filesystem.
func ReadConfig(fs afero.Fs, name string) (*Config, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, errwrap.Wrapf(err, "can't open config: `%s`", name)
	}
	defer f.Close()
	return ParseConfig(f)
}

// FindConfig returns the path of the config file which sits next to the program
// that the input refers to. If there is no such file, or the input isn't a path,
// then it returns the empty string.
func FindConfig(fs afero.Fs, input string) string {
	if input == "" || input == interfaces.StdinInput {
		return ""
	}
	dir := ""
	if isDir, err := afero.IsDir(fs, input); err == nil && isDir {
		dir = input
	} else if strings.HasSuffix(input, interfaces.DotFileNameExtension) && util.IsFile(fs, input) {
		dir = filepath.Dir(input)
	}
	if dir == "" {
		return ""
	}
	name := filepath.Join(dir, interfaces.ConfigFilename)
	if !util.IsFile(fs, name) {
		return ""
	}
	return name
}
